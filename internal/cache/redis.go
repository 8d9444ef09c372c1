package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/flooeats/tracking/internal/tracker"
)

const boardTTL = time.Hour

// Redis stores board snapshots so a restaurant keeps a view of its orders
// while the order service is unreachable.
type Redis struct {
	client *redis.Client
	logger *slog.Logger
}

// New connects a snapshot cache to a Redis instance.
func New(addr string, logger *slog.Logger) *Redis {
	client := redis.NewClient(&redis.Options{Addr: addr})
	return &Redis{client: client, logger: logger}
}

// SaveBoard stores a snapshot under the restaurant's key with a TTL, stale
// snapshots being worse than none.
func (r *Redis) SaveBoard(ctx context.Context, restaurantID string, snapshot tracker.BoardSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	return r.client.Set(ctx, boardKey(restaurantID), data, boardTTL).Err()
}

// LoadBoard returns the cached snapshot, or nil when none is stored.
func (r *Redis) LoadBoard(ctx context.Context, restaurantID string) (*tracker.BoardSnapshot, error) {
	data, err := r.client.Get(ctx, boardKey(restaurantID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var snapshot tracker.BoardSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return &snapshot, nil
}

// Close releases the Redis connection.
func (r *Redis) Close() error {
	return r.client.Close()
}

func boardKey(restaurantID string) string {
	return "tracking:board:" + restaurantID
}
