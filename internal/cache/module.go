package cache

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/flooeats/tracking/internal/config"
	"github.com/flooeats/tracking/internal/tracker"
)

// Module wires the Redis snapshot cache. Without a configured Redis address
// no cache is provided and boards run on their in-memory snapshot alone.
var Module = fx.Provide(newSnapshotCache)

func newSnapshotCache(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) tracker.SnapshotCache {
	if cfg.RedisAddress == "" {
		logger.Info("snapshot cache disabled, no redis address configured")
		return nil
	}

	r := New(cfg.RedisAddress, logger)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return r.Close()
		},
	})
	logger.Info("snapshot cache enabled", "redis_address", cfg.RedisAddress)
	return r
}
