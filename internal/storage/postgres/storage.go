package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/flooeats/tracking/internal/domain/model"
	"github.com/flooeats/tracking/internal/domain/repository"
)

// dbPool is the subset of pgxpool.Pool the storage needs, narrow enough for
// pgxmock to satisfy in tests.
type dbPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL. It holds the
// observed transition history that overlays real timestamps onto synthesized
// timelines.
type Storage struct {
	pool   dbPool
	logger *slog.Logger
}

type transitionRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Transitions returns the observed transition repository.
func (s *Storage) Transitions() repository.TransitionRepository {
	return &transitionRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS order_transitions (
            id BIGSERIAL PRIMARY KEY,
            order_number BIGINT NOT NULL,
            stage TEXT NOT NULL,
            status TEXT NOT NULL,
            observed_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_transitions_order_stage
            ON order_transitions(order_number, stage)`,
		`CREATE INDEX IF NOT EXISTS idx_transitions_order
            ON order_transitions(order_number, observed_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- TransitionRepository implementation ---

// Record inserts one observed stage change. A stage already recorded for the
// order is kept as is, so the earliest observation wins.
func (r *transitionRepository) Record(ctx context.Context, t model.Transition) error {
	const query = `INSERT INTO order_transitions (order_number, stage, status, observed_at)
                   VALUES ($1, $2, $3, $4)
                   ON CONFLICT (order_number, stage) DO NOTHING`
	_, err := r.storage.pool.Exec(ctx, query, t.OrderNumber, t.Stage, t.Status, t.ObservedAt)
	return err
}

func (r *transitionRepository) ListByOrder(ctx context.Context, orderNumber int64) ([]model.Transition, error) {
	const query = `SELECT order_number, stage, status, observed_at
                   FROM order_transitions WHERE order_number=$1 ORDER BY observed_at`
	rows, err := r.storage.pool.Query(ctx, query, orderNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Transition
	for rows.Next() {
		var t model.Transition
		if err := rows.Scan(&t.OrderNumber, &t.Stage, &t.Status, &t.ObservedAt); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
