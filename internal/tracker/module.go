package tracker

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/flooeats/tracking/internal/config"
	"github.com/flooeats/tracking/internal/usecase"
)

// ManagerParams collects the manager's dependencies. Cache and publisher are
// optional: they stay nil when Redis or Kafka is not configured.
type ManagerParams struct {
	fx.In

	Ctx       context.Context
	Config    *config.Config
	Orders    *usecase.OrderUseCase
	Drivers   *usecase.DriverUseCase
	Cache     SnapshotCache  `optional:"true"`
	Publisher StagePublisher `optional:"true"`
	Logger    *slog.Logger
}

func newManager(p ManagerParams) *Manager {
	return NewManager(p.Ctx, p.Config, p.Orders, p.Drivers, p.Cache, p.Publisher, p.Logger)
}

// Module wires the tracking component registry.
var Module = fx.Provide(newManager)
