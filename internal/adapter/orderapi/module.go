package orderapi

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/flooeats/tracking/internal/config"
	"github.com/flooeats/tracking/internal/domain/repository"
)

// Module exposes the order service client to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (repository.OrderRepository, error) {
	return NewHTTPClient(p.Config.OrderServiceAddress, p.Logger)
}
