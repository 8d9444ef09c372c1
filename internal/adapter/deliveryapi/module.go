package deliveryapi

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/flooeats/tracking/internal/config"
	"github.com/flooeats/tracking/internal/domain/repository"
)

// Module exposes the delivery service client to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (repository.DriverRepository, error) {
	return NewHTTPClient(p.Config.DeliveryServiceAddress, p.Logger)
}
