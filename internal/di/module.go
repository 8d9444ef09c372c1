package di

import (
	"go.uber.org/fx"

	"github.com/flooeats/tracking/internal/adapter/deliveryapi"
	"github.com/flooeats/tracking/internal/adapter/orderapi"
	"github.com/flooeats/tracking/internal/app"
	"github.com/flooeats/tracking/internal/cache"
	"github.com/flooeats/tracking/internal/config"
	"github.com/flooeats/tracking/internal/events"
	"github.com/flooeats/tracking/internal/logger"
	"github.com/flooeats/tracking/internal/server/http/router"
	"github.com/flooeats/tracking/internal/storage/postgres"
	"github.com/flooeats/tracking/internal/tracker"
	"github.com/flooeats/tracking/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		postgres.Module,
		orderapi.Module,
		deliveryapi.Module,
		usecase.Module,
		cache.Module,
		events.Module,
		tracker.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
