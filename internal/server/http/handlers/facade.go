package handlers

import (
	"context"

	"github.com/flooeats/tracking/internal/domain/model"
	"github.com/flooeats/tracking/internal/tracker"
)

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, req model.CreateOrderRequest) (*model.Order, error)
	TrackOrder(ctx context.Context, orderNumber int64) (*model.TrackedOrder, error)
	UpdateOrderStatus(ctx context.Context, restaurantID, orderID string, status model.OrderStatus) bool
	Orders(ctx context.Context) ([]model.Order, error)
	CustomerOrders(ctx context.Context, customerID string) ([]model.Order, error)
}

// BoardFacade serves restaurant order boards.
type BoardFacade interface {
	Board(ctx context.Context, restaurantID string) (tracker.BoardSnapshot, bool, string)
	RefreshBoard(ctx context.Context, restaurantID string) error
}

// DriverFacade covers shift handling and the roster passthrough.
type DriverFacade interface {
	DriverOnline(ctx context.Context, driverID string) error
	DriverOffline(ctx context.Context, driverID string) error
	DriverShift(driverID string) (model.DriverStatus, string)
	DriverOffer(driverID string) *model.Order
	AcceptOffer(ctx context.Context, driverID string) (*model.Order, error)
	DeclineOffer(driverID string) error

	Drivers(ctx context.Context) ([]model.Driver, error)
	CreateDriver(ctx context.Context, driver model.Driver) (*model.Driver, error)
	UpdateDriver(ctx context.Context, driverID string, driver model.Driver) (*model.Driver, error)
	DeleteDriver(ctx context.Context, driverID string) error
	DriverLocation(ctx context.Context, driverID string) (*model.GeoLocation, error)
	UpdateDriverLocation(ctx context.Context, driverID string, location model.GeoLocation) (*model.Driver, error)
}

// HealthFacade reports service liveness.
type HealthFacade interface {
	Health(ctx context.Context) error
}

// TrackingFacade aggregates the full set of operations used across handlers.
type TrackingFacade interface {
	OrderFacade
	BoardFacade
	DriverFacade
	HealthFacade
}
