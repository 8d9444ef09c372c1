package test

import (
	"context"

	"github.com/flooeats/tracking/internal/domain/model"
	"github.com/flooeats/tracking/internal/tracker"
)

// TrackingFacadeStub provides controllable behaviour for every handler
// endpoint. Unset functions fall back to benign defaults.
type TrackingFacadeStub struct {
	HealthFn            func(context.Context) error
	CreateOrderFn       func(context.Context, model.CreateOrderRequest) (*model.Order, error)
	TrackOrderFn        func(context.Context, int64) (*model.TrackedOrder, error)
	UpdateOrderStatusFn func(context.Context, string, string, model.OrderStatus) bool
	OrdersFn            func(context.Context) ([]model.Order, error)
	CustomerOrdersFn    func(context.Context, string) ([]model.Order, error)

	BoardFn        func(context.Context, string) (tracker.BoardSnapshot, bool, string)
	RefreshBoardFn func(context.Context, string) error

	DriverOnlineFn  func(context.Context, string) error
	DriverOfflineFn func(context.Context, string) error
	DriverShiftFn   func(string) (model.DriverStatus, string)
	DriverOfferFn   func(string) *model.Order
	AcceptOfferFn   func(context.Context, string) (*model.Order, error)
	DeclineOfferFn  func(string) error

	DriversFn              func(context.Context) ([]model.Driver, error)
	CreateDriverFn         func(context.Context, model.Driver) (*model.Driver, error)
	UpdateDriverFn         func(context.Context, string, model.Driver) (*model.Driver, error)
	DeleteDriverFn         func(context.Context, string) error
	DriverLocationFn       func(context.Context, string) (*model.GeoLocation, error)
	UpdateDriverLocationFn func(context.Context, string, model.GeoLocation) (*model.Driver, error)
}

func (s TrackingFacadeStub) Health(ctx context.Context) error {
	if s.HealthFn != nil {
		return s.HealthFn(ctx)
	}
	return nil
}

func (s TrackingFacadeStub) CreateOrder(ctx context.Context, req model.CreateOrderRequest) (*model.Order, error) {
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, req)
	}
	return &model.Order{OrderNumber: req.OrderNumber}, nil
}

func (s TrackingFacadeStub) TrackOrder(ctx context.Context, orderNumber int64) (*model.TrackedOrder, error) {
	if s.TrackOrderFn != nil {
		return s.TrackOrderFn(ctx, orderNumber)
	}
	return &model.TrackedOrder{OrderNumber: orderNumber, Stage: model.StagePlaced}, nil
}

func (s TrackingFacadeStub) UpdateOrderStatus(ctx context.Context, restaurantID, orderID string, status model.OrderStatus) bool {
	if s.UpdateOrderStatusFn != nil {
		return s.UpdateOrderStatusFn(ctx, restaurantID, orderID, status)
	}
	return true
}

func (s TrackingFacadeStub) Orders(ctx context.Context) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return []model.Order{}, nil
}

func (s TrackingFacadeStub) CustomerOrders(ctx context.Context, customerID string) ([]model.Order, error) {
	if s.CustomerOrdersFn != nil {
		return s.CustomerOrdersFn(ctx, customerID)
	}
	return []model.Order{}, nil
}

func (s TrackingFacadeStub) Board(ctx context.Context, restaurantID string) (tracker.BoardSnapshot, bool, string) {
	if s.BoardFn != nil {
		return s.BoardFn(ctx, restaurantID)
	}
	return tracker.BoardSnapshot{}, false, ""
}

func (s TrackingFacadeStub) RefreshBoard(ctx context.Context, restaurantID string) error {
	if s.RefreshBoardFn != nil {
		return s.RefreshBoardFn(ctx, restaurantID)
	}
	return nil
}

func (s TrackingFacadeStub) DriverOnline(ctx context.Context, driverID string) error {
	if s.DriverOnlineFn != nil {
		return s.DriverOnlineFn(ctx, driverID)
	}
	return nil
}

func (s TrackingFacadeStub) DriverOffline(ctx context.Context, driverID string) error {
	if s.DriverOfflineFn != nil {
		return s.DriverOfflineFn(ctx, driverID)
	}
	return nil
}

func (s TrackingFacadeStub) DriverShift(driverID string) (model.DriverStatus, string) {
	if s.DriverShiftFn != nil {
		return s.DriverShiftFn(driverID)
	}
	return model.DriverOffline, ""
}

func (s TrackingFacadeStub) DriverOffer(driverID string) *model.Order {
	if s.DriverOfferFn != nil {
		return s.DriverOfferFn(driverID)
	}
	return nil
}

func (s TrackingFacadeStub) AcceptOffer(ctx context.Context, driverID string) (*model.Order, error) {
	if s.AcceptOfferFn != nil {
		return s.AcceptOfferFn(ctx, driverID)
	}
	return &model.Order{OrderNumber: 1}, nil
}

func (s TrackingFacadeStub) DeclineOffer(driverID string) error {
	if s.DeclineOfferFn != nil {
		return s.DeclineOfferFn(driverID)
	}
	return nil
}

func (s TrackingFacadeStub) Drivers(ctx context.Context) ([]model.Driver, error) {
	if s.DriversFn != nil {
		return s.DriversFn(ctx)
	}
	return []model.Driver{}, nil
}

func (s TrackingFacadeStub) CreateDriver(ctx context.Context, driver model.Driver) (*model.Driver, error) {
	if s.CreateDriverFn != nil {
		return s.CreateDriverFn(ctx, driver)
	}
	return &driver, nil
}

func (s TrackingFacadeStub) UpdateDriver(ctx context.Context, driverID string, driver model.Driver) (*model.Driver, error) {
	if s.UpdateDriverFn != nil {
		return s.UpdateDriverFn(ctx, driverID, driver)
	}
	driver.DriverID = driverID
	return &driver, nil
}

func (s TrackingFacadeStub) DeleteDriver(ctx context.Context, driverID string) error {
	if s.DeleteDriverFn != nil {
		return s.DeleteDriverFn(ctx, driverID)
	}
	return nil
}

func (s TrackingFacadeStub) DriverLocation(ctx context.Context, driverID string) (*model.GeoLocation, error) {
	if s.DriverLocationFn != nil {
		return s.DriverLocationFn(ctx, driverID)
	}
	return &model.GeoLocation{}, nil
}

func (s TrackingFacadeStub) UpdateDriverLocation(ctx context.Context, driverID string, location model.GeoLocation) (*model.Driver, error) {
	if s.UpdateDriverLocationFn != nil {
		return s.UpdateDriverLocationFn(ctx, driverID, location)
	}
	return &model.Driver{DriverID: driverID, Location: location}, nil
}
