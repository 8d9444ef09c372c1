package app

import (
	"context"
	"time"

	"github.com/flooeats/tracking/internal/domain/model"
	"github.com/flooeats/tracking/internal/tracker"
	"github.com/flooeats/tracking/internal/usecase"
)

// HealthChecker reports backing store connectivity.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// TrackingFacade aggregates order, board and driver operations behind the
// single surface the HTTP handlers consume.
type TrackingFacade struct {
	orders  *usecase.OrderUseCase
	drivers *usecase.DriverUseCase
	manager *tracker.Manager
	health  HealthChecker
}

// NewTrackingFacade constructs TrackingFacade.
func NewTrackingFacade(orders *usecase.OrderUseCase, drivers *usecase.DriverUseCase, manager *tracker.Manager, health HealthChecker) *TrackingFacade {
	return &TrackingFacade{orders: orders, drivers: drivers, manager: manager, health: health}
}

func (f *TrackingFacade) Health(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}

func (f *TrackingFacade) CreateOrder(ctx context.Context, req model.CreateOrderRequest) (*model.Order, error) {
	return f.orders.Create(ctx, req)
}

// TrackOrder returns the tracked projection of one order. The first request
// for an order starts its background tracker; later requests are served from
// the tracker's state.
func (f *TrackingFacade) TrackOrder(ctx context.Context, orderNumber int64) (*model.TrackedOrder, error) {
	t := f.manager.Tracker(orderNumber)
	if current, _ := t.Current(); current != nil {
		return current, nil
	}
	if _, err := t.Refresh(ctx); err != nil {
		return nil, err
	}
	current, _ := t.Current()
	return current, nil
}

func (f *TrackingFacade) Orders(ctx context.Context) ([]model.Order, error) {
	return f.orders.ListAll(ctx)
}

func (f *TrackingFacade) CustomerOrders(ctx context.Context, customerID string) ([]model.Order, error) {
	return f.orders.ListByCustomer(ctx, customerID)
}

func (f *TrackingFacade) UpdateOrderStatus(ctx context.Context, restaurantID, orderID string, status model.OrderStatus) bool {
	return f.manager.Board(restaurantID).UpdateStatus(ctx, orderID, status)
}

// Board returns a restaurant's bucketed snapshot, fetching synchronously when
// the board is seen for the first time.
func (f *TrackingFacade) Board(ctx context.Context, restaurantID string) (tracker.BoardSnapshot, bool, string) {
	board := f.manager.Board(restaurantID)
	if snapshot, loading, lastErr := board.Snapshot(); !snapshot.UpdatedAt.IsZero() || lastErr != "" {
		return snapshot, loading, lastErr
	}
	_ = board.Refresh(ctx, true)
	return board.Snapshot()
}

func (f *TrackingFacade) RefreshBoard(ctx context.Context, restaurantID string) error {
	return f.manager.Board(restaurantID).Refresh(ctx, true)
}

func (f *TrackingFacade) DriverOnline(ctx context.Context, driverID string) error {
	return f.manager.Shift(driverID).GoOnline(ctx)
}

func (f *TrackingFacade) DriverOffline(ctx context.Context, driverID string) error {
	return f.manager.Shift(driverID).GoOffline(ctx)
}

func (f *TrackingFacade) DriverShift(driverID string) (model.DriverStatus, string) {
	shift := f.manager.Shift(driverID)
	return shift.Status(), shift.LastError()
}

func (f *TrackingFacade) DriverOffer(driverID string) *model.Order {
	return f.manager.Shift(driverID).Offer()
}

func (f *TrackingFacade) AcceptOffer(ctx context.Context, driverID string) (*model.Order, error) {
	order, err := f.manager.Shift(driverID).Accept(ctx)
	if err != nil {
		return nil, err
	}
	// The claim is an observed pickup, worth remembering for timelines.
	_ = f.orders.RecordTransition(ctx, model.Transition{
		OrderNumber: order.OrderNumber,
		Stage:       model.StagePickedUp,
		Status:      model.OrderStatusPickedUp,
		ObservedAt:  time.Now().UTC(),
	})
	return order, nil
}

func (f *TrackingFacade) DeclineOffer(driverID string) error {
	return f.manager.Shift(driverID).Decline()
}

func (f *TrackingFacade) Drivers(ctx context.Context) ([]model.Driver, error) {
	return f.drivers.List(ctx)
}

func (f *TrackingFacade) CreateDriver(ctx context.Context, driver model.Driver) (*model.Driver, error) {
	return f.drivers.Create(ctx, driver)
}

func (f *TrackingFacade) UpdateDriver(ctx context.Context, driverID string, driver model.Driver) (*model.Driver, error) {
	return f.drivers.Update(ctx, driverID, driver)
}

func (f *TrackingFacade) DeleteDriver(ctx context.Context, driverID string) error {
	return f.drivers.Delete(ctx, driverID)
}

func (f *TrackingFacade) DriverLocation(ctx context.Context, driverID string) (*model.GeoLocation, error) {
	return f.drivers.Location(ctx, driverID)
}

func (f *TrackingFacade) UpdateDriverLocation(ctx context.Context, driverID string, location model.GeoLocation) (*model.Driver, error) {
	return f.drivers.UpdateLocation(ctx, driverID, location)
}
