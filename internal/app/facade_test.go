package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/flooeats/tracking/internal/config"
	"github.com/flooeats/tracking/internal/domain/model"
	testhelpers "github.com/flooeats/tracking/internal/test"
	"github.com/flooeats/tracking/internal/tracker"
	"github.com/flooeats/tracking/internal/usecase"
)

type healthStub struct {
	err error
}

func (h healthStub) HealthCheck(context.Context) error { return h.err }

type facadeFixture struct {
	facade      *TrackingFacade
	orders      *testhelpers.OrderRepositoryStub
	drivers     *testhelpers.DriverRepositoryStub
	transitions *testhelpers.TransitionRepositoryStub
	manager     *tracker.Manager
}

func newFacadeFixture(t *testing.T) *facadeFixture {
	t.Helper()

	orderRepo := testhelpers.NewOrderRepositoryStub()
	driverRepo := testhelpers.NewDriverRepositoryStub()
	transitionRepo := &testhelpers.TransitionRepositoryStub{}

	orderUC := usecase.NewOrderUseCase(orderRepo, transitionRepo)
	driverUC := usecase.NewDriverUseCase(driverRepo)

	cfg := &config.Config{
		RestaurantPollInterval: time.Hour,
		TrackingPollInterval:   time.Hour,
		DriverPollInterval:     10 * time.Millisecond,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := tracker.NewManager(context.Background(), cfg, orderUC, driverUC, nil, nil, logger)
	t.Cleanup(manager.StopAll)

	return &facadeFixture{
		facade:      NewTrackingFacade(orderUC, driverUC, manager, healthStub{}),
		orders:      orderRepo,
		drivers:     driverRepo,
		transitions: transitionRepo,
		manager:     manager,
	}
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before timeout")
}

func TestFacadeHealth(t *testing.T) {
	fx := newFacadeFixture(t)
	if err := fx.facade.Health(context.Background()); err != nil {
		t.Fatalf("unexpected health error: %v", err)
	}

	down := NewTrackingFacade(nil, nil, nil, healthStub{err: errors.New("no connection")})
	if err := down.Health(context.Background()); err == nil {
		t.Fatal("expected health error")
	}
}

func TestFacadeTrackOrderServesFirstRequest(t *testing.T) {
	fx := newFacadeFixture(t)
	fx.orders.Put(model.Order{
		ID:           "42",
		OrderNumber:  42,
		RestaurantID: "1",
		OrderStatus:  model.OrderStatusPreparing,
		TotalAmount:  18.97,
	})

	tracked, err := fx.facade.TrackOrder(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tracked.OrderNumber != 42 || tracked.Stage != model.StagePreparing {
		t.Fatalf("unexpected projection: %+v", tracked)
	}
	if tracked.Total != 18.97 {
		t.Errorf("total = %v, want 18.97", tracked.Total)
	}
}

func TestFacadeBoardFetchesOnFirstRequest(t *testing.T) {
	fx := newFacadeFixture(t)
	fx.orders.Put(model.Order{ID: "42", OrderNumber: 42, RestaurantID: "1", OrderStatus: model.OrderStatusReady})
	fx.orders.Put(model.Order{ID: "43", OrderNumber: 43, RestaurantID: "1", OrderStatus: model.OrderStatusDelivered})
	fx.orders.Put(model.Order{ID: "44", OrderNumber: 44, RestaurantID: "2", OrderStatus: model.OrderStatusReady})

	snapshot, loading, lastErr := fx.facade.Board(context.Background(), "1")
	if lastErr != "" || loading {
		t.Fatalf("unexpected board state: loading=%v err=%q", loading, lastErr)
	}
	if len(snapshot.Active) != 1 || len(snapshot.Completed) != 1 || len(snapshot.Cancelled) != 0 {
		t.Fatalf("unexpected buckets: %+v", snapshot)
	}
	if snapshot.Active[0].ID != "42" {
		t.Errorf("active order = %q, want 42", snapshot.Active[0].ID)
	}
}

func TestFacadeUpdateOrderStatusRoutesThroughBoard(t *testing.T) {
	fx := newFacadeFixture(t)
	fx.orders.Put(model.Order{ID: "42", OrderNumber: 42, RestaurantID: "1", OrderStatus: model.OrderStatusAccepted})

	// Prime the board so the transition guard knows the current status.
	if _, _, lastErr := fx.facade.Board(context.Background(), "1"); lastErr != "" {
		t.Fatalf("board fetch failed: %s", lastErr)
	}

	if !fx.facade.UpdateOrderStatus(context.Background(), "1", "42", model.OrderStatusPreparing) {
		t.Fatal("valid transition was rejected")
	}
	if fx.facade.UpdateOrderStatus(context.Background(), "1", "42", model.OrderStatusDelivered) {
		t.Fatal("PREPARING to DELIVERED should be rejected")
	}
}

func TestFacadeAcceptOfferRecordsPickup(t *testing.T) {
	fx := newFacadeFixture(t)
	fx.orders.Put(model.Order{ID: "42", OrderNumber: 42, RestaurantID: "1", OrderStatus: model.OrderStatusReady})
	fx.drivers.Put(model.Driver{DriverID: "d-1", Status: model.DriverOffline})

	if err := fx.facade.DriverOnline(context.Background(), "d-1"); err != nil {
		t.Fatalf("online: %v", err)
	}
	waitFor(t, time.Second, func() bool {
		return fx.facade.DriverOffer("d-1") != nil
	})

	order, err := fx.facade.AcceptOffer(context.Background(), "d-1")
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if order.OrderNumber != 42 {
		t.Fatalf("unexpected order %d", order.OrderNumber)
	}

	status, _ := fx.facade.DriverShift("d-1")
	if status != model.DriverDelivery {
		t.Errorf("shift status = %s, want DELIVERY", status)
	}

	var recorded bool
	for _, transition := range fx.transitions.Transitions {
		if transition.OrderNumber == 42 && transition.Stage == model.StagePickedUp {
			recorded = true
		}
	}
	if !recorded {
		t.Error("pickup transition was not recorded")
	}
}

func TestFacadeAcceptOfferWithoutShift(t *testing.T) {
	fx := newFacadeFixture(t)
	if _, err := fx.facade.AcceptOffer(context.Background(), "d-1"); err == nil {
		t.Fatal("expected error for a driver that never went online")
	}
}

func TestFacadeDriverRoster(t *testing.T) {
	fx := newFacadeFixture(t)

	created, err := fx.facade.CreateDriver(context.Background(), model.Driver{DriverID: "d-1", Name: "Sam"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.DriverID != "d-1" {
		t.Fatalf("unexpected driver: %+v", created)
	}

	drivers, err := fx.facade.Drivers(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(drivers) != 1 {
		t.Fatalf("expected one driver, got %d", len(drivers))
	}

	if _, err := fx.facade.UpdateDriverLocation(context.Background(), "d-1", model.GeoLocation{Latitude: 41.7, Longitude: 44.8}); err != nil {
		t.Fatalf("update location: %v", err)
	}
	location, err := fx.facade.DriverLocation(context.Background(), "d-1")
	if err != nil {
		t.Fatalf("location: %v", err)
	}
	if location.Latitude != 41.7 {
		t.Fatalf("unexpected location: %+v", location)
	}

	if err := fx.facade.DeleteDriver(context.Background(), "d-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	drivers, _ = fx.facade.Drivers(context.Background())
	if len(drivers) != 0 {
		t.Fatalf("expected empty roster, got %d", len(drivers))
	}
}
