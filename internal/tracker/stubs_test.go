package tracker

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/flooeats/tracking/internal/domain/model"
	"github.com/flooeats/tracking/internal/usecase"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
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
	t.Fatal("condition not met before deadline")
}

type stubOrderRepository struct {
	mu sync.Mutex

	getByNumberFn      func(context.Context, int64) (*model.Order, error)
	listByRestaurantFn func(context.Context, string) ([]model.Order, error)
	listByStatusFn     func(context.Context, model.OrderStatus) ([]model.Order, error)
	updateStatusFn     func(context.Context, string, model.OrderStatus) error

	listByRestaurantCalls int
	updateStatusCalls     int
}

func (s *stubOrderRepository) GetByNumber(ctx context.Context, n int64) (*model.Order, error) {
	return s.getByNumberFn(ctx, n)
}

func (s *stubOrderRepository) GetByID(context.Context, string) (*model.Order, error) {
	panic("not implemented")
}

func (s *stubOrderRepository) ListAll(context.Context) ([]model.Order, error) {
	panic("not implemented")
}

func (s *stubOrderRepository) ListByCustomer(context.Context, string) ([]model.Order, error) {
	panic("not implemented")
}

func (s *stubOrderRepository) ListByRestaurant(ctx context.Context, id string) ([]model.Order, error) {
	s.mu.Lock()
	s.listByRestaurantCalls++
	s.mu.Unlock()
	return s.listByRestaurantFn(ctx, id)
}

func (s *stubOrderRepository) ListByStatus(ctx context.Context, st model.OrderStatus) ([]model.Order, error) {
	return s.listByStatusFn(ctx, st)
}

func (s *stubOrderRepository) Create(context.Context, model.CreateOrderRequest) (*model.Order, error) {
	panic("not implemented")
}

func (s *stubOrderRepository) UpdateStatus(ctx context.Context, id string, st model.OrderStatus) error {
	s.mu.Lock()
	s.updateStatusCalls++
	s.mu.Unlock()
	if s.updateStatusFn != nil {
		return s.updateStatusFn(ctx, id, st)
	}
	return nil
}

func (s *stubOrderRepository) restaurantCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listByRestaurantCalls
}

type stubTransitionRepository struct {
	mu       sync.Mutex
	recorded []model.Transition
}

func (s *stubTransitionRepository) Record(_ context.Context, tr model.Transition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recorded = append(s.recorded, tr)
	return nil
}

func (s *stubTransitionRepository) ListByOrder(context.Context, int64) ([]model.Transition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Transition(nil), s.recorded...), nil
}

func (s *stubTransitionRepository) all() []model.Transition {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Transition(nil), s.recorded...)
}

type stubDriverRepository struct {
	mu sync.Mutex

	updateStatusFn func(context.Context, string, model.DriverStatus) (*model.Driver, error)
	assignFn       func(context.Context, string, model.Order) (*model.Driver, error)

	statusUpdates []model.DriverStatus
}

func (s *stubDriverRepository) List(context.Context) ([]model.Driver, error) {
	panic("not implemented")
}

func (s *stubDriverRepository) Create(context.Context, model.Driver) (*model.Driver, error) {
	panic("not implemented")
}

func (s *stubDriverRepository) Update(context.Context, string, model.Driver) (*model.Driver, error) {
	panic("not implemented")
}

func (s *stubDriverRepository) Delete(context.Context, string) error {
	panic("not implemented")
}

func (s *stubDriverRepository) UpdateStatus(ctx context.Context, id string, st model.DriverStatus) (*model.Driver, error) {
	s.mu.Lock()
	s.statusUpdates = append(s.statusUpdates, st)
	s.mu.Unlock()
	if s.updateStatusFn != nil {
		return s.updateStatusFn(ctx, id, st)
	}
	return &model.Driver{DriverID: id, Status: st}, nil
}

func (s *stubDriverRepository) Location(context.Context, string) (*model.GeoLocation, error) {
	panic("not implemented")
}

func (s *stubDriverRepository) UpdateLocation(context.Context, string, model.GeoLocation) (*model.Driver, error) {
	panic("not implemented")
}

func (s *stubDriverRepository) Assign(ctx context.Context, id string, order model.Order) (*model.Driver, error) {
	if s.assignFn != nil {
		return s.assignFn(ctx, id, order)
	}
	return &model.Driver{DriverID: id, Status: model.DriverDelivery}, nil
}

func (s *stubDriverRepository) updates() []model.DriverStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.DriverStatus(nil), s.statusUpdates...)
}

type stubPublisher struct {
	mu        sync.Mutex
	published []model.Transition
}

func (s *stubPublisher) PublishStageChange(_ context.Context, tr model.Transition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.published = append(s.published, tr)
	return nil
}

func (s *stubPublisher) all() []model.Transition {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Transition(nil), s.published...)
}

type memoryCache struct {
	mu     sync.Mutex
	boards map[string]BoardSnapshot
	saves  int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{boards: make(map[string]BoardSnapshot)}
}

func (c *memoryCache) SaveBoard(_ context.Context, restaurantID string, snapshot BoardSnapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.boards[restaurantID] = snapshot
	c.saves++
	return nil
}

func (c *memoryCache) LoadBoard(_ context.Context, restaurantID string) (*BoardSnapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	snapshot, ok := c.boards[restaurantID]
	if !ok {
		return nil, nil
	}
	return &snapshot, nil
}

func orderUseCase(orders *stubOrderRepository, transitions *stubTransitionRepository) *usecase.OrderUseCase {
	if transitions == nil {
		transitions = &stubTransitionRepository{}
	}
	return usecase.NewOrderUseCase(orders, transitions)
}

func readyOrder() model.Order {
	return model.Order{
		ID:           "42",
		OrderNumber:  42,
		CustomerID:   "c-7",
		RestaurantID: "1",
		OrderItems: []model.OrderItem{
			{ID: "i-1", Name: "Margherita", Price: 11.49, Quantity: 1},
			{ID: "i-2", Name: "Lemonade", Price: 2.49, Quantity: 2},
		},
		SubTotal:    15.47,
		DeliveryFee: 3.50,
		TotalAmount: 18.97,
		OrderTime:   time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC).UnixMilli(),
		OrderStatus: model.OrderStatusReady,
	}
}

func orderWithStatus(id string, number int64, status model.OrderStatus) model.Order {
	o := readyOrder()
	o.ID = id
	o.OrderNumber = number
	o.OrderStatus = status
	return o
}
