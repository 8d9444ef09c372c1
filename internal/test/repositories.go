package test

import (
	"context"
	"strconv"
	"sync"

	domainErrors "github.com/flooeats/tracking/internal/domain/errors"
	"github.com/flooeats/tracking/internal/domain/model"
)

// OrderRepositoryStub serves orders from memory for tests.
type OrderRepositoryStub struct {
	mu     sync.Mutex
	Orders map[int64]*model.Order
	Err    error
	Next   int64
}

// NewOrderRepositoryStub constructs stub repository with initialized maps.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{Orders: make(map[int64]*model.Order), Next: 1}
}

// Put seeds an order.
func (s *OrderRepositoryStub) Put(order model.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Orders[order.OrderNumber] = &order
}

func (s *OrderRepositoryStub) GetByNumber(_ context.Context, number int64) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	order, ok := s.Orders[number]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	copied := *order
	return &copied, nil
}

func (s *OrderRepositoryStub) GetByID(_ context.Context, id string) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, order := range s.Orders {
		if order.Key() == id {
			copied := *order
			return &copied, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) ListAll(context.Context) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	result := make([]model.Order, 0, len(s.Orders))
	for _, order := range s.Orders {
		result = append(result, *order)
	}
	return result, nil
}

func (s *OrderRepositoryStub) ListByCustomer(_ context.Context, customerID string) ([]model.Order, error) {
	return s.listWhere(func(o *model.Order) bool { return o.CustomerID == customerID })
}

func (s *OrderRepositoryStub) ListByRestaurant(_ context.Context, restaurantID string) ([]model.Order, error) {
	return s.listWhere(func(o *model.Order) bool { return o.RestaurantID == restaurantID })
}

func (s *OrderRepositoryStub) ListByStatus(_ context.Context, status model.OrderStatus) ([]model.Order, error) {
	return s.listWhere(func(o *model.Order) bool { return o.OrderStatus == status })
}

func (s *OrderRepositoryStub) Create(_ context.Context, req model.CreateOrderRequest) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	order := &model.Order{
		ID:           "order-" + strconv.FormatInt(s.Next, 10),
		OrderNumber:  req.OrderNumber,
		CustomerID:   req.CustomerID,
		RestaurantID: req.RestaurantID,
		OrderItems:   req.OrderItems,
		SubTotal:     req.SubTotal,
		DeliveryFee:  req.DeliveryFee,
		TotalAmount:  req.TotalAmount,
		OrderTime:    req.OrderTime,
		OrderStatus:  model.OrderStatusPending,
	}
	s.Next++
	s.Orders[order.OrderNumber] = order
	copied := *order
	return &copied, nil
}

func (s *OrderRepositoryStub) UpdateStatus(_ context.Context, orderID string, status model.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	for _, order := range s.Orders {
		if order.Key() == orderID {
			order.OrderStatus = status
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) listWhere(match func(*model.Order) bool) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Order
	for _, order := range s.Orders {
		if match(order) {
			result = append(result, *order)
		}
	}
	return result, nil
}

// DriverRepositoryStub serves drivers from memory for tests.
type DriverRepositoryStub struct {
	mu       sync.Mutex
	Drivers  map[string]*model.Driver
	Claimed  map[int64]string
	Err      error
	ClaimErr error
}

// NewDriverRepositoryStub constructs stub repository with initialized maps.
func NewDriverRepositoryStub() *DriverRepositoryStub {
	return &DriverRepositoryStub{
		Drivers: make(map[string]*model.Driver),
		Claimed: make(map[int64]string),
	}
}

// Put seeds a driver.
func (s *DriverRepositoryStub) Put(driver model.Driver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Drivers[driver.DriverID] = &driver
}

func (s *DriverRepositoryStub) List(context.Context) ([]model.Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	result := make([]model.Driver, 0, len(s.Drivers))
	for _, driver := range s.Drivers {
		result = append(result, *driver)
	}
	return result, nil
}

func (s *DriverRepositoryStub) Create(_ context.Context, driver model.Driver) (*model.Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	s.Drivers[driver.DriverID] = &driver
	copied := driver
	return &copied, nil
}

func (s *DriverRepositoryStub) Update(_ context.Context, driverID string, driver model.Driver) (*model.Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if _, ok := s.Drivers[driverID]; !ok {
		return nil, domainErrors.ErrNotFound
	}
	driver.DriverID = driverID
	s.Drivers[driverID] = &driver
	copied := driver
	return &copied, nil
}

func (s *DriverRepositoryStub) Delete(_ context.Context, driverID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Drivers[driverID]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Drivers, driverID)
	return nil
}

func (s *DriverRepositoryStub) UpdateStatus(_ context.Context, driverID string, status model.DriverStatus) (*model.Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	driver, ok := s.Drivers[driverID]
	if !ok {
		driver = &model.Driver{DriverID: driverID}
		s.Drivers[driverID] = driver
	}
	driver.Status = status
	driver.Available = status == model.DriverOnline
	copied := *driver
	return &copied, nil
}

func (s *DriverRepositoryStub) Location(_ context.Context, driverID string) (*model.GeoLocation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	driver, ok := s.Drivers[driverID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	location := driver.Location
	return &location, nil
}

func (s *DriverRepositoryStub) UpdateLocation(_ context.Context, driverID string, location model.GeoLocation) (*model.Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	driver, ok := s.Drivers[driverID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	driver.Location = location
	copied := *driver
	return &copied, nil
}

// Assign confirms the claim for the first driver and rejects later ones.
func (s *DriverRepositoryStub) Assign(_ context.Context, driverID string, order model.Order) (*model.Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ClaimErr != nil {
		return nil, s.ClaimErr
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if claimedBy, ok := s.Claimed[order.OrderNumber]; ok && claimedBy != driverID {
		return nil, domainErrors.ErrOrderClaimed
	}
	s.Claimed[order.OrderNumber] = driverID
	driver, ok := s.Drivers[driverID]
	if !ok {
		driver = &model.Driver{DriverID: driverID}
		s.Drivers[driverID] = driver
	}
	driver.Status = model.DriverDelivery
	copied := *driver
	return &copied, nil
}

// TransitionRepositoryStub keeps observed transitions in memory.
type TransitionRepositoryStub struct {
	mu          sync.Mutex
	Transitions []model.Transition
	Err         error
}

func (s *TransitionRepositoryStub) Record(_ context.Context, t model.Transition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	for _, existing := range s.Transitions {
		if existing.OrderNumber == t.OrderNumber && existing.Stage == t.Stage {
			return nil
		}
	}
	s.Transitions = append(s.Transitions, t)
	return nil
}

func (s *TransitionRepositoryStub) ListByOrder(_ context.Context, orderNumber int64) ([]model.Transition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Transition
	for _, t := range s.Transitions {
		if t.OrderNumber == orderNumber {
			result = append(result, t)
		}
	}
	return result, nil
}
