package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainErrors "github.com/flooeats/tracking/internal/domain/errors"
	"github.com/flooeats/tracking/internal/domain/model"
	"github.com/flooeats/tracking/internal/domain/repository"
)

// OrderUseCase encapsulates order operations against the order service and
// the observed-transition history.
type OrderUseCase struct {
	orders      repository.OrderRepository
	transitions repository.TransitionRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, transitions repository.TransitionRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, transitions: transitions}
}

// Create validates the payload at the boundary and registers the order.
func (u *OrderUseCase) Create(ctx context.Context, req model.CreateOrderRequest) (*model.Order, error) {
	if err := ValidateCreateOrder(req); err != nil {
		return nil, err
	}
	return u.orders.Create(ctx, req)
}

// Track fetches one order by number and projects it for display, substituting
// observed transition times into the timeline where history exists. A history
// read failure degrades to the synthesized timeline rather than failing the
// whole projection.
func (u *OrderUseCase) Track(ctx context.Context, orderNumber int64, now time.Time) (*model.TrackedOrder, error) {
	tracked, _, err := u.Observe(ctx, orderNumber, now)
	return tracked, err
}

// Observe is Track plus the raw canonical status, which pollers need to detect
// changes and terminal states the display projection flattens away.
func (u *OrderUseCase) Observe(ctx context.Context, orderNumber int64, now time.Time) (*model.TrackedOrder, model.OrderStatus, error) {
	order, err := u.orders.GetByNumber(ctx, orderNumber)
	if err != nil {
		return nil, "", err
	}

	observed, err := u.transitions.ListByOrder(ctx, orderNumber)
	if err != nil {
		observed = nil
	}

	tracked := AdaptWithHistory(*order, observed, now)
	return &tracked, order.OrderStatus, nil
}

// GetByNumber returns one canonical order.
func (u *OrderUseCase) GetByNumber(ctx context.Context, orderNumber int64) (*model.Order, error) {
	return u.orders.GetByNumber(ctx, orderNumber)
}

// ListAll returns every order the order service knows about.
func (u *OrderUseCase) ListAll(ctx context.Context) ([]model.Order, error) {
	return u.orders.ListAll(ctx)
}

// ListByRestaurant returns all orders of one restaurant.
func (u *OrderUseCase) ListByRestaurant(ctx context.Context, restaurantID string) ([]model.Order, error) {
	return u.orders.ListByRestaurant(ctx, restaurantID)
}

// ListByCustomer returns all orders of one customer.
func (u *OrderUseCase) ListByCustomer(ctx context.Context, customerID string) ([]model.Order, error) {
	return u.orders.ListByCustomer(ctx, customerID)
}

// ListByStatus returns all orders currently in one canonical status.
func (u *OrderUseCase) ListByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", domainErrors.ErrUnknownStatus, status)
	}
	return u.orders.ListByStatus(ctx, status)
}

// UpdateStatus moves an order to a new canonical status. The order id and the
// status value are validated here; transition legality is the caller's concern
// since only callers holding a snapshot know the previous status.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	if orderID == "" {
		return domainErrors.ErrMissingOrderID
	}
	if !status.Valid() {
		return fmt.Errorf("%w: %q", domainErrors.ErrUnknownStatus, status)
	}
	return u.orders.UpdateStatus(ctx, orderID, status)
}

// RecordTransition persists an observed stage change. Duplicate observations
// are tolerated; the earliest one wins at read time.
func (u *OrderUseCase) RecordTransition(ctx context.Context, transition model.Transition) error {
	return u.transitions.Record(ctx, transition)
}

// IsNotFound reports whether an error from any order operation means the
// order does not exist upstream.
func IsNotFound(err error) bool {
	return errors.Is(err, domainErrors.ErrNotFound)
}
