package repository

import (
	"context"

	"github.com/flooeats/tracking/internal/domain/model"
)

// OrderRepository is the order service seen through a repository boundary.
// Production wires the HTTP adapter; tests wire an in-memory stub.
type OrderRepository interface {
	GetByNumber(ctx context.Context, number int64) (*model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]model.Order, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]model.Order, error)
	ListByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error)
	Create(ctx context.Context, req model.CreateOrderRequest) (*model.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error
}
