package repository

import (
	"context"

	"github.com/flooeats/tracking/internal/domain/model"
)

// DriverRepository is the delivery service seen through a repository boundary.
type DriverRepository interface {
	List(ctx context.Context) ([]model.Driver, error)
	Create(ctx context.Context, driver model.Driver) (*model.Driver, error)
	Update(ctx context.Context, driverID string, driver model.Driver) (*model.Driver, error)
	Delete(ctx context.Context, driverID string) error
	UpdateStatus(ctx context.Context, driverID string, status model.DriverStatus) (*model.Driver, error)
	Location(ctx context.Context, driverID string) (*model.GeoLocation, error)
	UpdateLocation(ctx context.Context, driverID string, location model.GeoLocation) (*model.Driver, error)

	// Assign claims an order for a driver. The claim is confirmed or rejected
	// by the delivery service; a lost claim surfaces as ErrOrderClaimed.
	Assign(ctx context.Context, driverID string, order model.Order) (*model.Driver, error)
}
