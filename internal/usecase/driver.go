package usecase

import (
	"context"

	"github.com/flooeats/tracking/internal/domain/model"
	"github.com/flooeats/tracking/internal/domain/repository"
)

// DriverUseCase wraps driver roster operations on the delivery service.
type DriverUseCase struct {
	drivers repository.DriverRepository
}

// NewDriverUseCase constructs DriverUseCase.
func NewDriverUseCase(drivers repository.DriverRepository) *DriverUseCase {
	return &DriverUseCase{drivers: drivers}
}

func (u *DriverUseCase) List(ctx context.Context) ([]model.Driver, error) {
	return u.drivers.List(ctx)
}

func (u *DriverUseCase) Create(ctx context.Context, driver model.Driver) (*model.Driver, error) {
	return u.drivers.Create(ctx, driver)
}

func (u *DriverUseCase) Update(ctx context.Context, driverID string, driver model.Driver) (*model.Driver, error) {
	return u.drivers.Update(ctx, driverID, driver)
}

func (u *DriverUseCase) Delete(ctx context.Context, driverID string) error {
	return u.drivers.Delete(ctx, driverID)
}

// UpdateStatus moves a driver between shift states on the delivery service.
func (u *DriverUseCase) UpdateStatus(ctx context.Context, driverID string, status model.DriverStatus) (*model.Driver, error) {
	return u.drivers.UpdateStatus(ctx, driverID, status)
}

// Assign claims an order for a driver. ErrOrderClaimed means another driver
// confirmed the claim first.
func (u *DriverUseCase) Assign(ctx context.Context, driverID string, order model.Order) (*model.Driver, error) {
	return u.drivers.Assign(ctx, driverID, order)
}

func (u *DriverUseCase) Location(ctx context.Context, driverID string) (*model.GeoLocation, error) {
	return u.drivers.Location(ctx, driverID)
}

func (u *DriverUseCase) UpdateLocation(ctx context.Context, driverID string, location model.GeoLocation) (*model.Driver, error) {
	return u.drivers.UpdateLocation(ctx, driverID, location)
}
