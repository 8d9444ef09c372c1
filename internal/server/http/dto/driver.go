package dto

import "github.com/flooeats/tracking/internal/domain/model"

// ShiftResponse reports a driver's shift state.
type ShiftResponse struct {
	DriverID string             `json:"driverId"`
	Status   model.DriverStatus `json:"status"`
	Error    string             `json:"error,omitempty"`
}

// OfferResponse wraps the order currently offered to a driver.
type OfferResponse struct {
	Order *model.Order `json:"order"`
}
