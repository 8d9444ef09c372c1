package dto

import (
	"time"

	"github.com/flooeats/tracking/internal/domain/model"
)

// BoardResponse is a restaurant's bucketed order view.
type BoardResponse struct {
	Active      []model.TrackedOrder `json:"active"`
	Completed   []model.TrackedOrder `json:"completed"`
	Cancelled   []model.TrackedOrder `json:"cancelled"`
	LastUpdated time.Time            `json:"lastUpdated"`
	Loading     bool                 `json:"loading"`
	Error       string               `json:"error,omitempty"`
}
