package repository

import (
	"context"

	"github.com/flooeats/tracking/internal/domain/model"
)

// TransitionRepository persists stage changes observed by the pollers so
// timelines can carry real times instead of synthesized ones.
type TransitionRepository interface {
	Record(ctx context.Context, transition model.Transition) error
	ListByOrder(ctx context.Context, orderNumber int64) ([]model.Transition, error)
}
