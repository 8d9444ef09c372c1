package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	domainErrors "github.com/flooeats/tracking/internal/domain/errors"
	"github.com/flooeats/tracking/internal/domain/model"
)

type stubOrderRepository struct {
	getByNumberFn  func(context.Context, int64) (*model.Order, error)
	createFn       func(context.Context, model.CreateOrderRequest) (*model.Order, error)
	updateStatusFn func(context.Context, string, model.OrderStatus) error
}

func (s stubOrderRepository) GetByNumber(ctx context.Context, n int64) (*model.Order, error) {
	return s.getByNumberFn(ctx, n)
}

func (stubOrderRepository) GetByID(context.Context, string) (*model.Order, error) {
	panic("not implemented")
}

func (stubOrderRepository) ListAll(context.Context) ([]model.Order, error) {
	panic("not implemented")
}

func (stubOrderRepository) ListByCustomer(context.Context, string) ([]model.Order, error) {
	panic("not implemented")
}

func (stubOrderRepository) ListByRestaurant(context.Context, string) ([]model.Order, error) {
	panic("not implemented")
}

func (stubOrderRepository) ListByStatus(context.Context, model.OrderStatus) ([]model.Order, error) {
	panic("not implemented")
}

func (s stubOrderRepository) Create(ctx context.Context, req model.CreateOrderRequest) (*model.Order, error) {
	return s.createFn(ctx, req)
}

func (s stubOrderRepository) UpdateStatus(ctx context.Context, id string, st model.OrderStatus) error {
	return s.updateStatusFn(ctx, id, st)
}

type stubTransitionRepository struct {
	recorded []model.Transition
	listFn   func(context.Context, int64) ([]model.Transition, error)
}

func (s *stubTransitionRepository) Record(ctx context.Context, t model.Transition) error {
	s.recorded = append(s.recorded, t)
	return nil
}

func (s *stubTransitionRepository) ListByOrder(ctx context.Context, n int64) ([]model.Transition, error) {
	if s.listFn != nil {
		return s.listFn(ctx, n)
	}
	return nil, nil
}

func TestOrderUseCaseUpdateStatusRequiresID(t *testing.T) {
	uc := NewOrderUseCase(stubOrderRepository{updateStatusFn: func(context.Context, string, model.OrderStatus) error {
		t.Fatal("repository must not be called without an id")
		return nil
	}}, &stubTransitionRepository{})

	if err := uc.UpdateStatus(context.Background(), "", model.OrderStatusPreparing); !errors.Is(err, domainErrors.ErrMissingOrderID) {
		t.Fatalf("expected missing order id error, got %v", err)
	}
}

func TestOrderUseCaseUpdateStatusRejectsUnknownValue(t *testing.T) {
	uc := NewOrderUseCase(stubOrderRepository{updateStatusFn: func(context.Context, string, model.OrderStatus) error {
		t.Fatal("repository must not be called for unknown status")
		return nil
	}}, &stubTransitionRepository{})

	if err := uc.UpdateStatus(context.Background(), "abc123", "SHIPPED"); !errors.Is(err, domainErrors.ErrUnknownStatus) {
		t.Fatalf("expected unknown status error, got %v", err)
	}
}

func TestOrderUseCaseUpdateStatusPassesThrough(t *testing.T) {
	var gotID string
	var gotStatus model.OrderStatus
	uc := NewOrderUseCase(stubOrderRepository{updateStatusFn: func(_ context.Context, id string, st model.OrderStatus) error {
		gotID, gotStatus = id, st
		return nil
	}}, &stubTransitionRepository{})

	if err := uc.UpdateStatus(context.Background(), "abc123", model.OrderStatusPreparing); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotID != "abc123" || gotStatus != model.OrderStatusPreparing {
		t.Fatalf("unexpected arguments: %s %s", gotID, gotStatus)
	}
}

func TestOrderUseCaseCreateValidatesBoundary(t *testing.T) {
	uc := NewOrderUseCase(stubOrderRepository{createFn: func(context.Context, model.CreateOrderRequest) (*model.Order, error) {
		t.Fatal("create must not reach the repository for malformed orders")
		return nil, nil
	}}, &stubTransitionRepository{})

	req := validCreateRequest()
	req.TotalAmount = 1
	if _, err := uc.Create(context.Background(), req); !errors.Is(err, domainErrors.ErrInvalidOrder) {
		t.Fatalf("expected invalid order error, got %v", err)
	}
}

func TestOrderUseCaseTrackOverlaysHistory(t *testing.T) {
	now := time.Date(2025, 5, 10, 13, 0, 0, 0, time.UTC)
	acceptedAt := time.Date(2025, 5, 10, 12, 5, 0, 0, time.UTC)

	order := sampleOrder()
	order.OrderStatus = model.OrderStatusReady
	transitions := &stubTransitionRepository{listFn: func(context.Context, int64) ([]model.Transition, error) {
		return []model.Transition{{OrderNumber: 42, Stage: model.StageAccepted, ObservedAt: acceptedAt}}, nil
	}}

	uc := NewOrderUseCase(stubOrderRepository{getByNumberFn: func(context.Context, int64) (*model.Order, error) {
		return &order, nil
	}}, transitions)

	tracked, err := uc.Track(context.Background(), 42, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var acceptedStamp time.Time
	for _, e := range tracked.Timeline {
		if e.Stage == model.StageAccepted {
			acceptedStamp = e.Time
		}
	}
	if acceptedStamp != acceptedAt {
		t.Fatalf("expected observed accepted time, got %v", acceptedStamp)
	}
}

func TestOrderUseCaseTrackSurvivesHistoryFailure(t *testing.T) {
	order := sampleOrder()
	transitions := &stubTransitionRepository{listFn: func(context.Context, int64) ([]model.Transition, error) {
		return nil, errors.New("history store down")
	}}

	uc := NewOrderUseCase(stubOrderRepository{getByNumberFn: func(context.Context, int64) (*model.Order, error) {
		return &order, nil
	}}, transitions)

	tracked, err := uc.Track(context.Background(), 42, time.Now().UTC())
	if err != nil {
		t.Fatalf("history failure must not fail tracking: %v", err)
	}
	if len(tracked.Timeline) == 0 {
		t.Fatal("expected synthesized timeline")
	}
}

func TestOrderUseCaseListByStatusRejectsUnknown(t *testing.T) {
	uc := NewOrderUseCase(stubOrderRepository{}, &stubTransitionRepository{})
	if _, err := uc.ListByStatus(context.Background(), "SHIPPED"); !errors.Is(err, domainErrors.ErrUnknownStatus) {
		t.Fatalf("expected unknown status error, got %v", err)
	}
}
