package tracker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/flooeats/tracking/internal/domain/model"
	"github.com/flooeats/tracking/internal/poller"
	"github.com/flooeats/tracking/internal/usecase"
)

// StagePublisher emits stage-change events to the event log. Publishing is
// best effort; a failed publish never blocks tracking.
type StagePublisher interface {
	PublishStageChange(ctx context.Context, transition model.Transition) error
}

// StageChangeFunc is notified when a tracked order's display stage moves.
type StageChangeFunc func(stage model.Stage)

// Tracker follows one order for a customer. It polls the order service,
// records observed stage changes into history, publishes them, and stops on
// its own once the order reaches a state no further tracking can change.
type Tracker struct {
	orderNumber int64
	orders      *usecase.OrderUseCase
	publisher   StagePublisher
	onChange    StageChangeFunc
	log         *slog.Logger
	clock       func() time.Time

	task *poller.Task
	seq  poller.Sequencer

	mu         sync.RWMutex
	current    *model.TrackedOrder
	lastStatus model.OrderStatus
	lastErr    string
}

// NewTracker constructs a tracker for one order. Publisher and onChange may
// be nil.
func NewTracker(orderNumber int64, orders *usecase.OrderUseCase, publisher StagePublisher, onChange StageChangeFunc, interval time.Duration, log *slog.Logger) *Tracker {
	t := &Tracker{
		orderNumber: orderNumber,
		orders:      orders,
		publisher:   publisher,
		onChange:    onChange,
		log:         log.With("order_number", orderNumber),
		clock:       time.Now,
	}
	t.task = poller.New(interval, func(ctx context.Context) bool {
		complete, _ := t.Refresh(ctx)
		return !complete
	})
	return t
}

// Start begins polling with an immediate first fetch.
func (t *Tracker) Start(ctx context.Context) { t.task.Start(ctx) }

// Stop halts polling. The last projection stays readable and Refresh still
// works for pull-based callers.
func (t *Tracker) Stop() { t.task.Stop() }

// Running reports whether the tracker is polling in the background.
func (t *Tracker) Running() bool { return t.task.Running() }

// Refresh fetches the order once and applies the result. It reports whether
// the order has reached a state where tracking is complete. Fetch errors are
// retained for readers and do not end tracking.
func (t *Tracker) Refresh(ctx context.Context) (complete bool, err error) {
	seq := t.seq.Next()
	now := t.clock()

	tracked, status, err := t.orders.Observe(ctx, t.orderNumber, now)
	if err != nil {
		t.log.Warn("order refresh failed", "error", err)
		t.mu.Lock()
		t.lastErr = err.Error()
		t.mu.Unlock()
		return false, err
	}
	if !t.seq.Commit(seq) {
		return status.TrackingComplete(), nil
	}

	t.mu.Lock()
	prevStatus := t.lastStatus
	t.current = tracked
	t.lastStatus = status
	t.lastErr = ""
	t.mu.Unlock()

	if prevStatus != "" && model.StageOf(prevStatus) != model.StageOf(status) {
		t.observeChange(ctx, status, now)
	}
	return status.TrackingComplete(), nil
}

// Current returns the latest projection and the last fetch error, empty when
// the last fetch succeeded. The projection is nil before the first success.
func (t *Tracker) Current() (*model.TrackedOrder, string) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.current, t.lastErr
}

func (t *Tracker) observeChange(ctx context.Context, status model.OrderStatus, now time.Time) {
	stage := model.StageOf(status)
	transition := model.Transition{
		OrderNumber: t.orderNumber,
		Stage:       stage,
		Status:      status,
		ObservedAt:  now,
	}
	t.log.Info("order status changed", "status", status, "stage", stage)

	if err := t.orders.RecordTransition(ctx, transition); err != nil {
		t.log.Warn("transition record failed", "error", err)
	}
	if t.publisher != nil {
		if err := t.publisher.PublishStageChange(ctx, transition); err != nil {
			t.log.Warn("stage change publish failed", "error", err)
		}
	}
	if t.onChange != nil {
		t.onChange(stage)
	}
}
