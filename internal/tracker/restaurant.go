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

// BoardSnapshot is a restaurant's orders partitioned by lifecycle bucket.
type BoardSnapshot struct {
	Active    []model.TrackedOrder `json:"active"`
	Completed []model.TrackedOrder `json:"completed"`
	Cancelled []model.TrackedOrder `json:"cancelled"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

// SnapshotCache is a second-level store for board snapshots. Boards fall back
// to it when the order service is unreachable and no in-memory snapshot exists.
type SnapshotCache interface {
	SaveBoard(ctx context.Context, restaurantID string, snapshot BoardSnapshot) error
	LoadBoard(ctx context.Context, restaurantID string) (*BoardSnapshot, error)
}

// Board keeps a restaurant's order list current by polling the order service
// and serves it bucketed. Status updates are validated against the snapshot
// before they reach the order service.
type Board struct {
	restaurantID string
	orders       *usecase.OrderUseCase
	cache        SnapshotCache
	log          *slog.Logger
	clock        func() time.Time

	task *poller.Task
	seq  poller.Sequencer

	mu       sync.RWMutex
	snapshot BoardSnapshot
	statuses map[string]model.OrderStatus
	loaded   bool
	loading  bool
	lastErr  string
}

// NewBoard constructs a board for one restaurant. The cache may be nil.
func NewBoard(restaurantID string, orders *usecase.OrderUseCase, cache SnapshotCache, interval time.Duration, log *slog.Logger) *Board {
	b := &Board{
		restaurantID: restaurantID,
		orders:       orders,
		cache:        cache,
		log:          log.With("restaurant_id", restaurantID),
		clock:        time.Now,
	}
	b.task = poller.New(interval, func(ctx context.Context) bool {
		b.Refresh(ctx, !b.hasLoaded())
		return true
	})
	return b
}

// Start begins background polling. The first refresh reports a loading state,
// later ones are silent.
func (b *Board) Start(ctx context.Context) { b.task.Start(ctx) }

// Stop halts background polling. The snapshot stays readable.
func (b *Board) Stop() { b.task.Stop() }

// Refresh fetches the restaurant's orders and rebuilds the buckets. With
// showLoading the board reports a loading state for the duration of the fetch;
// silent refreshes leave it untouched so readers never see the board flicker.
func (b *Board) Refresh(ctx context.Context, showLoading bool) error {
	if showLoading {
		b.mu.Lock()
		b.loading = true
		b.mu.Unlock()
	}

	seq := b.seq.Next()
	orders, err := b.orders.ListByRestaurant(ctx, b.restaurantID)
	now := b.clock()

	if err != nil {
		b.log.Warn("board refresh failed", "error", err)
		b.mu.Lock()
		b.loading = false
		b.lastErr = err.Error()
		loaded := b.loaded
		b.mu.Unlock()
		if !loaded {
			b.restoreFromCache(ctx)
		}
		return err
	}

	snapshot, statuses := buildSnapshot(orders, now)
	if !b.seq.Commit(seq) {
		return nil
	}

	b.mu.Lock()
	b.snapshot = snapshot
	b.statuses = statuses
	b.loaded = true
	b.loading = false
	b.lastErr = ""
	b.mu.Unlock()

	if b.cache != nil {
		if err := b.cache.SaveBoard(ctx, b.restaurantID, snapshot); err != nil {
			b.log.Warn("board snapshot cache save failed", "error", err)
		}
	}
	return nil
}

// UpdateStatus moves one of the board's orders to a new canonical status. It
// reports false without calling the order service when the order is unknown to
// the snapshot or the transition is not permitted from the status last seen.
// A confirmed update is followed by a silent refresh.
func (b *Board) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) bool {
	b.mu.RLock()
	prev, known := b.statuses[orderID]
	b.mu.RUnlock()

	if !known {
		b.log.Warn("status update for order outside snapshot", "order_id", orderID)
		return false
	}
	if !model.CanTransition(prev, status) {
		b.log.Warn("status update rejected",
			"order_id", orderID, "from", prev, "to", status)
		return false
	}

	if err := b.orders.UpdateStatus(ctx, orderID, status); err != nil {
		b.log.Warn("status update failed", "order_id", orderID, "error", err)
		b.mu.Lock()
		b.lastErr = err.Error()
		b.mu.Unlock()
		return false
	}

	if err := b.Refresh(ctx, false); err != nil {
		b.log.Warn("refresh after status update failed", "error", err)
	}
	return true
}

// Snapshot returns the current buckets along with the loading flag and the
// last refresh error, empty when the last refresh succeeded.
func (b *Board) Snapshot() (BoardSnapshot, bool, string) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.snapshot, b.loading, b.lastErr
}

// StatusOf returns the canonical status the board last saw for an order.
func (b *Board) StatusOf(orderID string) (model.OrderStatus, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	s, ok := b.statuses[orderID]
	return s, ok
}

func (b *Board) hasLoaded() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.loaded
}

func (b *Board) restoreFromCache(ctx context.Context) {
	if b.cache == nil {
		return
	}
	cached, err := b.cache.LoadBoard(ctx, b.restaurantID)
	if err != nil {
		b.log.Warn("board snapshot cache load failed", "error", err)
		return
	}
	if cached == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.loaded {
		return
	}
	b.snapshot = *cached
	b.statuses = statusIndex(cached)
	b.loaded = true
	b.log.Info("board restored from cached snapshot", "updated_at", cached.UpdatedAt)
}

func buildSnapshot(orders []model.Order, now time.Time) (BoardSnapshot, map[string]model.OrderStatus) {
	snapshot := BoardSnapshot{
		Active:    []model.TrackedOrder{},
		Completed: []model.TrackedOrder{},
		Cancelled: []model.TrackedOrder{},
		UpdatedAt: now,
	}
	statuses := make(map[string]model.OrderStatus, len(orders))

	for _, order := range orders {
		bucket, ok := model.BucketOf(order.OrderStatus)
		if !ok {
			continue
		}
		tracked := usecase.Adapt(order, now)
		statuses[tracked.ID] = order.OrderStatus
		switch bucket {
		case model.BucketActive:
			snapshot.Active = append(snapshot.Active, tracked)
		case model.BucketCompleted:
			snapshot.Completed = append(snapshot.Completed, tracked)
		case model.BucketCancelled:
			snapshot.Cancelled = append(snapshot.Cancelled, tracked)
		}
	}
	return snapshot, statuses
}

func statusIndex(snapshot *BoardSnapshot) map[string]model.OrderStatus {
	statuses := make(map[string]model.OrderStatus)
	for _, group := range [][]model.TrackedOrder{snapshot.Active, snapshot.Completed, snapshot.Cancelled} {
		for _, tracked := range group {
			statuses[tracked.ID] = statusForStage(tracked.Stage)
		}
	}
	return statuses
}

// statusForStage picks a canonical status representative of a display stage.
// Cached snapshots only carry stages, so restored boards guard transitions
// against the coarser value until a live refresh succeeds.
func statusForStage(stage model.Stage) model.OrderStatus {
	switch stage {
	case model.StageAccepted:
		return model.OrderStatusAccepted
	case model.StagePreparing:
		return model.OrderStatusPreparing
	case model.StageReady:
		return model.OrderStatusReady
	case model.StagePickedUp:
		return model.OrderStatusPickedUp
	case model.StageDelivered:
		return model.OrderStatusDelivered
	case model.StageCancelled:
		return model.OrderStatusCancelled
	default:
		return model.OrderStatusPending
	}
}
