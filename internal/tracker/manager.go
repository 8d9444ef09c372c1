package tracker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/flooeats/tracking/internal/config"
	"github.com/flooeats/tracking/internal/usecase"
)

// Manager owns the long-lived tracking components, one per restaurant, order
// and driver, creating them on first use and stopping them all on shutdown.
// Background polling runs on the application context, not on the request
// context that happened to create a component.
type Manager struct {
	ctx     context.Context
	orders  *usecase.OrderUseCase
	drivers *usecase.DriverUseCase

	cache     SnapshotCache
	publisher StagePublisher
	log       *slog.Logger

	boardInterval time.Duration
	trackInterval time.Duration
	shiftInterval time.Duration

	mu       sync.Mutex
	boards   map[string]*Board
	trackers map[int64]*Tracker
	shifts   map[string]*Shift
}

// NewManager constructs the registry. Cache and publisher may be nil when the
// corresponding backend is not configured.
func NewManager(ctx context.Context, cfg *config.Config, orders *usecase.OrderUseCase, drivers *usecase.DriverUseCase, cache SnapshotCache, publisher StagePublisher, log *slog.Logger) *Manager {
	return &Manager{
		ctx:           ctx,
		orders:        orders,
		drivers:       drivers,
		cache:         cache,
		publisher:     publisher,
		log:           log,
		boardInterval: cfg.RestaurantPollInterval,
		trackInterval: cfg.TrackingPollInterval,
		shiftInterval: cfg.DriverPollInterval,
		boards:        make(map[string]*Board),
		trackers:      make(map[int64]*Tracker),
		shifts:        make(map[string]*Shift),
	}
}

// Board returns the board for a restaurant, starting its polling on first use.
func (m *Manager) Board(restaurantID string) *Board {
	m.mu.Lock()
	defer m.mu.Unlock()
	board, ok := m.boards[restaurantID]
	if !ok {
		board = NewBoard(restaurantID, m.orders, m.cache, m.boardInterval, m.log)
		m.boards[restaurantID] = board
		board.Start(m.ctx)
	}
	return board
}

// Tracker returns the tracker for an order, starting its polling on first use.
// A tracker that stopped itself on a terminal status is not restarted; its
// last projection stays available and manual refreshes still work.
func (m *Manager) Tracker(orderNumber int64) *Tracker {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.trackers[orderNumber]
	if !ok {
		t = NewTracker(orderNumber, m.orders, m.publisher, nil, m.trackInterval, m.log)
		m.trackers[orderNumber] = t
		t.Start(m.ctx)
	}
	return t
}

// Shift returns the shift for a driver, creating it offline on first use.
func (m *Manager) Shift(driverID string) *Shift {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.shifts[driverID]
	if !ok {
		s = NewShift(driverID, m.orders, m.drivers, m.shiftInterval, m.log)
		m.shifts[driverID] = s
	}
	return s
}

// StopAll halts every running component. It is the shutdown hook.
func (m *Manager) StopAll() {
	m.mu.Lock()
	boards := make([]*Board, 0, len(m.boards))
	for _, b := range m.boards {
		boards = append(boards, b)
	}
	trackers := make([]*Tracker, 0, len(m.trackers))
	for _, t := range m.trackers {
		trackers = append(trackers, t)
	}
	shifts := make([]*Shift, 0, len(m.shifts))
	for _, s := range m.shifts {
		shifts = append(shifts, s)
	}
	m.mu.Unlock()

	for _, b := range boards {
		b.Stop()
	}
	for _, t := range trackers {
		t.Stop()
	}
	for _, s := range shifts {
		s.Stop()
	}
	m.log.Info("tracking components stopped",
		"boards", len(boards), "trackers", len(trackers), "shifts", len(shifts))
}
