package poller

import (
	"context"
	"sync"
	"time"
)

// TickFunc is one poll. Returning false stops the task from within the tick,
// which is how trackers self-terminate on terminal statuses.
type TickFunc func(ctx context.Context) bool

// Task is a cancellable interval poll with an explicit start/stop lifecycle.
// Start fires one immediate tick, then repeats on the interval until the
// context is cancelled, Stop is called, or a tick returns false.
type Task struct {
	interval time.Duration
	tick     TickFunc

	mu      sync.Mutex
	cancel  context.CancelFunc
	running bool
	wg      sync.WaitGroup
}

// New constructs a polling task. A non-positive interval defaults to a second.
func New(interval time.Duration, tick TickFunc) *Task {
	if interval <= 0 {
		interval = time.Second
	}
	return &Task{interval: interval, tick: tick}
}

// Start launches the poll loop. Starting a running task is a no-op.
func (t *Task) Start(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.running = true
	t.wg.Add(1)
	go t.loop(runCtx)
}

// Stop cancels the loop and waits for the in-progress tick to return.
// Stopping an already stopped task is a no-op.
func (t *Task) Stop() {
	t.mu.Lock()
	cancel := t.cancel
	t.cancel = nil
	t.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	t.wg.Wait()
}

// Running reports whether the poll loop is active.
func (t *Task) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

func (t *Task) loop(ctx context.Context) {
	defer t.wg.Done()
	defer func() {
		t.mu.Lock()
		t.running = false
		t.mu.Unlock()
	}()

	if !t.tick(ctx) {
		return
	}

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !t.tick(ctx) {
				return
			}
		}
	}
}

// Sequencer tags fetches with monotonically increasing sequence numbers so
// that a response overtaken by a newer one is discarded instead of clobbering
// fresher state.
type Sequencer struct {
	mu      sync.Mutex
	next    uint64
	applied uint64
}

// Next reserves the sequence number for a fetch about to start.
func (s *Sequencer) Next() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return s.next
}

// Commit records a completed fetch. It returns false when a newer fetch has
// already been applied, in which case the caller must drop its result.
func (s *Sequencer) Commit(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq <= s.applied {
		return false
	}
	s.applied = seq
	return true
}
