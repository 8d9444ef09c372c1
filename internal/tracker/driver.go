package tracker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	domainErrors "github.com/flooeats/tracking/internal/domain/errors"
	"github.com/flooeats/tracking/internal/domain/model"
	"github.com/flooeats/tracking/internal/poller"
	"github.com/flooeats/tracking/internal/usecase"
)

// Shift runs one driver's availability cycle. While online it polls for
// orders ready for pickup and holds the first one as an offer; accepting an
// offer claims it with the delivery service, and only a confirmed claim moves
// the driver into delivery.
type Shift struct {
	driverID string
	orders   *usecase.OrderUseCase
	drivers  *usecase.DriverUseCase
	log      *slog.Logger

	task *poller.Task
	seq  poller.Sequencer

	mu      sync.RWMutex
	status  model.DriverStatus
	offer   *model.Order
	lastErr string
}

// NewShift constructs a shift for one driver, initially offline.
func NewShift(driverID string, orders *usecase.OrderUseCase, drivers *usecase.DriverUseCase, interval time.Duration, log *slog.Logger) *Shift {
	s := &Shift{
		driverID: driverID,
		orders:   orders,
		drivers:  drivers,
		log:      log.With("driver_id", driverID),
		status:   model.DriverOffline,
	}
	s.task = poller.New(interval, func(ctx context.Context) bool {
		s.poll(ctx)
		return true
	})
	return s
}

// GoOnline marks the driver available with the delivery service and starts
// polling for ready orders.
func (s *Shift) GoOnline(ctx context.Context) error {
	if _, err := s.drivers.UpdateStatus(ctx, s.driverID, model.DriverOnline); err != nil {
		return err
	}
	s.mu.Lock()
	s.status = model.DriverOnline
	s.offer = nil
	s.lastErr = ""
	s.mu.Unlock()

	s.task.Start(ctx)
	return nil
}

// GoOffline marks the driver unavailable, stops polling, and clears any
// pending offer.
func (s *Shift) GoOffline(ctx context.Context) error {
	s.task.Stop()
	s.mu.Lock()
	s.status = model.DriverOffline
	s.offer = nil
	s.mu.Unlock()

	_, err := s.drivers.UpdateStatus(ctx, s.driverID, model.DriverOffline)
	return err
}

// Offer returns the order currently offered to the driver, or nil.
func (s *Shift) Offer() *model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.offer
}

// Status returns the driver's shift state as last confirmed.
func (s *Shift) Status() model.DriverStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// LastError returns the most recent poll error, empty when the last poll
// succeeded.
func (s *Shift) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Accept claims the pending offer. When the delivery service confirms the
// claim the driver moves to DELIVERY and polling stops; when another driver
// already claimed the order the offer is dropped and polling continues, with
// ErrOrderClaimed returned so the caller can tell the two apart.
func (s *Shift) Accept(ctx context.Context) (*model.Order, error) {
	s.mu.RLock()
	offer := s.offer
	status := s.status
	s.mu.RUnlock()

	if status != model.DriverOnline {
		return nil, domainErrors.ErrDriverOffline
	}
	if offer == nil {
		return nil, domainErrors.ErrNoOffer
	}

	if _, err := s.drivers.Assign(ctx, s.driverID, *offer); err != nil {
		if errors.Is(err, domainErrors.ErrOrderClaimed) {
			s.log.Info("offer lost to another driver", "order_number", offer.OrderNumber)
			s.mu.Lock()
			s.offer = nil
			s.mu.Unlock()
		}
		return nil, err
	}

	s.task.Stop()
	s.mu.Lock()
	s.status = model.DriverDelivery
	s.offer = nil
	s.mu.Unlock()

	if _, err := s.drivers.UpdateStatus(ctx, s.driverID, model.DriverDelivery); err != nil {
		s.log.Warn("delivery status update failed after claim", "error", err)
	}
	s.log.Info("offer accepted", "order_number", offer.OrderNumber)
	return offer, nil
}

// Decline drops the pending offer. Polling continues and will surface the
// next ready order, possibly the same one.
func (s *Shift) Decline() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.offer == nil {
		return domainErrors.ErrNoOffer
	}
	s.offer = nil
	return nil
}

// Stop halts polling without touching the driver's state upstream.
func (s *Shift) Stop() { s.task.Stop() }

func (s *Shift) poll(ctx context.Context) {
	s.mu.RLock()
	hasOffer := s.offer != nil
	s.mu.RUnlock()
	if hasOffer {
		return
	}

	seq := s.seq.Next()
	ready, err := s.orders.ListByStatus(ctx, model.OrderStatusReady)
	if err != nil {
		s.log.Warn("ready order poll failed", "error", err)
		s.mu.Lock()
		s.lastErr = err.Error()
		s.mu.Unlock()
		return
	}
	if !s.seq.Commit(seq) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = ""
	if s.offer == nil && s.status == model.DriverOnline && len(ready) > 0 {
		offer := ready[0]
		s.offer = &offer
		s.log.Info("order offered", "order_number", offer.OrderNumber)
	}
}
