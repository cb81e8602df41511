package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/parkslot-booking/backend/internal/booking"
	"github.com/pkordes/parkslot-booking/backend/internal/domain"
	"github.com/pkordes/parkslot-booking/backend/internal/repo"
)

// confirmation is one open cancellation dialog.
type confirmation struct {
	id      uuid.UUID
	slotID  uuid.UUID
	touched atomic.Int64

	mu      sync.Mutex
	machine *booking.CancellationConfirmation
	emitted []string
}

// CancellationService runs reason-gated slot cancellations. Each confirmation
// lives from Open until it is confirmed, dismissed, or expires.
type CancellationService struct {
	slots repo.SlotRepo
	log   *slog.Logger
	ttl   time.Duration

	mu   sync.Mutex
	open map[uuid.UUID]*confirmation
}

// NewCancellationService constructs a CancellationService backed by the
// provided SlotRepo. A nil logger falls back to slog.Default().
func NewCancellationService(slots repo.SlotRepo, log *slog.Logger, ttl time.Duration) *CancellationService {
	if log == nil {
		log = slog.Default()
	}
	return &CancellationService{
		slots: slots,
		log:   log,
		ttl:   ttl,
		open:  make(map[uuid.UUID]*confirmation),
	}
}

// Open starts a confirmation for the slot with an empty reason.
// Returns domain.ErrNotFound for an unknown slot and domain.ErrConflict if
// the slot is already cancelled.
func (s *CancellationService) Open(ctx context.Context, slotID uuid.UUID) (domain.CancellationSnapshot, error) {
	slot, err := s.slots.GetByID(ctx, slotID)
	if err != nil {
		return domain.CancellationSnapshot{}, fmt.Errorf("service.CancellationService.Open: %w", err)
	}
	if slot.Status == domain.SlotStatusCancelled {
		return domain.CancellationSnapshot{}, fmt.Errorf("service.CancellationService.Open: slot already cancelled: %w", domain.ErrConflict)
	}

	c := &confirmation{id: uuid.New(), slotID: slotID}
	c.touched.Store(time.Now().UnixNano())
	c.machine = booking.NewCancellationConfirmation(func(reason string) {
		c.emitted = append(c.emitted, reason)
	})
	c.machine.Open(slot.Details)
	snap := c.snapshot()

	s.mu.Lock()
	s.open[c.id] = c
	s.mu.Unlock()

	return snap, nil
}

// Get returns the current state of an open confirmation.
func (s *CancellationService) Get(ctx context.Context, id uuid.UUID) (domain.CancellationSnapshot, error) {
	c, err := s.lookup(id)
	if err != nil {
		return domain.CancellationSnapshot{}, fmt.Errorf("service.CancellationService.Get: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot(), nil
}

// UpdateReason replaces the buffered reason verbatim.
func (s *CancellationService) UpdateReason(ctx context.Context, id uuid.UUID, reason string) (domain.CancellationSnapshot, error) {
	c, err := s.lookup(id)
	if err != nil {
		return domain.CancellationSnapshot{}, fmt.Errorf("service.CancellationService.UpdateReason: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// A confirmation closed by a concurrent request is gone.
	if !c.machine.UpdateReason(reason) {
		return domain.CancellationSnapshot{}, fmt.Errorf("service.CancellationService.UpdateReason: %w", domain.ErrNotFound)
	}
	c.touched.Store(time.Now().UnixNano())
	return c.snapshot(), nil
}

// Confirm performs the cancellation with the trimmed reason.
// Returns domain.ErrReasonRequired, leaving the confirmation open, when the
// trimmed reason is empty. Once the reason has been emitted the confirmation
// is closed even if the slot store then fails.
func (s *CancellationService) Confirm(ctx context.Context, id uuid.UUID) (domain.CancellationResult, error) {
	c, err := s.lookup(id)
	if err != nil {
		return domain.CancellationResult{}, fmt.Errorf("service.CancellationService.Confirm: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.machine.State() != booking.StateOpen {
		return domain.CancellationResult{}, fmt.Errorf("service.CancellationService.Confirm: %w", domain.ErrNotFound)
	}

	c.emitted = nil
	if _, ok := c.machine.Confirm(); !ok {
		c.touched.Store(time.Now().UnixNano())
		return domain.CancellationResult{}, fmt.Errorf("service.CancellationService.Confirm: %w", domain.ErrReasonRequired)
	}
	s.forget(c.id)

	if len(c.emitted) != 1 {
		return domain.CancellationResult{}, fmt.Errorf("service.CancellationService.Confirm: expected one emitted reason, got %d", len(c.emitted))
	}
	reason := c.emitted[0]

	result, err := s.slots.Cancel(ctx, c.slotID, reason)
	if err != nil {
		return domain.CancellationResult{}, fmt.Errorf("service.CancellationService.Confirm: %w", err)
	}
	s.log.InfoContext(ctx, "slot cancelled",
		"slot_id", result.SlotID,
		"confirmation_id", c.id,
		"notified_bookings", result.NotifiedBookings,
	)
	return result, nil
}

// Dismiss closes the confirmation without cancelling anything.
func (s *CancellationService) Dismiss(ctx context.Context, id uuid.UUID) error {
	c, err := s.lookup(id)
	if err != nil {
		return fmt.Errorf("service.CancellationService.Dismiss: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.machine.Dismiss() {
		return fmt.Errorf("service.CancellationService.Dismiss: %w", domain.ErrNotFound)
	}
	s.forget(c.id)
	return nil
}

// ExpireIdle dismisses confirmations untouched since before now minus the
// TTL and returns how many were removed.
func (s *CancellationService) ExpireIdle(ctx context.Context, now time.Time) int {
	cutoff := now.Add(-s.ttl).UnixNano()

	s.mu.Lock()
	var expired []*confirmation
	for id, c := range s.open {
		if c.touched.Load() < cutoff {
			expired = append(expired, c)
			delete(s.open, id)
		}
	}
	s.mu.Unlock()

	for _, c := range expired {
		c.mu.Lock()
		c.machine.Dismiss()
		c.mu.Unlock()
	}
	return len(expired)
}

func (s *CancellationService) lookup(id uuid.UUID) (*confirmation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.open[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (s *CancellationService) forget(id uuid.UUID) {
	s.mu.Lock()
	delete(s.open, id)
	s.mu.Unlock()
}

// snapshot copies the confirmation's state. Callers hold c.mu.
func (c *confirmation) snapshot() domain.CancellationSnapshot {
	return domain.CancellationSnapshot{
		ID:         c.id,
		SlotID:     c.slotID,
		State:      string(c.machine.State()),
		Slot:       c.machine.Details(),
		Reason:     c.machine.Reason(),
		CanConfirm: c.machine.CanConfirm(),
	}
}
