package service_test

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/pkordes/parkslot-booking/backend/internal/domain"
	"github.com/pkordes/parkslot-booking/backend/internal/events"
	"github.com/pkordes/parkslot-booking/backend/internal/repo"
	"github.com/pkordes/parkslot-booking/backend/internal/service"
)

// ---- availability ---------------------------------------------------------

// mockAvailabilityRepo is a hand-written test double for repo.AvailabilityRepo.
type mockAvailabilityRepo struct {
	listDates func(ctx context.Context, listingID uuid.UUID, from domain.CalendarDate) ([]domain.CalendarDate, error)
}

func (m *mockAvailabilityRepo) ListDates(ctx context.Context, listingID uuid.UUID, from domain.CalendarDate) ([]domain.CalendarDate, error) {
	return m.listDates(ctx, listingID, from)
}

var _ repo.AvailabilityRepo = (*mockAvailabilityRepo)(nil)

// offering returns an availability repo that always offers the given days.
func offering(days ...string) *mockAvailabilityRepo {
	dates := make([]domain.CalendarDate, len(days))
	for i, d := range days {
		dates[i] = domain.MustParseCalendarDate(d)
	}
	return &mockAvailabilityRepo{
		listDates: func(context.Context, uuid.UUID, domain.CalendarDate) ([]domain.CalendarDate, error) {
			return dates, nil
		},
	}
}

// ---- vehicles -------------------------------------------------------------

// mockVehicleRepo is a test double for repo.VehicleRepo. Unset function
// fields fall back to succeeding without side effects; every UpdateField
// call is recorded.
type mockVehicleRepo struct {
	add           func(ctx context.Context, draftID uuid.UUID, v domain.VehicleRecord) (domain.VehicleRecord, error)
	remove        func(ctx context.Context, draftID uuid.UUID, vehicleID string) error
	updateField   func(ctx context.Context, draftID uuid.UUID, c domain.VehicleChange) error
	deleteByDraft func(ctx context.Context, draftID uuid.UUID) error

	mu      sync.Mutex
	updates []domain.VehicleChange
	deleted []uuid.UUID
}

func (m *mockVehicleRepo) Add(ctx context.Context, draftID uuid.UUID, v domain.VehicleRecord) (domain.VehicleRecord, error) {
	if m.add != nil {
		return m.add(ctx, draftID, v)
	}
	v.ID = uuid.NewString()
	return v, nil
}
func (m *mockVehicleRepo) Remove(ctx context.Context, draftID uuid.UUID, vehicleID string) error {
	if m.remove != nil {
		return m.remove(ctx, draftID, vehicleID)
	}
	return nil
}
func (m *mockVehicleRepo) ListByDraft(context.Context, uuid.UUID) ([]domain.VehicleRecord, error) {
	return []domain.VehicleRecord{}, nil
}
func (m *mockVehicleRepo) UpdateField(ctx context.Context, draftID uuid.UUID, c domain.VehicleChange) error {
	m.mu.Lock()
	m.updates = append(m.updates, c)
	m.mu.Unlock()
	if m.updateField != nil {
		return m.updateField(ctx, draftID, c)
	}
	return nil
}
func (m *mockVehicleRepo) DeleteByDraft(ctx context.Context, draftID uuid.UUID) error {
	m.mu.Lock()
	m.deleted = append(m.deleted, draftID)
	m.mu.Unlock()
	if m.deleteByDraft != nil {
		return m.deleteByDraft(ctx, draftID)
	}
	return nil
}

var _ repo.VehicleRepo = (*mockVehicleRepo)(nil)

// ---- slots ----------------------------------------------------------------

// mockSlotRepo is a hand-written test double for repo.SlotRepo.
type mockSlotRepo struct {
	getByID func(ctx context.Context, id uuid.UUID) (domain.Slot, error)
	cancel  func(ctx context.Context, id uuid.UUID, reason string) (domain.CancellationResult, error)
}

func (m *mockSlotRepo) Create(context.Context, domain.Slot) (domain.Slot, error) {
	panic("not used by the service")
}
func (m *mockSlotRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Slot, error) {
	return m.getByID(ctx, id)
}
func (m *mockSlotRepo) Cancel(ctx context.Context, id uuid.UUID, reason string) (domain.CancellationResult, error) {
	return m.cancel(ctx, id, reason)
}

var _ repo.SlotRepo = (*mockSlotRepo)(nil)

// ---- events ---------------------------------------------------------------

// recordingPublisher captures every published message and closed draft.
type recordingPublisher struct {
	mu       sync.Mutex
	messages []events.Message
	closed   []uuid.UUID
}

func (p *recordingPublisher) Publish(_ uuid.UUID, msg events.Message) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msg)
}
func (p *recordingPublisher) Close(draftID uuid.UUID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = append(p.closed, draftID)
}

func (p *recordingPublisher) types() []events.Type {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.Type, len(p.messages))
	for i, m := range p.messages {
		out[i] = m.Type
	}
	return out
}

var _ service.Publisher = (*recordingPublisher)(nil)
