// Package service hosts the booking state machines for HTTP clients.
// It owns the in-memory drafts and confirmations, serializes every event
// for one of them behind its own mutex, and hands the machines' outputs to
// the persistence and event collaborators. No SQL lives here.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/parkslot-booking/backend/internal/booking"
	"github.com/pkordes/parkslot-booking/backend/internal/domain"
	"github.com/pkordes/parkslot-booking/backend/internal/events"
	"github.com/pkordes/parkslot-booking/backend/internal/repo"
)

// Publisher delivers draft events to live subscribers.
// Satisfied by *events.Hub.
type Publisher interface {
	Publish(draftID uuid.UUID, msg events.Message)
	Close(draftID uuid.UUID)
}

// draft is one booking configuration in progress. Every field below mu is
// guarded by it, which makes each request on a draft one atomic step.
type draft struct {
	id        uuid.UUID
	listingID uuid.UUID
	mode      domain.DraftMode
	touched   atomic.Int64 // unix nanoseconds of the last successful step
	expired   atomic.Bool  // set once ExpireIdle has dropped the draft

	mu     sync.Mutex
	single *booking.SingleDateSelection
	multi  *booking.MultiDateSelection
	roster *booking.VehicleRoster

	// Outputs emitted by the state machines during the current step,
	// in order, waiting to be flushed.
	pendingChanges []domain.VehicleChange
	pendingEvents  []events.Message
}

// DraftService implements the booking configuration workflow.
type DraftService struct {
	availability repo.AvailabilityRepo
	vehicles     repo.VehicleRepo
	events       Publisher
	log          *slog.Logger
	ttl          time.Duration

	mu     sync.Mutex
	drafts map[uuid.UUID]*draft
}

// NewDraftService constructs a DraftService. Drafts untouched for longer than
// ttl are removed by ExpireIdle. A nil logger falls back to slog.Default().
func NewDraftService(availability repo.AvailabilityRepo, vehicles repo.VehicleRepo, pub Publisher, log *slog.Logger, ttl time.Duration) *DraftService {
	if log == nil {
		log = slog.Default()
	}
	return &DraftService{
		availability: availability,
		vehicles:     vehicles,
		events:       pub,
		log:          log,
		ttl:          ttl,
		drafts:       make(map[uuid.UUID]*draft),
	}
}

// AvailableDates returns the listing's DateIndex from today onward, freshly
// read on every call.
func (s *DraftService) AvailableDates(ctx context.Context, listingID uuid.UUID) (domain.DateIndex, error) {
	dates, err := s.availability.ListDates(ctx, listingID, domain.DateOf(time.Now()))
	if err != nil {
		return domain.DateIndex{}, fmt.Errorf("service.DraftService.AvailableDates: %w", err)
	}
	return domain.NewDateIndex(dates), nil
}

// Create starts a new draft for the listing in the given mode with an empty
// selection and roster.
func (s *DraftService) Create(ctx context.Context, listingID uuid.UUID, mode domain.DraftMode) (domain.DraftSnapshot, error) {
	if _, err := domain.ParseDraftMode(string(mode)); err != nil {
		return domain.DraftSnapshot{}, fmt.Errorf("service.DraftService.Create: %w", err)
	}
	if listingID == uuid.Nil {
		return domain.DraftSnapshot{}, fmt.Errorf("service.DraftService.Create: %w: listing_id is required", domain.ErrValidation)
	}

	d := &draft{
		id:        uuid.New(),
		listingID: listingID,
		mode:      mode,
	}
	d.touched.Store(time.Now().UnixNano())
	d.single = booking.NewSingleDateSelection(func(date domain.CalendarDate) {
		d.emit(events.TypeDateSelected, map[string]any{"date": date})
	})
	d.multi = booking.NewMultiDateSelection(func(dates []domain.CalendarDate) {
		d.emit(events.TypeDatesChanged, map[string]any{"dates": dates, "count": len(dates)})
	})
	d.roster = s.newRoster(d, nil)
	snap := d.snapshot()

	s.mu.Lock()
	s.drafts[d.id] = d
	s.mu.Unlock()

	s.log.InfoContext(ctx, "draft created", "draft_id", d.id, "listing_id", listingID, "mode", string(mode))
	return snap, nil
}

// Get returns the current state of a draft.
// Returns domain.ErrNotFound if the draft does not exist or has expired.
func (s *DraftService) Get(ctx context.Context, id uuid.UUID) (domain.DraftSnapshot, error) {
	d, err := s.lookup(id)
	if err != nil {
		return domain.DraftSnapshot{}, fmt.Errorf("service.DraftService.Get: %w", err)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.expired.Load() {
		return domain.DraftSnapshot{}, fmt.Errorf("service.DraftService.Get: %w", domain.ErrNotFound)
	}
	return d.snapshot(), nil
}

// SelectDate replaces the selected date of a single mode draft.
// The date must be in the listing's current DateIndex.
func (s *DraftService) SelectDate(ctx context.Context, id uuid.UUID, date domain.CalendarDate) (domain.DraftSnapshot, error) {
	return s.step(ctx, id, "SelectDate", func(d *draft) error {
		if d.mode != domain.DraftModeSingle {
			return fmt.Errorf("%w: draft is in %s mode", domain.ErrValidation, d.mode)
		}
		if err := s.requireOffered(ctx, d.listingID, date); err != nil {
			return err
		}
		d.single.Select(date)
		return nil
	})
}

// ToggleDate adds or removes a date on a multi mode draft. Only adding is
// checked against the DateIndex, so a date that stopped being offered can
// still be deselected.
func (s *DraftService) ToggleDate(ctx context.Context, id uuid.UUID, date domain.CalendarDate) (domain.DraftSnapshot, error) {
	return s.step(ctx, id, "ToggleDate", func(d *draft) error {
		if d.mode != domain.DraftModeMulti {
			return fmt.Errorf("%w: draft is in %s mode", domain.ErrValidation, d.mode)
		}
		if !d.multi.Contains(date) {
			if err := s.requireOffered(ctx, d.listingID, date); err != nil {
				return err
			}
		}
		d.multi.Toggle(date)
		return nil
	})
}

// AddVehicle appends a vehicle to the draft's roster.
func (s *DraftService) AddVehicle(ctx context.Context, id uuid.UUID, vehicle domain.VehicleRecord) (domain.DraftSnapshot, error) {
	return s.step(ctx, id, "AddVehicle", func(d *draft) error {
		vt, err := domain.ParseVehicleType(string(vehicle.Type))
		if err != nil {
			return err
		}
		vehicle.Type = vt

		added, err := s.vehicles.Add(ctx, d.id, vehicle)
		if err != nil {
			return err
		}
		d.roster = s.newRoster(d, append(d.roster.Records(), added))
		d.emit(events.TypeRosterChanged, map[string]any{"vehicles": d.roster.Records()})
		return nil
	})
}

// RemoveVehicle takes a vehicle off the draft's roster.
// Returns domain.ErrNotFound if the vehicle is not on it.
func (s *DraftService) RemoveVehicle(ctx context.Context, id uuid.UUID, vehicleID string) (domain.DraftSnapshot, error) {
	return s.step(ctx, id, "RemoveVehicle", func(d *draft) error {
		if _, ok := d.roster.Get(vehicleID); !ok {
			return domain.ErrNotFound
		}
		if err := s.vehicles.Remove(ctx, d.id, vehicleID); err != nil {
			return err
		}
		remaining := slices.DeleteFunc(d.roster.Records(), func(v domain.VehicleRecord) bool {
			return v.ID == vehicleID
		})
		d.roster = s.newRoster(d, remaining)
		d.emit(events.TypeRosterChanged, map[string]any{"vehicles": d.roster.Records()})
		return nil
	})
}

// SetVehicleField edits one field of one vehicle.
// Returns domain.ErrValidation for an unknown field or vehicle type and
// domain.ErrNotFound if the vehicle is not on the roster.
func (s *DraftService) SetVehicleField(ctx context.Context, id uuid.UUID, vehicleID, field, value string) (domain.DraftSnapshot, error) {
	return s.step(ctx, id, "SetVehicleField", func(d *draft) error {
		f, err := domain.ParseVehicleField(field)
		if err != nil {
			return err
		}
		if f == domain.VehicleFieldType {
			if _, err := domain.ParseVehicleType(value); err != nil {
				return err
			}
		}
		if !d.roster.SetField(vehicleID, f, value) {
			return domain.ErrNotFound
		}
		return nil
	})
}

// ExpireIdle removes drafts untouched since before now minus the TTL along
// with their persisted rosters, then disconnects their subscribers. It returns
// the number of drafts removed. A step already running on an expired draft fails
// with domain.ErrNotFound and removes anything it persisted.
func (s *DraftService) ExpireIdle(ctx context.Context, now time.Time) int {
	cutoff := now.Add(-s.ttl).UnixNano()

	s.mu.Lock()
	var expired []*draft
	for id, d := range s.drafts {
		if d.touched.Load() < cutoff {
			d.expired.Store(true)
			expired = append(expired, d)
			delete(s.drafts, id)
		}
	}
	s.mu.Unlock()

	for _, d := range expired {
		if err := s.vehicles.DeleteByDraft(ctx, d.id); err != nil {
			s.log.ErrorContext(ctx, "drop expired draft vehicles", "draft_id", d.id, "error", err)
		}
		if s.events != nil {
			s.events.Publish(d.id, events.NewMessage(events.TypeDraftExpired, d.id, nil))
			s.events.Close(d.id)
		}
	}
	return len(expired)
}

// step runs fn as one serialized event on the draft, then flushes whatever
// the state machines emitted. Vehicle changes are persisted before events
// go out so subscribers never see an edit the store rejected.
func (s *DraftService) step(ctx context.Context, id uuid.UUID, op string, fn func(d *draft) error) (domain.DraftSnapshot, error) {
	d, err := s.lookup(id)
	if err != nil {
		return domain.DraftSnapshot{}, fmt.Errorf("service.DraftService.%s: %w", op, err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.expired.Load() {
		return domain.DraftSnapshot{}, fmt.Errorf("service.DraftService.%s: %w", op, domain.ErrNotFound)
	}

	d.pendingChanges, d.pendingEvents = nil, nil
	before := d.roster.Records()
	if err := fn(d); err != nil {
		return domain.DraftSnapshot{}, fmt.Errorf("service.DraftService.%s: %w", op, err)
	}

	for _, c := range d.pendingChanges {
		if err := s.vehicles.UpdateField(ctx, d.id, c); err != nil {
			d.roster = s.newRoster(d, before)
			d.pendingChanges, d.pendingEvents = nil, nil
			return domain.DraftSnapshot{}, fmt.Errorf("service.DraftService.%s: persist vehicle change: %w", op, err)
		}
	}

	// ExpireIdle does not wait for a running step. If it dropped the draft
	// meanwhile, whatever this step wrote outlived that cleanup.
	if d.expired.Load() {
		d.pendingChanges, d.pendingEvents = nil, nil
		if err := s.vehicles.DeleteByDraft(ctx, d.id); err != nil {
			s.log.ErrorContext(ctx, "drop vehicles written after expiry", "draft_id", d.id, "error", err)
		}
		return domain.DraftSnapshot{}, fmt.Errorf("service.DraftService.%s: %w", op, domain.ErrNotFound)
	}
	d.touched.Store(time.Now().UnixNano())
	if s.events != nil {
		for _, msg := range d.pendingEvents {
			s.events.Publish(d.id, msg)
		}
	}
	d.pendingChanges, d.pendingEvents = nil, nil

	return d.snapshot(), nil
}

func (s *DraftService) lookup(id uuid.UUID) (*draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return d, nil
}

// requireOffered rejects dates missing from the listing's current index.
func (s *DraftService) requireOffered(ctx context.Context, listingID uuid.UUID, date domain.CalendarDate) error {
	if date.IsZero() {
		return fmt.Errorf("%w: date is required", domain.ErrValidation)
	}
	idx, err := s.AvailableDates(ctx, listingID)
	if err != nil {
		return err
	}
	if !idx.Contains(date) {
		return fmt.Errorf("%w: %s is not available", domain.ErrValidation, date)
	}
	return nil
}

func (s *DraftService) newRoster(d *draft, records []domain.VehicleRecord) *booking.VehicleRoster {
	return booking.NewVehicleRoster(records, func(c domain.VehicleChange) {
		d.pendingChanges = append(d.pendingChanges, c)
		d.emit(events.TypeVehicleChanged, c)
	}, s.log.With("draft_id", d.id))
}

// emit queues an event for the current step. Callers hold d.mu.
func (d *draft) emit(t events.Type, payload any) {
	d.pendingEvents = append(d.pendingEvents, events.NewMessage(t, d.id, payload))
}

// snapshot copies the draft's state. Callers hold d.mu.
func (d *draft) snapshot() domain.DraftSnapshot {
	snap := domain.DraftSnapshot{
		ID:            d.id,
		ListingID:     d.listingID,
		Mode:          d.mode,
		SelectedDates: d.multi.Members(),
		Vehicles:      d.roster.Records(),
		UpdatedAt:     time.Unix(0, d.touched.Load()).UTC(),
	}
	if date, ok := d.single.Current(); ok {
		snap.SelectedDate = &date
	}
	return snap
}
