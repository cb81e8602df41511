package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/parkslot-booking/backend/internal/domain"
)

// SlotRepo defines the persistence operations for bookable slots.
type SlotRepo interface {
	// Create inserts a new open slot and returns the persisted record.
	Create(ctx context.Context, slot domain.Slot) (domain.Slot, error)

	// GetByID retrieves a slot by primary key.
	// Returns domain.ErrNotFound if no slot with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Slot, error)

	// Cancel marks an open slot cancelled with reason and records one
	// notification per existing booking, atomically.
	// Returns domain.ErrNotFound if the slot does not exist and
	// domain.ErrConflict if it is already cancelled.
	Cancel(ctx context.Context, id uuid.UUID, reason string) (domain.CancellationResult, error)
}

// pgSlotRepo is the Postgres implementation of SlotRepo.
type pgSlotRepo struct {
	db db
}

// NewSlotRepo constructs a SlotRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewSlotRepo(db db) SlotRepo {
	return &pgSlotRepo{db: db}
}

const slotColumns = `
	id, listing_id, date,
	to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'),
	status, cancellation_reason, cancelled_at`

// Create inserts a slot row. Start and end times are "HH:MM" strings.
func (r *pgSlotRepo) Create(ctx context.Context, slot domain.Slot) (domain.Slot, error) {
	q := `
		INSERT INTO slots (listing_id, date, start_time, end_time)
		VALUES (@listing_id, @date, @start_time::time, @end_time::time)
		RETURNING` + slotColumns

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"listing_id": slot.ListingID,
		"date":       slot.Details.Date.Time(),
		"start_time": slot.Details.StartTime,
		"end_time":   slot.Details.EndTime,
	})
	result, err := scanSlot(row)
	if err != nil {
		return domain.Slot{}, fmt.Errorf("repo.SlotRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a slot by primary key.
func (r *pgSlotRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Slot, error) {
	q := `SELECT` + slotColumns + ` FROM slots WHERE id = @id`

	result, err := scanSlot(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Slot{}, fmt.Errorf("repo.SlotRepo.GetByID: %w", err)
	}
	return result, nil
}

// Cancel flips the slot to cancelled and fans the reason out to every
// booking in a single statement, so a slot is never cancelled without its
// bookings being notified.
func (r *pgSlotRepo) Cancel(ctx context.Context, id uuid.UUID, reason string) (domain.CancellationResult, error) {
	const q = `
		WITH cancelled AS (
			UPDATE slots
			SET status              = 'cancelled',
			    cancellation_reason = @reason,
			    cancelled_at        = now()
			WHERE id = @id AND status = 'open'
			RETURNING id, cancelled_at
		), notified AS (
			INSERT INTO booking_notifications (booking_id, reason)
			SELECT b.id, @reason
			FROM bookings b
			JOIN cancelled c ON b.slot_id = c.id
			RETURNING 1
		)
		SELECT c.id, c.cancelled_at, (SELECT count(*) FROM notified)
		FROM cancelled c`

	var (
		slotID      pgtype.UUID
		cancelledAt time.Time
		notified    int64
	)
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "reason": reason}).
		Scan(&slotID, &cancelledAt, &notified)
	if errors.Is(err, pgx.ErrNoRows) {
		// Nothing was updated: either the slot is unknown or it is not open.
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return domain.CancellationResult{}, fmt.Errorf("repo.SlotRepo.Cancel: %w", getErr)
		}
		return domain.CancellationResult{}, fmt.Errorf("repo.SlotRepo.Cancel: slot already cancelled: %w", domain.ErrConflict)
	}
	if err != nil {
		return domain.CancellationResult{}, fmt.Errorf("repo.SlotRepo.Cancel: %w", err)
	}

	return domain.CancellationResult{
		SlotID:           uuid.UUID(slotID.Bytes),
		Reason:           reason,
		NotifiedBookings: int(notified),
		CancelledAt:      cancelledAt,
	}, nil
}

// scanSlot maps a row selected with slotColumns into a domain.Slot.
func scanSlot(s scanner) (domain.Slot, error) {
	var (
		slot        domain.Slot
		id          pgtype.UUID
		listingID   pgtype.UUID
		date        pgtype.Date
		status      string
		cancelledAt pgtype.Timestamptz
	)

	err := s.Scan(&id, &listingID, &date,
		&slot.Details.StartTime, &slot.Details.EndTime,
		&status, &slot.CancellationReason, &cancelledAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Slot{}, domain.ErrNotFound
		}
		return domain.Slot{}, err
	}

	slot.ID = uuid.UUID(id.Bytes)
	slot.ListingID = uuid.UUID(listingID.Bytes)
	slot.Details.Date = domain.DateOf(date.Time)
	slot.Status = domain.SlotStatus(status)
	if cancelledAt.Valid {
		ts := cancelledAt.Time
		slot.CancelledAt = &ts
	}
	return slot, nil
}
