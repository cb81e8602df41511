package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/parkslot-booking/backend/internal/domain"
)

// AvailabilityRepo reads which dates a listing currently offers.
// Results are never cached; every call reflects the current slot table.
type AvailabilityRepo interface {
	// ListDates returns the distinct dates on or after from that have at least
	// one open slot for the listing, ascending. Returns an empty slice when
	// the listing has nothing on offer.
	ListDates(ctx context.Context, listingID uuid.UUID, from domain.CalendarDate) ([]domain.CalendarDate, error)
}

// pgAvailabilityRepo is the Postgres implementation of AvailabilityRepo.
type pgAvailabilityRepo struct {
	db db
}

// NewAvailabilityRepo constructs an AvailabilityRepo backed by the provided db connection.
func NewAvailabilityRepo(db db) AvailabilityRepo {
	return &pgAvailabilityRepo{db: db}
}

func (r *pgAvailabilityRepo) ListDates(ctx context.Context, listingID uuid.UUID, from domain.CalendarDate) ([]domain.CalendarDate, error) {
	const q = `
		SELECT DISTINCT date
		FROM slots
		WHERE listing_id = @listing_id
		  AND status     = 'open'
		  AND date      >= @from
		ORDER BY date`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{
		"listing_id": listingID,
		"from":       from.Time(),
	})
	if err != nil {
		return nil, fmt.Errorf("repo.AvailabilityRepo.ListDates: %w", err)
	}
	defer rows.Close()

	dates := []domain.CalendarDate{}
	for rows.Next() {
		var d pgtype.Date
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("repo.AvailabilityRepo.ListDates: scan: %w", err)
		}
		dates = append(dates, domain.DateOf(d.Time))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.AvailabilityRepo.ListDates: rows: %w", err)
	}
	return dates, nil
}
