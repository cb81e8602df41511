package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/parkslot-booking/backend/internal/domain"
)

// VehicleRepo owns the vehicle roster of each booking draft.
// Membership (Add, Remove) lives only here; the booking roster edits fields
// and reports them back through UpdateField.
type VehicleRepo interface {
	// Add appends a vehicle to the end of the draft's roster and returns it
	// with its generated ID.
	Add(ctx context.Context, draftID uuid.UUID, vehicle domain.VehicleRecord) (domain.VehicleRecord, error)

	// Remove deletes a vehicle from the draft's roster.
	// Returns domain.ErrNotFound if the vehicle is not on that draft.
	Remove(ctx context.Context, draftID uuid.UUID, vehicleID string) error

	// ListByDraft returns the draft's roster in insertion order.
	ListByDraft(ctx context.Context, draftID uuid.UUID) ([]domain.VehicleRecord, error)

	// UpdateField persists a single field edit.
	// Returns domain.ErrNotFound if the vehicle is not on that draft.
	UpdateField(ctx context.Context, draftID uuid.UUID, change domain.VehicleChange) error

	// DeleteByDraft drops the whole roster of an expired draft.
	DeleteByDraft(ctx context.Context, draftID uuid.UUID) error
}

// pgVehicleRepo is the Postgres implementation of VehicleRepo.
type pgVehicleRepo struct {
	db db
}

// NewVehicleRepo constructs a VehicleRepo backed by the provided db connection.
func NewVehicleRepo(db db) VehicleRepo {
	return &pgVehicleRepo{db: db}
}

func (r *pgVehicleRepo) Add(ctx context.Context, draftID uuid.UUID, vehicle domain.VehicleRecord) (domain.VehicleRecord, error) {
	const q = `
		INSERT INTO draft_vehicles (draft_id, position, type, plate)
		VALUES (
			@draft_id,
			(SELECT COALESCE(MAX(position), 0) + 1 FROM draft_vehicles WHERE draft_id = @draft_id),
			@type,
			@plate
		)
		RETURNING id, type, plate`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"draft_id": draftID,
		"type":     string(vehicle.Type),
		"plate":    vehicle.Plate,
	})
	result, err := scanVehicle(row)
	if err != nil {
		return domain.VehicleRecord{}, fmt.Errorf("repo.VehicleRepo.Add: %w", err)
	}
	return result, nil
}

func (r *pgVehicleRepo) Remove(ctx context.Context, draftID uuid.UUID, vehicleID string) error {
	id, ok := parseID(vehicleID)
	if !ok {
		return fmt.Errorf("repo.VehicleRepo.Remove: %w", domain.ErrNotFound)
	}

	const q = `DELETE FROM draft_vehicles WHERE id = @id AND draft_id = @draft_id`
	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "draft_id": draftID})
	if err != nil {
		return fmt.Errorf("repo.VehicleRepo.Remove: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.VehicleRepo.Remove: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgVehicleRepo) ListByDraft(ctx context.Context, draftID uuid.UUID) ([]domain.VehicleRecord, error) {
	const q = `
		SELECT id, type, plate
		FROM draft_vehicles
		WHERE draft_id = @draft_id
		ORDER BY position`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"draft_id": draftID})
	if err != nil {
		return nil, fmt.Errorf("repo.VehicleRepo.ListByDraft: %w", err)
	}
	defer rows.Close()

	vehicles := []domain.VehicleRecord{}
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.VehicleRepo.ListByDraft: scan: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.VehicleRepo.ListByDraft: rows: %w", err)
	}
	return vehicles, nil
}

// UpdateField maps the field name onto a fixed column; the value is always
// bound, never interpolated.
func (r *pgVehicleRepo) UpdateField(ctx context.Context, draftID uuid.UUID, change domain.VehicleChange) error {
	var q string
	switch change.Field {
	case domain.VehicleFieldType:
		q = `UPDATE draft_vehicles SET type = @value, updated_at = now() WHERE id = @id AND draft_id = @draft_id`
	case domain.VehicleFieldPlate:
		q = `UPDATE draft_vehicles SET plate = @value, updated_at = now() WHERE id = @id AND draft_id = @draft_id`
	default:
		return fmt.Errorf("repo.VehicleRepo.UpdateField: %w: unknown field %q", domain.ErrValidation, change.Field)
	}

	id, ok := parseID(change.VehicleID)
	if !ok {
		return fmt.Errorf("repo.VehicleRepo.UpdateField: %w", domain.ErrNotFound)
	}

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "draft_id": draftID, "value": change.Value})
	if err != nil {
		return fmt.Errorf("repo.VehicleRepo.UpdateField: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.VehicleRepo.UpdateField: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgVehicleRepo) DeleteByDraft(ctx context.Context, draftID uuid.UUID) error {
	const q = `DELETE FROM draft_vehicles WHERE draft_id = @draft_id`
	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"draft_id": draftID}); err != nil {
		return fmt.Errorf("repo.VehicleRepo.DeleteByDraft: %w", err)
	}
	return nil
}

func scanVehicle(s scanner) (domain.VehicleRecord, error) {
	var (
		id    pgtype.UUID
		vtype string
		v     domain.VehicleRecord
	)
	if err := s.Scan(&id, &vtype, &v.Plate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.VehicleRecord{}, domain.ErrNotFound
		}
		return domain.VehicleRecord{}, err
	}
	v.ID = uuid.UUID(id.Bytes).String()
	v.Type = domain.VehicleType(vtype)
	return v, nil
}
