package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DraftMode decides which date selection a booking draft uses.
type DraftMode string

const (
	DraftModeSingle DraftMode = "single"
	DraftModeMulti  DraftMode = "multi"
)

// ParseDraftMode accepts "single" or "multi".
func ParseDraftMode(s string) (DraftMode, error) {
	switch m := DraftMode(s); m {
	case DraftModeSingle, DraftModeMulti:
		return m, nil
	}
	return "", fmt.Errorf("%w: mode must be %q or %q", ErrValidation, DraftModeSingle, DraftModeMulti)
}

// DraftSnapshot is a read-only view of a booking draft in progress.
type DraftSnapshot struct {
	ID        uuid.UUID
	ListingID uuid.UUID
	Mode      DraftMode

	// SelectedDate is set only in single mode once a date is picked.
	SelectedDate *CalendarDate
	// SelectedDates is the multi mode selection; always non-nil.
	SelectedDates []CalendarDate

	Vehicles  []VehicleRecord
	UpdatedAt time.Time
}

// CancellationSnapshot is a read-only view of an open cancellation
// confirmation.
type CancellationSnapshot struct {
	ID         uuid.UUID
	SlotID     uuid.UUID
	State      string
	Slot       SlotDetails
	Reason     string
	CanConfirm bool
}
