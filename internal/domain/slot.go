package domain

import (
	"time"

	"github.com/google/uuid"
)

// SlotStatus is the lifecycle state of a bookable slot.
type SlotStatus string

const (
	SlotStatusOpen      SlotStatus = "open"
	SlotStatusCancelled SlotStatus = "cancelled"
)

// SlotDetails is the display context shown while confirming a cancellation.
// Times are "HH:MM" in the listing's local time.
type SlotDetails struct {
	Date      CalendarDate `json:"date"`
	StartTime string       `json:"start_time"`
	EndTime   string       `json:"end_time"`
}

// Slot is a bookable date/time interval offered by a host.
type Slot struct {
	ID                 uuid.UUID
	ListingID          uuid.UUID
	Details            SlotDetails
	Status             SlotStatus
	CancellationReason string     // empty unless cancelled
	CancelledAt        *time.Time // nil unless cancelled
}

// CancellationResult is what the slot collaborator reports after performing
// a confirmed cancellation.
type CancellationResult struct {
	SlotID           uuid.UUID
	Reason           string
	NotifiedBookings int
	CancelledAt      time.Time
}
