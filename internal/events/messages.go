// Package events fans booking draft changes out to live subscribers,
// typically the browser tab editing the draft over a WebSocket.
package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Type identifies the kind of event carried by a Message.
type Type string

const (
	TypeDateSelected   Type = "date.selected"
	TypeDatesChanged   Type = "dates.changed"
	TypeVehicleChanged Type = "vehicle.changed"
	TypeRosterChanged  Type = "roster.changed"
	TypeDraftExpired   Type = "draft.expired"
)

// Message is the envelope written to subscribers.
type Message struct {
	Type      Type      `json:"type"`
	DraftID   uuid.UUID `json:"draft_id"`
	Payload   any       `json:"payload,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewMessage stamps a message with the current UTC time.
func NewMessage(t Type, draftID uuid.UUID, payload any) Message {
	return Message{
		Type:      t,
		DraftID:   draftID,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// JSON encodes the message.
func (m Message) JSON() ([]byte, error) {
	return json.Marshal(m)
}
