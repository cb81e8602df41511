package booking

import (
	"strings"

	"github.com/pkordes/parkslot-booking/backend/internal/domain"
)

// ConfirmationState is the state of a CancellationConfirmation.
type ConfirmationState string

const (
	StateClosed ConfirmationState = "closed"
	StateOpen   ConfirmationState = "open"
	// StateConfirmed is only observable from inside the onConfirm callback.
	StateConfirmed ConfirmationState = "confirmed"
)

// CancellationConfirmation gates a slot cancellation behind a non-empty
// justification. A cancellation notifies existing bookings and cannot be
// taken back, so onConfirm never fires with an empty trimmed reason.
//
//	Closed --Open--> Open --Confirm--> Confirmed --> Closed
//	                  |
//	                  +----Dismiss----> Closed
type CancellationConfirmation struct {
	state     ConfirmationState
	details   domain.SlotDetails
	reason    string
	onConfirm func(reason string)
}

// NewCancellationConfirmation returns a confirmation in the Closed state.
// onConfirm receives the trimmed reason exactly once per successful Confirm.
func NewCancellationConfirmation(onConfirm func(reason string)) *CancellationConfirmation {
	return &CancellationConfirmation{state: StateClosed, onConfirm: onConfirm}
}

// Open enters the Open state for the given slot with an empty reason.
// Calling Open while already open starts over with the new details.
// It reports false only while a confirm is being emitted.
func (c *CancellationConfirmation) Open(details domain.SlotDetails) bool {
	if c.state == StateConfirmed {
		return false
	}
	c.state = StateOpen
	c.details = details
	c.reason = ""
	return true
}

// UpdateReason replaces the buffered reason verbatim. Only valid while Open.
func (c *CancellationConfirmation) UpdateReason(text string) bool {
	if c.state != StateOpen {
		return false
	}
	c.reason = text
	return true
}

// CanConfirm reports whether Confirm would succeed right now.
func (c *CancellationConfirmation) CanConfirm() bool {
	return c.state == StateOpen && strings.TrimSpace(c.reason) != ""
}

// Confirm emits the trimmed reason and closes the confirmation.
// When the confirmation is not Open or the trimmed reason is empty it
// returns false, emits nothing, and leaves the state as it was.
func (c *CancellationConfirmation) Confirm() (string, bool) {
	if !c.CanConfirm() {
		return "", false
	}
	reason := strings.TrimSpace(c.reason)

	c.state = StateConfirmed
	if c.onConfirm != nil {
		c.onConfirm(reason)
	}
	c.reset()
	return reason, true
}

// Dismiss closes an Open confirmation without emitting anything.
func (c *CancellationConfirmation) Dismiss() bool {
	if c.state != StateOpen {
		return false
	}
	c.reset()
	return true
}

// State returns the current state.
func (c *CancellationConfirmation) State() ConfirmationState {
	return c.state
}

// Reason returns the buffered reason exactly as last entered.
func (c *CancellationConfirmation) Reason() string {
	return c.reason
}

// Details returns the slot captured by the last Open. Zero when Closed.
func (c *CancellationConfirmation) Details() domain.SlotDetails {
	return c.details
}

func (c *CancellationConfirmation) reset() {
	c.state = StateClosed
	c.details = domain.SlotDetails{}
	c.reason = ""
}
