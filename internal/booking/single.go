// Package booking holds the selection-and-confirmation state machines that
// drive a booking configuration: single and multi date selection, vehicle
// roster editing, and the reason-gated slot cancellation.
//
// Every holder is owned by exactly one view and is not safe for concurrent
// use. Transitions are synchronous and callbacks fire before the mutating
// method returns. Invalid input is never an error here: operations that
// cannot apply report false and leave state untouched.
package booking

import "github.com/pkordes/parkslot-booking/backend/internal/domain"

// SingleDateSelection holds at most one selected date.
type SingleDateSelection struct {
	selected domain.CalendarDate
	has      bool
	onSelect func(domain.CalendarDate)
}

// NewSingleDateSelection returns an empty selection. onSelect may be nil.
func NewSingleDateSelection(onSelect func(domain.CalendarDate)) *SingleDateSelection {
	return &SingleDateSelection{onSelect: onSelect}
}

// Select replaces the current selection with d, including when d is already
// selected. Membership in the DateIndex is the caller's concern.
func (s *SingleDateSelection) Select(d domain.CalendarDate) {
	s.selected = d
	s.has = true
	if s.onSelect != nil {
		s.onSelect(d)
	}
}

// Current returns the selected date, or false when nothing is selected.
func (s *SingleDateSelection) Current() (domain.CalendarDate, bool) {
	return s.selected, s.has
}
