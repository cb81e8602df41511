package booking

import (
	"slices"

	"github.com/pkordes/parkslot-booking/backend/internal/domain"
)

// MultiDateSelection is a set of selected dates whose only transition is
// Toggle. A date is a member iff it has been toggled an odd number of times
// since the set was last empty.
type MultiDateSelection struct {
	members  map[domain.CalendarDate]struct{}
	onChange func([]domain.CalendarDate)
}

// NewMultiDateSelection returns an empty selection. onChange may be nil; when
// set it receives the full member set after every toggle.
func NewMultiDateSelection(onChange func([]domain.CalendarDate)) *MultiDateSelection {
	return &MultiDateSelection{
		members:  make(map[domain.CalendarDate]struct{}),
		onChange: onChange,
	}
}

// Toggle removes d if it is selected and adds it otherwise.
func (m *MultiDateSelection) Toggle(d domain.CalendarDate) {
	if _, ok := m.members[d]; ok {
		delete(m.members, d)
	} else {
		m.members[d] = struct{}{}
	}
	if m.onChange != nil {
		m.onChange(m.Members())
	}
}

// Members returns the selected dates in ascending order. Order has no
// meaning beyond stable display. Always non-nil.
func (m *MultiDateSelection) Members() []domain.CalendarDate {
	out := make([]domain.CalendarDate, 0, len(m.members))
	for d := range m.members {
		out = append(out, d)
	}
	slices.SortFunc(out, compareDates)
	return out
}

// Contains reports whether d is selected.
func (m *MultiDateSelection) Contains(d domain.CalendarDate) bool {
	_, ok := m.members[d]
	return ok
}

// Count returns the number of selected dates.
func (m *MultiDateSelection) Count() int {
	return len(m.members)
}

func compareDates(a, b domain.CalendarDate) int {
	switch {
	case a.Before(b):
		return -1
	case b.Before(a):
		return 1
	}
	return 0
}
