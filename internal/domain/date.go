// Package domain contains the core data types for the parking-slot booking
// backend. It is imported by every other internal package (booking, repo,
// service, handler) and depends on nothing but uuid.
package domain

import (
	"fmt"
	"time"
)

// DateLayout is the canonical string form of a CalendarDate.
const DateLayout = "2006-01-02"

// CalendarDate is a calendar day with no time or zone component.
// It is comparable, so == compares canonical forms and it can be used as a
// map key. The zero value is "no date".
type CalendarDate struct {
	year  int
	month time.Month
	day   int
}

// NewCalendarDate builds a CalendarDate, normalizing out-of-range values the
// same way time.Date does (e.g. June 31 becomes July 1).
func NewCalendarDate(year int, month time.Month, day int) CalendarDate {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{year: y, month: m, day: d}
}

// ParseCalendarDate parses the canonical YYYY-MM-DD form.
func ParseCalendarDate(s string) (CalendarDate, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("%w: invalid date %q, want YYYY-MM-DD", ErrValidation, s)
	}
	return DateOf(t), nil
}

// MustParseCalendarDate is ParseCalendarDate for literals; it panics on bad input.
func MustParseCalendarDate(s string) CalendarDate {
	d, err := ParseCalendarDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// IsZero reports whether d is the zero value.
func (d CalendarDate) IsZero() bool {
	return d == CalendarDate{}
}

// Time returns midnight UTC on d.
func (d CalendarDate) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// String returns the canonical YYYY-MM-DD form, or "" for the zero value.
func (d CalendarDate) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(DateLayout)
}

// Before reports whether d falls on an earlier day than other.
func (d CalendarDate) Before(other CalendarDate) bool {
	if d.year != other.year {
		return d.year < other.year
	}
	if d.month != other.month {
		return d.month < other.month
	}
	return d.day < other.day
}

// MarshalText implements encoding.TextMarshaler.
func (d CalendarDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty input yields the zero value.
func (d *CalendarDate) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*d = CalendarDate{}
		return nil
	}
	parsed, err := ParseCalendarDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DateIndex is the ordered set of dates currently offered for booking.
// It is supplied fresh by the availability collaborator on every query and
// is read-only once built.
type DateIndex struct {
	dates  []CalendarDate
	member map[CalendarDate]struct{}
}

// NewDateIndex builds a DateIndex preserving the supplied order.
// Zero dates are skipped.
func NewDateIndex(dates []CalendarDate) DateIndex {
	idx := DateIndex{
		dates:  make([]CalendarDate, 0, len(dates)),
		member: make(map[CalendarDate]struct{}, len(dates)),
	}
	for _, d := range dates {
		if d.IsZero() {
			continue
		}
		idx.dates = append(idx.dates, d)
		idx.member[d] = struct{}{}
	}
	return idx
}

// Dates returns a copy of the indexed dates in their original order.
// Always non-nil.
func (x DateIndex) Dates() []CalendarDate {
	out := make([]CalendarDate, len(x.dates))
	copy(out, x.dates)
	return out
}

// Contains reports whether d is offered.
func (x DateIndex) Contains(d CalendarDate) bool {
	_, ok := x.member[d]
	return ok
}

// Len returns the number of indexed dates.
func (x DateIndex) Len() int {
	return len(x.dates)
}
