package domain

import (
	"fmt"
	"time"
)

// Layouts accepted for raw date input: full timestamps and plain dates.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// restaurant sittings are expected to fit within a single day and this many
// minutes; anything longer on the same day reads as an event.
const maxSittingMinutes = 6 * 60

// DateRange is an immutable time interval with inclusive bounds.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	if start.IsZero() || end.IsZero() {
		return DateRange{}, ErrMissingDate
	}
	if start.After(end) {
		return DateRange{}, fmt.Errorf("%w: %s > %s", ErrInvertedRange, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return DateRange{start: start, end: end}, nil
}

// NewFutureDateRange additionally rejects ranges whose start falls on a day
// before today. The comparison is date-granular: a start earlier today is
// still accepted.
func NewFutureDateRange(start, end time.Time) (DateRange, error) {
	r, err := NewDateRange(start, end)
	if err != nil {
		return DateRange{}, err
	}
	today := truncateToDate(time.Now())
	if truncateToDate(start).Before(today) {
		return DateRange{}, fmt.Errorf("%w: %s", ErrPastStartDate, start.Format("2006-01-02"))
	}
	return r, nil
}

// ParseDateRange builds a DateRange from raw string input (RFC3339 or
// YYYY-MM-DD).
func ParseDateRange(start, end string) (DateRange, error) {
	if start == "" || end == "" {
		return DateRange{}, ErrMissingDate
	}
	s, err := parseDate(start)
	if err != nil {
		return DateRange{}, err
	}
	e, err := parseDate(end)
	if err != nil {
		return DateRange{}, err
	}
	return NewDateRange(s, e)
}

func parseDate(raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
}

func (r DateRange) Start() time.Time { return r.start }

func (r DateRange) End() time.Time { return r.end }

func (r DateRange) Days() int { return int(r.end.Sub(r.start) / (24 * time.Hour)) }

func (r DateRange) Hours() int { return int(r.end.Sub(r.start) / time.Hour) }

func (r DateRange) Minutes() int { return int(r.end.Sub(r.start) / time.Minute) }

// Contains reports whether t falls inside the range, bounds included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.start) && !t.After(r.end)
}

// Overlaps reports whether the two ranges share at least one instant.
// Touching endpoints count as overlap: a reservation ending exactly when
// another starts still conflicts. Availability checks depend on this exact
// boundary behavior.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.start.After(other.end) && !r.end.Before(other.start)
}

// IsBefore is strict: touching ranges are neither before nor after.
func (r DateRange) IsBefore(other DateRange) bool {
	return r.end.Before(other.start)
}

func (r DateRange) IsAfter(other DateRange) bool {
	return r.start.After(other.end)
}

// Classification helpers below are hints for callers (notification wording,
// defaults), not business rules.

// IsHotelStay reports whether the range spans at least one night.
func (r DateRange) IsHotelStay() bool {
	return !sameDay(r.start, r.end)
}

// IsRestaurantReservation reports whether the range looks like a single
// sitting: same calendar day, at most six hours.
func (r DateRange) IsRestaurantReservation() bool {
	return sameDay(r.start, r.end) && r.Minutes() <= maxSittingMinutes
}

// IsEvent reports whether the range is a long same-day window.
func (r DateRange) IsEvent() bool {
	return sameDay(r.start, r.end) && r.Minutes() > maxSittingMinutes
}

func sameDay(a, b time.Time) bool {
	return truncateToDate(a).Equal(truncateToDate(b))
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
