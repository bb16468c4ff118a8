package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRange(t *testing.T, start, end string) DateRange {
	t.Helper()
	r, err := ParseDateRange(start, end)
	require.NoError(t, err)
	return r
}

func TestNewDateRange_Validation(t *testing.T) {
	now := time.Now()

	_, err := NewDateRange(time.Time{}, now)
	assert.ErrorIs(t, err, ErrMissingDate)

	_, err = NewDateRange(now, time.Time{})
	assert.ErrorIs(t, err, ErrMissingDate)

	_, err = NewDateRange(now.Add(time.Hour), now)
	assert.ErrorIs(t, err, ErrInvertedRange)

	r, err := NewDateRange(now, now)
	require.NoError(t, err)
	assert.True(t, r.Start().Equal(r.End()))
}

func TestParseDateRange(t *testing.T) {
	r := mustRange(t, "2024-01-15", "2024-01-20")
	assert.Equal(t, 5, r.Days())

	_, err := ParseDateRange("", "2024-01-20")
	assert.ErrorIs(t, err, ErrMissingDate)

	_, err = ParseDateRange("not-a-date", "2024-01-20")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ParseDateRange("2024-01-15", "2024-13-45")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestNewFutureDateRange(t *testing.T) {
	yesterday := time.Now().Add(-24 * time.Hour)
	tomorrow := time.Now().Add(24 * time.Hour)

	_, err := NewFutureDateRange(yesterday, tomorrow)
	assert.ErrorIs(t, err, ErrPastStartDate)

	// A start earlier today is fine: the no-past check is date-granular.
	_, err = NewFutureDateRange(time.Now().Add(-time.Minute), tomorrow)
	require.NoError(t, err)
}

func TestDateRange_Overlaps_TouchingEndpoints(t *testing.T) {
	a := mustRange(t, "2024-01-15", "2024-01-20")
	b := mustRange(t, "2024-01-20", "2024-01-25")

	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))
}

func TestDateRange_Overlaps_Symmetry(t *testing.T) {
	tests := []struct {
		name string
		a, b DateRange
		want bool
	}{
		{"disjoint", mustRange(t, "2024-01-01", "2024-01-05"), mustRange(t, "2024-01-10", "2024-01-15"), false},
		{"contained", mustRange(t, "2024-01-01", "2024-01-31"), mustRange(t, "2024-01-10", "2024-01-15"), true},
		{"partial", mustRange(t, "2024-01-01", "2024-01-12"), mustRange(t, "2024-01-10", "2024-01-15"), true},
		{"touching", mustRange(t, "2024-01-01", "2024-01-10"), mustRange(t, "2024-01-10", "2024-01-15"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestDateRange_OverlapsItself(t *testing.T) {
	r := mustRange(t, "2024-01-15", "2024-01-20")
	assert.True(t, r.Overlaps(r))
}

func TestDateRange_BeforeAfter_Strict(t *testing.T) {
	a := mustRange(t, "2024-01-01", "2024-01-10")
	b := mustRange(t, "2024-01-10", "2024-01-20")
	c := mustRange(t, "2024-01-11", "2024-01-20")

	// Touching is neither before nor after.
	assert.False(t, a.IsBefore(b))
	assert.False(t, b.IsAfter(a))

	assert.True(t, a.IsBefore(c))
	assert.True(t, c.IsAfter(a))
}

func TestDateRange_Contains_Inclusive(t *testing.T) {
	r := mustRange(t, "2024-01-15", "2024-01-20")

	assert.True(t, r.Contains(r.Start()))
	assert.True(t, r.Contains(r.End()))
	assert.True(t, r.Contains(r.Start().Add(48*time.Hour)))
	assert.False(t, r.Contains(r.Start().Add(-time.Second)))
	assert.False(t, r.Contains(r.End().Add(time.Second)))
}

func TestDateRange_Durations(t *testing.T) {
	r := mustRange(t, "2024-01-15T14:00:00Z", "2024-01-18T15:30:00Z")

	assert.Equal(t, 3, r.Days())
	assert.Equal(t, 73, r.Hours())
	assert.Equal(t, 73*60+30, r.Minutes())
}

func TestDateRange_Classification(t *testing.T) {
	stay := mustRange(t, "2024-01-15T15:00:00Z", "2024-01-17T11:00:00Z")
	assert.True(t, stay.IsHotelStay())
	assert.False(t, stay.IsRestaurantReservation())

	sitting := mustRange(t, "2024-01-15T20:00:00Z", "2024-01-15T22:00:00Z")
	assert.True(t, sitting.IsRestaurantReservation())
	assert.False(t, sitting.IsHotelStay())
	assert.False(t, sitting.IsEvent())

	event := mustRange(t, "2024-01-15T09:00:00Z", "2024-01-15T23:00:00Z")
	assert.True(t, event.IsEvent())
	assert.False(t, event.IsRestaurantReservation())
}
