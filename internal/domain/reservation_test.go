package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validReservationInput(t *testing.T) CreateReservationInput {
	t.Helper()
	total, err := NewMoney(350, CurrencyUSD)
	require.NoError(t, err)

	return CreateReservationInput{
		BusinessID:   "b1",
		CustomerID:   "c1",
		ResourceType: ResourceTypeHotel,
		Range:        mustRange(t, "2030-06-01T15:00:00Z", "2030-06-03T11:00:00Z"),
		Guests:       2,
		Total:        total,
	}
}

func TestNewReservation_Success(t *testing.T) {
	r, err := NewReservation(validReservationInput(t))

	require.NoError(t, err)
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, ReservationStatusPending, r.Status)
	assert.True(t, r.IsActive())
	assert.False(t, r.CreatedAt.IsZero())
}

func TestNewReservation_Validation(t *testing.T) {
	t.Run("zero-length range", func(t *testing.T) {
		input := validReservationInput(t)
		input.Range = mustRange(t, "2030-06-01T15:00:00Z", "2030-06-01T15:00:00Z")

		_, err := NewReservation(input)
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("zero guests", func(t *testing.T) {
		input := validReservationInput(t)
		input.Guests = 0

		_, err := NewReservation(input)
		assert.ErrorIs(t, err, ErrInvalidGuestCount)
	})

	t.Run("one guest is enough", func(t *testing.T) {
		input := validReservationInput(t)
		input.Guests = 1

		_, err := NewReservation(input)
		assert.NoError(t, err)
	})

	t.Run("zero total", func(t *testing.T) {
		input := validReservationInput(t)
		total, err := NewMoney(0, CurrencyUSD)
		require.NoError(t, err)
		input.Total = total

		_, err = NewReservation(input)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("unknown resource type", func(t *testing.T) {
		input := validReservationInput(t)
		input.ResourceType = "SPA"

		_, err := NewReservation(input)
		assert.ErrorIs(t, err, ErrInvalidType)
	})
}

func TestReservation_ConfirmThenComplete(t *testing.T) {
	r, err := NewReservation(validReservationInput(t))
	require.NoError(t, err)

	require.NoError(t, r.Confirm())
	assert.Equal(t, ReservationStatusConfirmed, r.Status)
	assert.True(t, r.IsActive())

	require.NoError(t, r.Complete())
	assert.Equal(t, ReservationStatusCompleted, r.Status)
	assert.False(t, r.IsActive())
}

func TestReservation_CompleteBeforeConfirm(t *testing.T) {
	r, err := NewReservation(validReservationInput(t))
	require.NoError(t, err)

	err = r.Complete()
	assert.ErrorIs(t, err, ErrIllegalTransition)
	assert.Contains(t, err.Error(), "only confirmed reservations can be completed")
	assert.Equal(t, ReservationStatusPending, r.Status)
}

func TestReservation_ConfirmTwice(t *testing.T) {
	r, err := NewReservation(validReservationInput(t))
	require.NoError(t, err)

	require.NoError(t, r.Confirm())

	err = r.Confirm()
	assert.ErrorIs(t, err, ErrIllegalTransition)
	assert.Contains(t, err.Error(), "only pending reservations can be confirmed")
}

func TestReservation_CancelFromPendingAndConfirmed(t *testing.T) {
	r, err := NewReservation(validReservationInput(t))
	require.NoError(t, err)
	require.NoError(t, r.Cancel())
	assert.Equal(t, ReservationStatusCancelled, r.Status)
	assert.False(t, r.IsActive())

	r, err = NewReservation(validReservationInput(t))
	require.NoError(t, err)
	require.NoError(t, r.Confirm())
	require.NoError(t, r.Cancel())
	assert.Equal(t, ReservationStatusCancelled, r.Status)
}

func TestReservation_CancelAfterComplete(t *testing.T) {
	r, err := NewReservation(validReservationInput(t))
	require.NoError(t, err)
	require.NoError(t, r.Confirm())
	require.NoError(t, r.Complete())

	err = r.Cancel()
	assert.ErrorIs(t, err, ErrIllegalTransition)
	assert.Contains(t, err.Error(), "completed reservations cannot be cancelled")
}

func TestReservation_TransitionBumpsUpdatedAt(t *testing.T) {
	r, err := NewReservation(validReservationInput(t))
	require.NoError(t, err)

	before := r.UpdatedAt
	require.NoError(t, r.Confirm())
	assert.False(t, r.UpdatedAt.Before(before))
}

func TestReservation_UpdateTotalAmount(t *testing.T) {
	r, err := NewReservation(validReservationInput(t))
	require.NoError(t, err)

	newTotal, err := NewMoney(500, CurrencyUSD)
	require.NoError(t, err)
	require.NoError(t, r.UpdateTotalAmount(newTotal))

	eq, err := r.Total.Equals(newTotal)
	require.NoError(t, err)
	assert.True(t, eq)

	zero, err := NewMoney(0, CurrencyUSD)
	require.NoError(t, err)
	assert.ErrorIs(t, r.UpdateTotalAmount(zero), ErrInvalidAmount)
}

func TestReservation_UpdateNotes(t *testing.T) {
	r, err := NewReservation(validReservationInput(t))
	require.NoError(t, err)

	r.UpdateNotes("late check-in")
	assert.Equal(t, "late check-in", r.Notes)
}
