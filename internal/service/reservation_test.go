package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Franklin-Osede/bookly/internal/domain"
	"github.com/Franklin-Osede/bookly/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testHoldTTL = 30 * time.Minute

func newReservationService(t *testing.T) (*mocks.MockReservationRepo, *mocks.MockBusinessRepo, *mocks.MockReservationNotifier, *ReservationService) {
	t.Helper()
	reservationRepo := mocks.NewMockReservationRepo(t)
	businessRepo := mocks.NewMockBusinessRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)

	svc := NewReservationService(reservationRepo, businessRepo, notifier, testHoldTTL, newTestLogger(t))
	return reservationRepo, businessRepo, notifier, svc
}

func hotelReservationInput(t *testing.T) domain.CreateReservationInput {
	t.Helper()
	return domain.CreateReservationInput{
		BusinessID:   "b1",
		CustomerID:   "c1",
		ResourceType: domain.ResourceTypeHotel,
		Range:        testRange(t, "2030-06-01T15:00:00Z", "2030-06-03T11:00:00Z"),
		Guests:       2,
		Total:        testMoney(t, 350),
	}
}

func TestReservationService_Create_Success(t *testing.T) {
	reservationRepo, businessRepo, notifier, svc := newReservationService(t)

	input := hotelReservationInput(t)
	biz := hotel("b1")

	businessRepo.EXPECT().GetByID(mock.Anything, "b1").Return(biz, nil)
	reservationRepo.EXPECT().ListOverlapping(mock.Anything, "b1", input.Range.Start(), input.Range.End()).Return(nil, nil)
	reservationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyReservationCreated(mock.Anything, mock.Anything, biz).Return()

	reservation, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusPending, reservation.Status)
	assert.Equal(t, "b1", reservation.BusinessID)
	assert.NotEmpty(t, reservation.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReservationService_Create_ConflictRejected(t *testing.T) {
	reservationRepo, businessRepo, _, svc := newReservationService(t)

	input := hotelReservationInput(t)
	overlapping := []*domain.Reservation{{ID: "other", BusinessID: "b1", Status: domain.ReservationStatusConfirmed}}

	businessRepo.EXPECT().GetByID(mock.Anything, "b1").Return(hotel("b1"), nil)
	reservationRepo.EXPECT().ListOverlapping(mock.Anything, "b1", input.Range.Start(), input.Range.End()).Return(overlapping, nil)

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoAvailableResources)
}

func TestReservationService_Create_WrongBusinessType(t *testing.T) {
	_, businessRepo, _, svc := newReservationService(t)

	input := hotelReservationInput(t)
	businessRepo.EXPECT().GetByID(mock.Anything, "b1").Return(restaurant("b1"), nil)

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrWrongBusinessType)
}

func TestReservationService_Create_BusinessNotFound(t *testing.T) {
	_, businessRepo, _, svc := newReservationService(t)

	businessRepo.EXPECT().GetByID(mock.Anything, "b1").Return(nil, domain.ErrBusinessNotFound)

	_, err := svc.Create(context.Background(), hotelReservationInput(t))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBusinessNotFound)
}

func TestReservationService_Create_InvalidGuests(t *testing.T) {
	reservationRepo, businessRepo, _, svc := newReservationService(t)

	input := hotelReservationInput(t)
	input.Guests = 0

	businessRepo.EXPECT().GetByID(mock.Anything, "b1").Return(hotel("b1"), nil)
	reservationRepo.EXPECT().ListOverlapping(mock.Anything, "b1", input.Range.Start(), input.Range.End()).Return(nil, nil)

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidGuestCount)
}

func TestReservationService_Confirm_Success(t *testing.T) {
	reservationRepo, businessRepo, notifier, svc := newReservationService(t)

	pending := &domain.Reservation{ID: "res1", BusinessID: "b1", Status: domain.ReservationStatusPending}
	biz := hotel("b1")

	reservationRepo.EXPECT().GetByID(mock.Anything, "res1").Return(pending, nil)
	reservationRepo.EXPECT().UpdateStatus(mock.Anything, "res1", domain.ReservationStatusConfirmed, mock.Anything).Return(nil)
	businessRepo.EXPECT().GetByID(mock.Anything, "b1").Return(biz, nil)
	notifier.EXPECT().NotifyReservationConfirmed(mock.Anything, pending, biz).Return()

	reservation, err := svc.Confirm(context.Background(), "res1")

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusConfirmed, reservation.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Confirm_IllegalFromConfirmed(t *testing.T) {
	reservationRepo, _, _, svc := newReservationService(t)

	confirmed := &domain.Reservation{ID: "res1", BusinessID: "b1", Status: domain.ReservationStatusConfirmed}
	reservationRepo.EXPECT().GetByID(mock.Anything, "res1").Return(confirmed, nil)

	_, err := svc.Confirm(context.Background(), "res1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)
}

func TestReservationService_Confirm_NotFound(t *testing.T) {
	reservationRepo, _, _, svc := newReservationService(t)

	reservationRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrReservationNotFound)

	_, err := svc.Confirm(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestReservationService_Complete_Success(t *testing.T) {
	reservationRepo, _, _, svc := newReservationService(t)

	confirmed := &domain.Reservation{ID: "res1", BusinessID: "b1", Status: domain.ReservationStatusConfirmed}

	reservationRepo.EXPECT().GetByID(mock.Anything, "res1").Return(confirmed, nil)
	reservationRepo.EXPECT().UpdateStatus(mock.Anything, "res1", domain.ReservationStatusCompleted, mock.Anything).Return(nil)

	reservation, err := svc.Complete(context.Background(), "res1")

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusCompleted, reservation.Status)
}

func TestReservationService_Cancel_CompletedRejected(t *testing.T) {
	reservationRepo, _, _, svc := newReservationService(t)

	completed := &domain.Reservation{ID: "res1", BusinessID: "b1", Status: domain.ReservationStatusCompleted}
	reservationRepo.EXPECT().GetByID(mock.Anything, "res1").Return(completed, nil)

	_, err := svc.Cancel(context.Background(), "res1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)
}

func TestReservationService_Cancel_NotifierGetsBusinessFailure(t *testing.T) {
	reservationRepo, businessRepo, _, svc := newReservationService(t)

	pending := &domain.Reservation{ID: "res1", BusinessID: "b1", Status: domain.ReservationStatusPending}

	reservationRepo.EXPECT().GetByID(mock.Anything, "res1").Return(pending, nil)
	reservationRepo.EXPECT().UpdateStatus(mock.Anything, "res1", domain.ReservationStatusCancelled, mock.Anything).Return(nil)
	businessRepo.EXPECT().GetByID(mock.Anything, "b1").Return(nil, domain.ErrBusinessNotFound)

	// The transition still succeeds; only the notification is dropped.
	reservation, err := svc.Cancel(context.Background(), "res1")

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusCancelled, reservation.Status)
}

func TestReservationService_Update_Notes(t *testing.T) {
	reservationRepo, _, _, svc := newReservationService(t)

	notes := "window seat, please"
	updated := &domain.Reservation{ID: "res1", Notes: notes}
	reservationRepo.EXPECT().Update(mock.Anything, "res1", mock.Anything).Return(updated, nil)

	reservation, err := svc.Update(context.Background(), "res1", domain.ReservationUpdate{Notes: &notes})

	require.NoError(t, err)
	assert.Equal(t, notes, reservation.Notes)
}

func TestReservationService_Update_ZeroTotalRejected(t *testing.T) {
	_, _, _, svc := newReservationService(t)

	zero, err := domain.NewMoney(0, domain.CurrencyUSD)
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), "res1", domain.ReservationUpdate{Total: &zero})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestReservationService_ReleaseExpired(t *testing.T) {
	reservationRepo, businessRepo, notifier, svc := newReservationService(t)

	cancelled := []*domain.Reservation{
		{ID: "res1", BusinessID: "b1", Status: domain.ReservationStatusCancelled},
		{ID: "res2", BusinessID: "b2", Status: domain.ReservationStatusCancelled},
	}
	biz1 := hotel("b1")
	biz2 := restaurant("b2")

	reservationRepo.EXPECT().CancelStalePending(mock.Anything, testHoldTTL).Return(cancelled, nil)
	businessRepo.EXPECT().GetByID(mock.Anything, "b1").Return(biz1, nil)
	businessRepo.EXPECT().GetByID(mock.Anything, "b2").Return(biz2, nil)
	notifier.EXPECT().NotifyReservationCancelled(mock.Anything, cancelled[0], biz1).Return()
	notifier.EXPECT().NotifyReservationCancelled(mock.Anything, cancelled[1], biz2).Return()

	result, err := svc.ReleaseExpired(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)

	time.Sleep(100 * time.Millisecond) // goroutine notify
}

func TestReservationService_ReleaseExpired_RepoError(t *testing.T) {
	reservationRepo, _, _, svc := newReservationService(t)

	reservationRepo.EXPECT().CancelStalePending(mock.Anything, testHoldTTL).Return(nil, errors.New("db error"))

	_, err := svc.ReleaseExpired(context.Background())

	require.Error(t, err)
}
