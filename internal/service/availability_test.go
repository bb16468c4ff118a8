package service

import (
	"context"
	"testing"

	"github.com/Franklin-Osede/bookly/internal/domain"
	"github.com/Franklin-Osede/bookly/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newAvailabilityService(t *testing.T) (*mocks.MockBusinessRepo, *mocks.MockRoomRepo, *mocks.MockTableRepo, *mocks.MockReservationRepo, *AvailabilityService) {
	t.Helper()
	businessRepo := mocks.NewMockBusinessRepo(t)
	roomRepo := mocks.NewMockRoomRepo(t)
	tableRepo := mocks.NewMockTableRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)

	svc := NewAvailabilityService(businessRepo, roomRepo, tableRepo, reservationRepo, newTestLogger(t))
	return businessRepo, roomRepo, tableRepo, reservationRepo, svc
}

func testRange(t *testing.T, start, end string) domain.DateRange {
	t.Helper()
	r, err := domain.ParseDateRange(start, end)
	require.NoError(t, err)
	return r
}

func testMoney(t *testing.T, amount float64) domain.Money {
	t.Helper()
	m, err := domain.NewMoney(amount, domain.CurrencyUSD)
	require.NoError(t, err)
	return m
}

func hotel(id string) *domain.Business {
	return &domain.Business{ID: id, Name: "Grand Hotel", Type: domain.BusinessTypeHotel}
}

func restaurant(id string) *domain.Business {
	return &domain.Business{ID: id, Name: "La Terraza", Type: domain.BusinessTypeRestaurant}
}

func TestAvailability_AvailableRooms_NoConflicts(t *testing.T) {
	businessRepo, roomRepo, _, reservationRepo, svc := newAvailabilityService(t)

	rng := testRange(t, "2030-06-01", "2030-06-05")
	rooms := []*domain.Room{
		{ID: "r1", BusinessID: "b1", Number: "101", Type: domain.RoomTypeDouble, Capacity: 2, IsActive: true},
		{ID: "r2", BusinessID: "b1", Number: "102", Type: domain.RoomTypeSuite, Capacity: 4, IsActive: true},
	}

	businessRepo.EXPECT().GetByID(mock.Anything, "b1").Return(hotel("b1"), nil)
	roomRepo.EXPECT().ListByBusiness(mock.Anything, "b1").Return(rooms, nil)
	reservationRepo.EXPECT().ListOverlapping(mock.Anything, "b1", rng.Start(), rng.End()).Return(nil, nil)

	free, err := svc.AvailableRooms(context.Background(), "b1", rng, domain.RoomFilter{})

	require.NoError(t, err)
	assert.Len(t, free, 2)
}

// A single overlapping reservation blocks the entire pool: the engine does
// not match reservations to specific units.
func TestAvailability_AvailableRooms_OneOverlapBlocksAll(t *testing.T) {
	businessRepo, roomRepo, _, reservationRepo, svc := newAvailabilityService(t)

	rng := testRange(t, "2030-06-01", "2030-06-05")
	rooms := []*domain.Room{
		{ID: "r1", BusinessID: "b1", Number: "101", IsActive: true},
	}
	overlapping := []*domain.Reservation{
		{ID: "res1", BusinessID: "b1", Status: domain.ReservationStatusConfirmed},
	}

	businessRepo.EXPECT().GetByID(mock.Anything, "b1").Return(hotel("b1"), nil)
	roomRepo.EXPECT().ListByBusiness(mock.Anything, "b1").Return(rooms, nil)
	reservationRepo.EXPECT().ListOverlapping(mock.Anything, "b1", rng.Start(), rng.End()).Return(overlapping, nil)

	free, err := svc.AvailableRooms(context.Background(), "b1", rng, domain.RoomFilter{})

	require.NoError(t, err)
	assert.Empty(t, free)
}

func TestAvailability_AvailableRooms_AppliesFilter(t *testing.T) {
	businessRepo, roomRepo, _, reservationRepo, svc := newAvailabilityService(t)

	rng := testRange(t, "2030-06-01", "2030-06-05")
	cheap := testMoney(t, 80)
	pricey := testMoney(t, 300)
	rooms := []*domain.Room{
		{ID: "r1", Number: "101", Type: domain.RoomTypeSingle, Capacity: 1, PricePerNight: cheap, IsActive: true},
		{ID: "r2", Number: "201", Type: domain.RoomTypeSuite, Capacity: 4, PricePerNight: pricey, IsActive: true},
	}

	businessRepo.EXPECT().GetByID(mock.Anything, "b1").Return(hotel("b1"), nil)
	roomRepo.EXPECT().ListByBusiness(mock.Anything, "b1").Return(rooms, nil)
	reservationRepo.EXPECT().ListOverlapping(mock.Anything, "b1", rng.Start(), rng.End()).Return(nil, nil)

	minCap := 2
	maxPrice := testMoney(t, 350)
	free, err := svc.AvailableRooms(context.Background(), "b1", rng, domain.RoomFilter{
		MinCapacity: &minCap,
		MaxPrice:    &maxPrice,
	})

	require.NoError(t, err)
	require.Len(t, free, 1)
	assert.Equal(t, "r2", free[0].ID)
}

func TestAvailability_AvailableRooms_WrongBusinessType(t *testing.T) {
	businessRepo, _, _, _, svc := newAvailabilityService(t)

	businessRepo.EXPECT().GetByID(mock.Anything, "b1").Return(restaurant("b1"), nil)

	_, err := svc.AvailableRooms(context.Background(), "b1", testRange(t, "2030-06-01", "2030-06-05"), domain.RoomFilter{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrWrongBusinessType)
}

func TestAvailability_AvailableRooms_BusinessNotFound(t *testing.T) {
	businessRepo, _, _, _, svc := newAvailabilityService(t)

	businessRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBusinessNotFound)

	_, err := svc.AvailableRooms(context.Background(), "missing", testRange(t, "2030-06-01", "2030-06-05"), domain.RoomFilter{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBusinessNotFound)
}

func TestAvailability_AvailableTables_LocationFilter(t *testing.T) {
	businessRepo, _, tableRepo, reservationRepo, svc := newAvailabilityService(t)

	rng := testRange(t, "2030-06-01T20:00:00Z", "2030-06-01T22:00:00Z")
	tables := []*domain.Table{
		{ID: "t1", Number: "1", Capacity: 2, Location: domain.TableLocationIndoor, IsActive: true},
		{ID: "t2", Number: "2", Capacity: 4, Location: domain.TableLocationTerrace, IsActive: true},
	}

	businessRepo.EXPECT().GetByID(mock.Anything, "b2").Return(restaurant("b2"), nil)
	tableRepo.EXPECT().ListByBusiness(mock.Anything, "b2").Return(tables, nil)
	reservationRepo.EXPECT().ListOverlapping(mock.Anything, "b2", rng.Start(), rng.End()).Return(nil, nil)

	terrace := domain.TableLocationTerrace
	free, err := svc.AvailableTables(context.Background(), "b2", rng, domain.TableFilter{Location: &terrace})

	require.NoError(t, err)
	require.Len(t, free, 1)
	assert.Equal(t, "t2", free[0].ID)
}

func TestAvailability_AvailableResources_DispatchesOnBusinessType(t *testing.T) {
	businessRepo, _, tableRepo, reservationRepo, svc := newAvailabilityService(t)

	rng := testRange(t, "2030-06-01T20:00:00Z", "2030-06-01T22:00:00Z")
	tables := []*domain.Table{
		{ID: "t1", Number: "1", Capacity: 2, Location: domain.TableLocationIndoor, IsActive: true},
	}

	businessRepo.EXPECT().GetByID(mock.Anything, "b2").Return(restaurant("b2"), nil)
	tableRepo.EXPECT().ListByBusiness(mock.Anything, "b2").Return(tables, nil)
	reservationRepo.EXPECT().ListOverlapping(mock.Anything, "b2", rng.Start(), rng.End()).Return(nil, nil)

	res, err := svc.AvailableResources(context.Background(), "b2", rng, domain.ResourceFilter{})

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "t1", res[0].ResourceID())
	assert.Equal(t, domain.ResourceTypeRestaurant, res[0].ResourceKind())
}

func TestAvailability_CheckRoom_Free(t *testing.T) {
	_, roomRepo, _, reservationRepo, svc := newAvailabilityService(t)

	rng := testRange(t, "2030-06-01", "2030-06-05")
	room := &domain.Room{ID: "r1", BusinessID: "b1", IsActive: true}

	roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(room, nil)
	reservationRepo.EXPECT().ListOverlapping(mock.Anything, "b1", rng.Start(), rng.End()).Return(nil, nil)

	available, err := svc.CheckRoom(context.Background(), "r1", rng)

	require.NoError(t, err)
	assert.True(t, available)
}

func TestAvailability_CheckRoom_InactiveNeverAvailable(t *testing.T) {
	_, roomRepo, _, _, svc := newAvailabilityService(t)

	room := &domain.Room{ID: "r1", BusinessID: "b1", IsActive: false}
	roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(room, nil)

	available, err := svc.CheckRoom(context.Background(), "r1", testRange(t, "2030-06-01", "2030-06-05"))

	require.NoError(t, err)
	assert.False(t, available)
}

func TestAvailability_CheckRoom_NotFound(t *testing.T) {
	_, roomRepo, _, _, svc := newAvailabilityService(t)

	roomRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrRoomNotFound)

	_, err := svc.CheckRoom(context.Background(), "missing", testRange(t, "2030-06-01", "2030-06-05"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestAvailability_CheckTable_Occupied(t *testing.T) {
	_, _, tableRepo, reservationRepo, svc := newAvailabilityService(t)

	rng := testRange(t, "2030-06-01T20:00:00Z", "2030-06-01T22:00:00Z")
	table := &domain.Table{ID: "t1", BusinessID: "b2", IsActive: true}
	overlapping := []*domain.Reservation{{ID: "res1", BusinessID: "b2"}}

	tableRepo.EXPECT().GetByID(mock.Anything, "t1").Return(table, nil)
	reservationRepo.EXPECT().ListOverlapping(mock.Anything, "b2", rng.Start(), rng.End()).Return(overlapping, nil)

	available, err := svc.CheckTable(context.Background(), "t1", rng)

	require.NoError(t, err)
	assert.False(t, available)
}

func TestAvailability_OccupancyRate(t *testing.T) {
	businessRepo, roomRepo, _, reservationRepo, svc := newAvailabilityService(t)

	rng := testRange(t, "2030-06-01", "2030-06-05")
	rooms := []*domain.Room{{ID: "r1"}, {ID: "r2"}, {ID: "r3"}, {ID: "r4"}}
	overlapping := []*domain.Reservation{{ID: "res1"}}

	businessRepo.EXPECT().GetByID(mock.Anything, "b1").Return(hotel("b1"), nil)
	roomRepo.EXPECT().ListByBusiness(mock.Anything, "b1").Return(rooms, nil)
	reservationRepo.EXPECT().ListOverlapping(mock.Anything, "b1", rng.Start(), rng.End()).Return(overlapping, nil)

	rate, err := svc.OccupancyRate(context.Background(), "b1", rng)

	require.NoError(t, err)
	assert.InDelta(t, 25.0, rate, 1e-9)
}

func TestAvailability_OccupancyRate_EmptyPool(t *testing.T) {
	businessRepo, roomRepo, _, _, svc := newAvailabilityService(t)

	businessRepo.EXPECT().GetByID(mock.Anything, "b1").Return(hotel("b1"), nil)
	roomRepo.EXPECT().ListByBusiness(mock.Anything, "b1").Return(nil, nil)

	rate, err := svc.OccupancyRate(context.Background(), "b1", testRange(t, "2030-06-01", "2030-06-05"))

	require.NoError(t, err)
	assert.Equal(t, 0.0, rate)
}

// Two concurrent check-then-create sequences can both observe a free window:
// nothing in the engine serializes them. This documents the race; closing it
// needs an external guard (advisory lock or an exclusion constraint).
func TestAvailability_CheckThenCreateRace(t *testing.T) {
	businessRepo, roomRepo, _, reservationRepo, svc := newAvailabilityService(t)

	rng := testRange(t, "2030-06-01", "2030-06-05")
	rooms := []*domain.Room{{ID: "r1", BusinessID: "b1", IsActive: true}}

	businessRepo.EXPECT().GetByID(mock.Anything, "b1").Return(hotel("b1"), nil)
	roomRepo.EXPECT().ListByBusiness(mock.Anything, "b1").Return(rooms, nil)
	reservationRepo.EXPECT().ListOverlapping(mock.Anything, "b1", rng.Start(), rng.End()).Return(nil, nil)

	results := make(chan int, 2)
	for i := 0; i < 2; i++ {
		go func() {
			free, err := svc.AvailableRooms(context.Background(), "b1", rng, domain.RoomFilter{})
			assert.NoError(t, err)
			results <- len(free)
		}()
	}

	first := <-results
	second := <-results

	// Both callers see the room as free and would proceed to book it.
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}
