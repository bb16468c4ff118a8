package service

import (
	"context"
	"testing"

	"github.com/Franklin-Osede/bookly/internal/domain"
	"github.com/Franklin-Osede/bookly/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogService(t *testing.T) (*mocks.MockBusinessRepo, *mocks.MockRoomRepo, *mocks.MockTableRepo, *CatalogService) {
	t.Helper()
	businessRepo := mocks.NewMockBusinessRepo(t)
	roomRepo := mocks.NewMockRoomRepo(t)
	tableRepo := mocks.NewMockTableRepo(t)

	svc := NewCatalogService(businessRepo, roomRepo, tableRepo)
	return businessRepo, roomRepo, tableRepo, svc
}

func TestCatalogService_CreateBusiness_Success(t *testing.T) {
	businessRepo, _, _, svc := newCatalogService(t)

	businessRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	biz, err := svc.CreateBusiness(context.Background(), domain.CreateBusinessInput{
		Name: "Grand Hotel",
		Type: domain.BusinessTypeHotel,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, biz.ID)
	assert.Equal(t, domain.BusinessTypeHotel, biz.Type)
}

func TestCatalogService_CreateBusiness_Validation(t *testing.T) {
	_, _, _, svc := newCatalogService(t)

	_, err := svc.CreateBusiness(context.Background(), domain.CreateBusinessInput{Type: domain.BusinessTypeHotel})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.CreateBusiness(context.Background(), domain.CreateBusinessInput{Name: "X", Type: "SPA"})
	assert.ErrorIs(t, err, domain.ErrInvalidType)
}

func validRoomInput(t *testing.T) domain.CreateRoomInput {
	t.Helper()
	return domain.CreateRoomInput{
		BusinessID:    "b1",
		Number:        "101",
		Type:          domain.RoomTypeDouble,
		Capacity:      2,
		PricePerNight: testMoney(t, 120),
	}
}

func TestCatalogService_CreateRoom_Success(t *testing.T) {
	businessRepo, roomRepo, _, svc := newCatalogService(t)

	businessRepo.EXPECT().GetByID(mock.Anything, "b1").Return(hotel("b1"), nil)
	roomRepo.EXPECT().GetByNumber(mock.Anything, "b1", "101").Return(nil, domain.ErrRoomNotFound)
	roomRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	room, err := svc.CreateRoom(context.Background(), validRoomInput(t))

	require.NoError(t, err)
	assert.NotEmpty(t, room.ID)
	assert.Equal(t, "101", room.Number)
	assert.True(t, room.IsActive)
}

func TestCatalogService_CreateRoom_DuplicateNumber(t *testing.T) {
	businessRepo, roomRepo, _, svc := newCatalogService(t)

	existing := &domain.Room{ID: "r1", BusinessID: "b1", Number: "101"}

	businessRepo.EXPECT().GetByID(mock.Anything, "b1").Return(hotel("b1"), nil)
	roomRepo.EXPECT().GetByNumber(mock.Anything, "b1", "101").Return(existing, nil)

	_, err := svc.CreateRoom(context.Background(), validRoomInput(t))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateResourceNumber)
}

func TestCatalogService_CreateRoom_OnRestaurant(t *testing.T) {
	businessRepo, _, _, svc := newCatalogService(t)

	businessRepo.EXPECT().GetByID(mock.Anything, "b1").Return(restaurant("b1"), nil)

	_, err := svc.CreateRoom(context.Background(), validRoomInput(t))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrWrongBusinessType)
}

func TestCatalogService_CreateRoom_Validation(t *testing.T) {
	businessRepo, _, _, svc := newCatalogService(t)

	businessRepo.EXPECT().GetByID(mock.Anything, "b1").Return(hotel("b1"), nil)

	input := validRoomInput(t)
	input.Capacity = 0

	_, err := svc.CreateRoom(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCatalogService_UpdateRoom_Success(t *testing.T) {
	_, roomRepo, _, svc := newCatalogService(t)

	capacity := 3
	updated := &domain.Room{ID: "r1", Capacity: capacity}
	roomRepo.EXPECT().Update(mock.Anything, "r1", mock.Anything).Return(updated, nil)

	room, err := svc.UpdateRoom(context.Background(), "r1", domain.RoomUpdate{Capacity: &capacity})

	require.NoError(t, err)
	assert.Equal(t, 3, room.Capacity)
}

func TestCatalogService_UpdateRoom_InvalidCapacity(t *testing.T) {
	_, _, _, svc := newCatalogService(t)

	capacity := -1
	_, err := svc.UpdateRoom(context.Background(), "r1", domain.RoomUpdate{Capacity: &capacity})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCatalogService_CreateTable_Success(t *testing.T) {
	businessRepo, _, tableRepo, svc := newCatalogService(t)

	businessRepo.EXPECT().GetByID(mock.Anything, "b2").Return(restaurant("b2"), nil)
	tableRepo.EXPECT().GetByNumber(mock.Anything, "b2", "12").Return(nil, domain.ErrTableNotFound)
	tableRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	table, err := svc.CreateTable(context.Background(), domain.CreateTableInput{
		BusinessID: "b2",
		Number:     "12",
		Capacity:   4,
		Location:   domain.TableLocationTerrace,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, table.ID)
	assert.True(t, table.IsActive)
}

func TestCatalogService_CreateTable_DuplicateNumber(t *testing.T) {
	businessRepo, _, tableRepo, svc := newCatalogService(t)

	existing := &domain.Table{ID: "t1", BusinessID: "b2", Number: "12"}

	businessRepo.EXPECT().GetByID(mock.Anything, "b2").Return(restaurant("b2"), nil)
	tableRepo.EXPECT().GetByNumber(mock.Anything, "b2", "12").Return(existing, nil)

	_, err := svc.CreateTable(context.Background(), domain.CreateTableInput{
		BusinessID: "b2",
		Number:     "12",
		Capacity:   4,
		Location:   domain.TableLocationIndoor,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateResourceNumber)
}

func TestCatalogService_UpdateTable_InvalidLocation(t *testing.T) {
	_, _, _, svc := newCatalogService(t)

	loc := domain.TableLocation("ROOFTOP")
	_, err := svc.UpdateTable(context.Background(), "t1", domain.TableUpdate{Location: &loc})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidType)
}
