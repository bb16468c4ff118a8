package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Franklin-Osede/bookly/internal/domain"
	"github.com/Franklin-Osede/bookly/internal/service/ports"
	"github.com/google/uuid"
)

// CatalogService manages businesses and their resource pools.
type CatalogService struct {
	businessRepo ports.BusinessRepo
	roomRepo     ports.RoomRepo
	tableRepo    ports.TableRepo
}

func NewCatalogService(businessRepo ports.BusinessRepo, roomRepo ports.RoomRepo, tableRepo ports.TableRepo) *CatalogService {
	return &CatalogService{
		businessRepo: businessRepo,
		roomRepo:     roomRepo,
		tableRepo:    tableRepo,
	}
}

func (s *CatalogService) CreateBusiness(ctx context.Context, input domain.CreateBusinessInput) (*domain.Business, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if !input.Type.Valid() {
		return nil, fmt.Errorf("%w: %q is not a business type", domain.ErrInvalidType, input.Type)
	}

	now := time.Now().UTC()
	biz := &domain.Business{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Type:      input.Type,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.businessRepo.Create(ctx, biz); err != nil {
		return nil, fmt.Errorf("create business: %w", err)
	}

	return biz, nil
}

func (s *CatalogService) GetBusiness(ctx context.Context, id string) (*domain.Business, error) {
	return s.businessRepo.GetByID(ctx, id)
}

func (s *CatalogService) CreateRoom(ctx context.Context, input domain.CreateRoomInput) (*domain.Room, error) {
	biz, err := s.businessRepo.GetByID(ctx, input.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("get business: %w", err)
	}
	if biz.Type != domain.BusinessTypeHotel {
		return nil, fmt.Errorf("%w: rooms belong to hotels", domain.ErrWrongBusinessType)
	}

	if input.Number == "" {
		return nil, fmt.Errorf("%w: number is required", domain.ErrValidation)
	}
	if input.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}
	if !input.Type.Valid() {
		return nil, fmt.Errorf("%w: %q is not a room type", domain.ErrInvalidType, input.Type)
	}
	if !input.PricePerNight.IsPositive() {
		return nil, fmt.Errorf("%w: price per night must be positive", domain.ErrInvalidAmount)
	}

	// The room number is the human-readable key within a business.
	if _, err = s.roomRepo.GetByNumber(ctx, input.BusinessID, input.Number); err == nil {
		return nil, domain.ErrDuplicateResourceNumber
	} else if !errors.Is(err, domain.ErrRoomNotFound) {
		return nil, fmt.Errorf("check room number: %w", err)
	}

	now := time.Now().UTC()
	room := &domain.Room{
		ID:            uuid.New().String(),
		BusinessID:    input.BusinessID,
		Number:        input.Number,
		Type:          input.Type,
		Capacity:      input.Capacity,
		PricePerNight: input.PricePerNight,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err = s.roomRepo.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}

	return room, nil
}

func (s *CatalogService) ListRooms(ctx context.Context, businessID string) ([]*domain.Room, error) {
	return s.roomRepo.ListByBusiness(ctx, businessID)
}

func (s *CatalogService) UpdateRoom(ctx context.Context, id string, upd domain.RoomUpdate) (*domain.Room, error) {
	if upd.Capacity != nil && *upd.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}
	if upd.Type != nil && !upd.Type.Valid() {
		return nil, fmt.Errorf("%w: %q is not a room type", domain.ErrInvalidType, *upd.Type)
	}
	if upd.PricePerNight != nil && !upd.PricePerNight.IsPositive() {
		return nil, fmt.Errorf("%w: price per night must be positive", domain.ErrInvalidAmount)
	}

	room, err := s.roomRepo.Update(ctx, id, upd)
	if err != nil {
		return nil, fmt.Errorf("update room: %w", err)
	}

	return room, nil
}

func (s *CatalogService) CreateTable(ctx context.Context, input domain.CreateTableInput) (*domain.Table, error) {
	biz, err := s.businessRepo.GetByID(ctx, input.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("get business: %w", err)
	}
	if biz.Type != domain.BusinessTypeRestaurant {
		return nil, fmt.Errorf("%w: tables belong to restaurants", domain.ErrWrongBusinessType)
	}

	if input.Number == "" {
		return nil, fmt.Errorf("%w: number is required", domain.ErrValidation)
	}
	if input.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}
	if !input.Location.Valid() {
		return nil, fmt.Errorf("%w: %q is not a table location", domain.ErrInvalidType, input.Location)
	}

	if _, err = s.tableRepo.GetByNumber(ctx, input.BusinessID, input.Number); err == nil {
		return nil, domain.ErrDuplicateResourceNumber
	} else if !errors.Is(err, domain.ErrTableNotFound) {
		return nil, fmt.Errorf("check table number: %w", err)
	}

	now := time.Now().UTC()
	table := &domain.Table{
		ID:         uuid.New().String(),
		BusinessID: input.BusinessID,
		Number:     input.Number,
		Capacity:   input.Capacity,
		Location:   input.Location,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err = s.tableRepo.Create(ctx, table); err != nil {
		return nil, fmt.Errorf("create table: %w", err)
	}

	return table, nil
}

func (s *CatalogService) ListTables(ctx context.Context, businessID string) ([]*domain.Table, error) {
	return s.tableRepo.ListByBusiness(ctx, businessID)
}

func (s *CatalogService) UpdateTable(ctx context.Context, id string, upd domain.TableUpdate) (*domain.Table, error) {
	if upd.Capacity != nil && *upd.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}
	if upd.Location != nil && !upd.Location.Valid() {
		return nil, fmt.Errorf("%w: %q is not a table location", domain.ErrInvalidType, *upd.Location)
	}

	table, err := s.tableRepo.Update(ctx, id, upd)
	if err != nil {
		return nil, fmt.Errorf("update table: %w", err)
	}

	return table, nil
}
