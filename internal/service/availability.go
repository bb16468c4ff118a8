package service

import (
	"context"
	"fmt"

	"github.com/Franklin-Osede/bookly/internal/domain"
	"github.com/Franklin-Osede/bookly/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// AvailabilityService decides which resources of a business are free for a
// requested date range. It is read-only and stateless: the pool and the
// reservation list are fetched fresh on every call.
//
// Conflicts are resolved at business granularity, not per unit: any
// overlapping reservation for the business marks the whole pool occupied.
type AvailabilityService struct {
	businessRepo    ports.BusinessRepo
	roomRepo        ports.RoomRepo
	tableRepo       ports.TableRepo
	reservationRepo ports.ReservationRepo
	logger          logger.Logger
}

func NewAvailabilityService(
	businessRepo ports.BusinessRepo,
	roomRepo ports.RoomRepo,
	tableRepo ports.TableRepo,
	reservationRepo ports.ReservationRepo,
	logger logger.Logger,
) *AvailabilityService {
	return &AvailabilityService{
		businessRepo:    businessRepo,
		roomRepo:        roomRepo,
		tableRepo:       tableRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

func (s *AvailabilityService) AvailableRooms(ctx context.Context, businessID string, rng domain.DateRange, filter domain.RoomFilter) ([]*domain.Room, error) {
	biz, err := s.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("get business: %w", err)
	}
	if biz.Type != domain.BusinessTypeHotel {
		return nil, fmt.Errorf("%w: %s is not a hotel", domain.ErrWrongBusinessType, businessID)
	}

	return s.availableRooms(ctx, biz, rng, filter)
}

func (s *AvailabilityService) availableRooms(ctx context.Context, biz *domain.Business, rng domain.DateRange, filter domain.RoomFilter) ([]*domain.Room, error) {
	rooms, err := s.roomRepo.ListByBusiness(ctx, biz.ID)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	blocked, err := s.hasOverlap(ctx, biz.ID, rng)
	if err != nil {
		return nil, err
	}
	if blocked {
		return []*domain.Room{}, nil
	}

	free := make([]*domain.Room, 0, len(rooms))
	for _, r := range rooms {
		if filter.Matches(r) {
			free = append(free, r)
		}
	}
	return free, nil
}

func (s *AvailabilityService) AvailableTables(ctx context.Context, businessID string, rng domain.DateRange, filter domain.TableFilter) ([]*domain.Table, error) {
	biz, err := s.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("get business: %w", err)
	}
	if biz.Type != domain.BusinessTypeRestaurant {
		return nil, fmt.Errorf("%w: %s is not a restaurant", domain.ErrWrongBusinessType, businessID)
	}

	return s.availableTables(ctx, biz, rng, filter)
}

func (s *AvailabilityService) availableTables(ctx context.Context, biz *domain.Business, rng domain.DateRange, filter domain.TableFilter) ([]*domain.Table, error) {
	tables, err := s.tableRepo.ListByBusiness(ctx, biz.ID)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}

	blocked, err := s.hasOverlap(ctx, biz.ID, rng)
	if err != nil {
		return nil, err
	}
	if blocked {
		return []*domain.Table{}, nil
	}

	free := make([]*domain.Table, 0, len(tables))
	for _, t := range tables {
		if filter.Matches(t) {
			free = append(free, t)
		}
	}
	return free, nil
}

// AvailableResources dispatches on the business type and returns the free
// pool as the generic resource view.
func (s *AvailabilityService) AvailableResources(ctx context.Context, businessID string, rng domain.DateRange, filter domain.ResourceFilter) ([]domain.Resource, error) {
	biz, err := s.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("get business: %w", err)
	}

	switch biz.Type {
	case domain.BusinessTypeHotel:
		rooms, err := s.availableRooms(ctx, biz, rng, filter.Room)
		if err != nil {
			return nil, err
		}
		res := make([]domain.Resource, len(rooms))
		for i, r := range rooms {
			res[i] = r
		}
		return res, nil
	case domain.BusinessTypeRestaurant:
		tables, err := s.availableTables(ctx, biz, rng, filter.Table)
		if err != nil {
			return nil, err
		}
		res := make([]domain.Resource, len(tables))
		for i, t := range tables {
			res[i] = t
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidType, biz.Type)
	}
}

// CheckRoom reports whether one specific room is free for the range. Unlike
// the pool queries the unit's active flag is honored here: an inactive room
// is never available.
func (s *AvailabilityService) CheckRoom(ctx context.Context, roomID string, rng domain.DateRange) (bool, error) {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return false, fmt.Errorf("get room: %w", err)
	}
	if !room.IsActive {
		return false, nil
	}

	blocked, err := s.hasOverlap(ctx, room.BusinessID, rng)
	if err != nil {
		return false, err
	}
	return !blocked, nil
}

func (s *AvailabilityService) CheckTable(ctx context.Context, tableID string, rng domain.DateRange) (bool, error) {
	table, err := s.tableRepo.GetByID(ctx, tableID)
	if err != nil {
		return false, fmt.Errorf("get table: %w", err)
	}
	if !table.IsActive {
		return false, nil
	}

	blocked, err := s.hasOverlap(ctx, table.BusinessID, rng)
	if err != nil {
		return false, err
	}
	return !blocked, nil
}

// OccupancyRate is overlapping reservations over pool size, as a percentage.
// It is a coarse utilization signal, not a per-unit occupancy count.
func (s *AvailabilityService) OccupancyRate(ctx context.Context, businessID string, rng domain.DateRange) (float64, error) {
	biz, err := s.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		return 0, fmt.Errorf("get business: %w", err)
	}

	var total int
	switch biz.Type {
	case domain.BusinessTypeHotel:
		rooms, err := s.roomRepo.ListByBusiness(ctx, businessID)
		if err != nil {
			return 0, fmt.Errorf("list rooms: %w", err)
		}
		total = len(rooms)
	default:
		tables, err := s.tableRepo.ListByBusiness(ctx, businessID)
		if err != nil {
			return 0, fmt.Errorf("list tables: %w", err)
		}
		total = len(tables)
	}

	if total == 0 {
		return 0, nil
	}

	overlapping, err := s.reservationRepo.ListOverlapping(ctx, businessID, rng.Start(), rng.End())
	if err != nil {
		return 0, fmt.Errorf("list overlapping reservations: %w", err)
	}

	return float64(len(overlapping)) / float64(total) * 100, nil
}

func (s *AvailabilityService) hasOverlap(ctx context.Context, businessID string, rng domain.DateRange) (bool, error) {
	overlapping, err := s.reservationRepo.ListOverlapping(ctx, businessID, rng.Start(), rng.End())
	if err != nil {
		return false, fmt.Errorf("list overlapping reservations: %w", err)
	}

	if len(overlapping) > 0 {
		s.logger.Debug("availability blocked by overlapping reservations",
			logger.String("business_id", businessID),
			logger.Int("overlapping", len(overlapping)),
		)
		return true, nil
	}
	return false, nil
}
