package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Franklin-Osede/bookly/internal/domain"
	"github.com/Franklin-Osede/bookly/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ReservationService struct {
	reservationRepo ports.ReservationRepo
	businessRepo    ports.BusinessRepo
	notifier        ports.ReservationNotifier
	holdTTL         time.Duration
	logger          logger.Logger
}

func NewReservationService(
	reservationRepo ports.ReservationRepo,
	businessRepo ports.BusinessRepo,
	notifier ports.ReservationNotifier,
	holdTTL time.Duration,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		businessRepo:    businessRepo,
		notifier:        notifier,
		holdTTL:         holdTTL,
		logger:          logger,
	}
}

// Create checks the requested window for conflicts and persists a new
// pending reservation. The check and the insert are not serialized against
// concurrent callers; the backing store is the only consistency guard.
func (s *ReservationService) Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error) {
	biz, err := s.businessRepo.GetByID(ctx, input.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("get business: %w", err)
	}

	if biz.Type.ResourceType() != input.ResourceType {
		return nil, fmt.Errorf("%w: %s reservation against %s business", domain.ErrWrongBusinessType, input.ResourceType, biz.Type)
	}

	overlapping, err := s.reservationRepo.ListOverlapping(ctx, input.BusinessID, input.Range.Start(), input.Range.End())
	if err != nil {
		return nil, fmt.Errorf("list overlapping reservations: %w", err)
	}
	if len(overlapping) > 0 {
		return nil, domain.ErrNoAvailableResources
	}

	reservation, err := domain.NewReservation(input)
	if err != nil {
		return nil, err
	}

	if err = s.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.logger.Info("reservation created",
		logger.String("reservation_id", reservation.ID),
		logger.String("business_id", reservation.BusinessID),
		logger.String("customer_id", reservation.CustomerID),
	)

	go s.notifier.NotifyReservationCreated(context.WithoutCancel(ctx), reservation, biz)

	return reservation, nil
}

func (s *ReservationService) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.reservationRepo.GetByID(ctx, id)
}

func (s *ReservationService) ListByBusiness(ctx context.Context, businessID string) ([]*domain.Reservation, error) {
	return s.reservationRepo.ListByBusiness(ctx, businessID)
}

func (s *ReservationService) Confirm(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.transition(ctx, id, (*domain.Reservation).Confirm, "confirmed", s.notifier.NotifyReservationConfirmed)
}

func (s *ReservationService) Cancel(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.transition(ctx, id, (*domain.Reservation).Cancel, "cancelled", s.notifier.NotifyReservationCancelled)
}

func (s *ReservationService) Complete(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.transition(ctx, id, (*domain.Reservation).Complete, "completed", nil)
}

func (s *ReservationService) transition(
	ctx context.Context,
	id string,
	apply func(*domain.Reservation) error,
	verb string,
	notify func(context.Context, *domain.Reservation, *domain.Business),
) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	if err = apply(reservation); err != nil {
		return nil, err
	}

	if err = s.reservationRepo.UpdateStatus(ctx, reservation.ID, reservation.Status, reservation.UpdatedAt); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	s.logger.Info("reservation "+verb,
		logger.String("reservation_id", reservation.ID),
		logger.String("business_id", reservation.BusinessID),
	)

	if notify != nil {
		biz, err := s.businessRepo.GetByID(ctx, reservation.BusinessID)
		if err != nil {
			s.logger.Error("failed to get business for notification",
				logger.String("business_id", reservation.BusinessID),
				logger.String("error", err.Error()),
			)
			return reservation, nil
		}
		go notify(context.WithoutCancel(ctx), reservation, biz)
	}

	return reservation, nil
}

func (s *ReservationService) Update(ctx context.Context, id string, upd domain.ReservationUpdate) (*domain.Reservation, error) {
	if upd.Total != nil && !upd.Total.IsPositive() {
		return nil, fmt.Errorf("%w: total amount must be positive", domain.ErrInvalidAmount)
	}

	reservation, err := s.reservationRepo.Update(ctx, id, upd)
	if err != nil {
		return nil, fmt.Errorf("update reservation: %w", err)
	}

	return reservation, nil
}

// ReleaseExpired cancels pending reservations older than the hold TTL.
// Invoked periodically by the scheduler.
func (s *ReservationService) ReleaseExpired(ctx context.Context) ([]*domain.Reservation, error) {
	cancelled, err := s.reservationRepo.CancelStalePending(ctx, s.holdTTL)
	if err != nil {
		return nil, fmt.Errorf("cancel stale pending: %w", err)
	}

	if len(cancelled) > 0 {
		s.logger.Info("stale pending reservations cancelled",
			logger.Int("count", len(cancelled)),
		)

		go s.notifyCancelled(context.WithoutCancel(ctx), cancelled)
	}

	return cancelled, nil
}

func (s *ReservationService) notifyCancelled(ctx context.Context, reservations []*domain.Reservation) {
	for _, r := range reservations {
		biz, err := s.businessRepo.GetByID(ctx, r.BusinessID)
		if err != nil {
			s.logger.Error("failed to get business for cancel notification",
				logger.String("business_id", r.BusinessID),
			)
			continue
		}

		s.notifier.NotifyReservationCancelled(ctx, r, biz)
	}
}
