package scheduler

import (
	"context"
	"time"

	"github.com/Franklin-Osede/bookly/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type reservationReleaser interface {
	ReleaseExpired(ctx context.Context) ([]*domain.Reservation, error)
}

// Scheduler periodically cancels pending reservations whose hold expired.
type Scheduler struct {
	reservationService reservationReleaser
	interval           time.Duration
	logger             logger.Logger
}

func New(
	reservationService reservationReleaser,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reservationService: reservationService,
		interval:           interval,
		logger:             logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	released, err := s.reservationService.ReleaseExpired(ctx)
	if err != nil {
		s.logger.Error("failed to release expired holds",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, r := range released {
		s.logger.Info("reservation hold expired",
			logger.String("reservation_id", r.ID),
			logger.String("business_id", r.BusinessID),
			logger.String("customer_id", r.CustomerID),
		)
	}
}
