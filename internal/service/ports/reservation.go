package ports

import (
	"context"
	"time"

	"github.com/Franklin-Osede/bookly/internal/domain"
)

type ReservationRepo interface {
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	// ListOverlapping returns every non-cancelled reservation of the business
	// whose range overlaps [start, end], endpoints included.
	ListOverlapping(ctx context.Context, businessID string, start, end time.Time) ([]*domain.Reservation, error)
	ListByBusiness(ctx context.Context, businessID string) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus, updatedAt time.Time) error
	Update(ctx context.Context, id string, upd domain.ReservationUpdate) (*domain.Reservation, error)
	CancelStalePending(ctx context.Context, olderThan time.Duration) ([]*domain.Reservation, error)
}
