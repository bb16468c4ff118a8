package ports

import (
	"context"

	"github.com/Franklin-Osede/bookly/internal/domain"
)

type ReservationNotifier interface {
	NotifyReservationCreated(ctx context.Context, r *domain.Reservation, b *domain.Business)
	NotifyReservationConfirmed(ctx context.Context, r *domain.Reservation, b *domain.Business)
	NotifyReservationCancelled(ctx context.Context, r *domain.Reservation, b *domain.Business)
}
