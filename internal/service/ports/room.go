package ports

import (
	"context"

	"github.com/Franklin-Osede/bookly/internal/domain"
)

type RoomRepo interface {
	Create(ctx context.Context, r *domain.Room) error
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	GetByNumber(ctx context.Context, businessID, number string) (*domain.Room, error)
	ListByBusiness(ctx context.Context, businessID string) ([]*domain.Room, error)
	Update(ctx context.Context, id string, upd domain.RoomUpdate) (*domain.Room, error)
}
