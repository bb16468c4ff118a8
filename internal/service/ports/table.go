package ports

import (
	"context"

	"github.com/Franklin-Osede/bookly/internal/domain"
)

type TableRepo interface {
	Create(ctx context.Context, t *domain.Table) error
	GetByID(ctx context.Context, id string) (*domain.Table, error)
	GetByNumber(ctx context.Context, businessID, number string) (*domain.Table, error)
	ListByBusiness(ctx context.Context, businessID string) ([]*domain.Table, error)
	Update(ctx context.Context, id string, upd domain.TableUpdate) (*domain.Table, error)
}
