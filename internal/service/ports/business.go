package ports

import (
	"context"

	"github.com/Franklin-Osede/bookly/internal/domain"
)

type BusinessRepo interface {
	Create(ctx context.Context, b *domain.Business) error
	GetByID(ctx context.Context, id string) (*domain.Business, error)
}
