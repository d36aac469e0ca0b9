package faq

import (
	"context"

	"growkit-storefront/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.FAQ, error)
	Create(ctx context.Context, f domain.FAQ) (*domain.FAQ, error)
	Update(ctx context.Context, f domain.FAQ) (*domain.FAQ, error)
	Delete(ctx context.Context, id string) error
}
