package product

import (
	"context"

	"growkit-storefront/internal/domain"
)

// Repository is the catalog persistence boundary. Implementations return
// strict domain.Product records; all loose-shape coercion happens inside.
type Repository interface {
	List(ctx context.Context, includeInactive bool) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
