package product

import (
	"context"

	"storefront/internal/domain"
)

// Filter narrows the public product listing.
type Filter struct {
	CategoryID   string
	Search       string
	FeaturedOnly bool
	ActiveOnly   bool
	Sort         string
	Page         int
	Limit        int
}

type Repository interface {
	List(ctx context.Context, f Filter) ([]domain.Product, int64, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
