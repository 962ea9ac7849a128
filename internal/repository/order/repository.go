package order

import (
	"context"

	"storefront/internal/domain"
)

// ListFilter narrows the admin order listing.
type ListFilter struct {
	Status string
	Page   int
	Limit  int
}

// Stats is the admin dashboard summary. Revenue covers confirmed and
// completed orders only.
type Stats struct {
	TotalOrders       int64 `json:"totalOrders"`
	PendingOrders     int64 `json:"pendingOrders"`
	CompletedOrders   int64 `json:"completedOrders"`
	TotalRevenueCents int64 `json:"totalRevenueCents"`
}

type Repository interface {
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	List(ctx context.Context, f ListFilter) ([]domain.Order, int64, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.Order, error)
	Stats(ctx context.Context) (*Stats, error)
}
