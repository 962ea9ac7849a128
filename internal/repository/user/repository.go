package user

import (
	"context"

	"storefront/internal/domain"
)

type Repository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u domain.User) (*domain.User, error)
}
