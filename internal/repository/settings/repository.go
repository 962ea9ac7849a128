package settings

import (
	"context"

	"storefront/internal/domain"
)

type Repository interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Upsert(ctx context.Context, s domain.Settings) (*domain.Settings, error)
}
