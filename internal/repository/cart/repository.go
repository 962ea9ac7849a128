package cart

import (
	"context"

	cartdomain "storefront/internal/cart"
)

// Repository persists one cart document per shopper session.
type Repository interface {
	Load(ctx context.Context, sessionID string) ([]cartdomain.LineItem, error)
	Save(ctx context.Context, sessionID string, items []cartdomain.LineItem) error
}

// ForSession binds a session id to the repository, yielding the Store a
// Ledger writes through.
func ForSession(repo Repository, sessionID string) cartdomain.Store {
	return &sessionStore{repo: repo, sessionID: sessionID}
}

type sessionStore struct {
	repo      Repository
	sessionID string
}

func (s *sessionStore) Load(ctx context.Context) ([]cartdomain.LineItem, error) {
	return s.repo.Load(ctx, s.sessionID)
}

func (s *sessionStore) Save(ctx context.Context, items []cartdomain.LineItem) error {
	return s.repo.Save(ctx, s.sessionID, items)
}
