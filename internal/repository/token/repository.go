package token

import (
	"context"
	"time"
)

// Token is an opaque bearer credential for an admin user. Expired documents
// are reaped by the TTL index on expires_at; Get still checks expiry so a
// token never outlives its TTL between reaper runs.
type Token struct {
	Token     string    `bson:"token"`
	UserID    string    `bson:"user_id"`
	Kind      string    `bson:"kind"`
	ExpiresAt time.Time `bson:"expires_at"`
}

type Repository interface {
	Create(ctx context.Context, t Token) error
	Get(ctx context.Context, token string) (*Token, error)
	Delete(ctx context.Context, token string) error
}
