package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront/internal/domain"
)

type mongoRepo struct {
	coll *mongo.Collection
}

func NewMongo(database *mongo.Database) Repository {
	return &mongoRepo{coll: database.Collection("settings")}
}

// Get returns the singleton settings document, or domain.ErrNotFound when
// the store has never been configured.
func (r *mongoRepo) Get(ctx context.Context) (*domain.Settings, error) {
	var s domain.Settings
	err := r.coll.FindOne(ctx, bson.M{}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

func (r *mongoRepo) Upsert(ctx context.Context, s domain.Settings) (*domain.Settings, error) {
	now := time.Now().UTC()
	s.UpdatedAt = now

	existing, err := r.Get(ctx)
	switch {
	case err == nil:
		s.ID = existing.ID
		s.CreatedAt = existing.CreatedAt
		if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": s.ID}, s); err != nil {
			return nil, fmt.Errorf("replace settings: %w", err)
		}
	case errors.Is(err, domain.ErrNotFound):
		s.ID = primitive.NewObjectID().Hex()
		s.CreatedAt = now
		if _, err := r.coll.InsertOne(ctx, s); err != nil {
			return nil, fmt.Errorf("insert settings: %w", err)
		}
	default:
		return nil, err
	}
	return &s, nil
}
