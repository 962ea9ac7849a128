package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	cartdomain "storefront/internal/cart"
)

type cartDocument struct {
	SessionID string                `bson:"session_id"`
	Items     []cartdomain.LineItem `bson:"items"`
	CreatedAt time.Time             `bson:"created_at"`
	UpdatedAt time.Time             `bson:"updated_at"`
}

type mongoRepo struct {
	coll *mongo.Collection
}

func NewMongo(database *mongo.Database) Repository {
	return &mongoRepo{coll: database.Collection("carts")}
}

// Load returns the saved lines for the session. A session without a cart
// document starts empty; that is not an error.
func (r *mongoRepo) Load(ctx context.Context, sessionID string) ([]cartdomain.LineItem, error) {
	var doc cartDocument
	err := r.coll.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("load cart: %w", err)
	}
	return doc.Items, nil
}

func (r *mongoRepo) Save(ctx context.Context, sessionID string, items []cartdomain.LineItem) error {
	now := time.Now().UTC()
	if items == nil {
		items = []cartdomain.LineItem{}
	}

	update := bson.M{
		"$set": bson.M{
			"items":      items,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"session_id": sessionID,
			"created_at": now,
		},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, bson.M{"session_id": sessionID}, update, opts); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}
