package product

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront/internal/domain"
)

type mongoRepo struct {
	coll *mongo.Collection
}

func NewMongo(database *mongo.Database) Repository {
	return &mongoRepo{coll: database.Collection("products")}
}

// sortSpec maps API sort keys to the stored field order. Unknown keys fall
// back to newest-first.
func sortSpec(sort string) bson.D {
	switch sort {
	case "createdAt":
		return bson.D{{Key: "created_at", Value: 1}}
	case "-createdAt", "":
		return bson.D{{Key: "created_at", Value: -1}}
	case "priceCents":
		return bson.D{{Key: "price_cents", Value: 1}}
	case "-priceCents":
		return bson.D{{Key: "price_cents", Value: -1}}
	case "name":
		return bson.D{{Key: "name", Value: 1}}
	case "-name":
		return bson.D{{Key: "name", Value: -1}}
	default:
		return bson.D{{Key: "created_at", Value: -1}}
	}
}

func (r *mongoRepo) List(ctx context.Context, f Filter) ([]domain.Product, int64, error) {
	query := bson.M{}
	if f.ActiveOnly {
		query["is_active"] = true
	}
	if f.CategoryID != "" {
		query["category_id"] = f.CategoryID
	}
	if f.FeaturedOnly {
		query["featured"] = true
	}
	if f.Search != "" {
		query["$text"] = bson.M{"$search": f.Search}
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	opts := options.Find().SetSort(sortSpec(f.Sort))
	if f.Limit > 0 {
		opts.SetLimit(int64(f.Limit))
		if f.Page > 1 {
			opts.SetSkip(int64((f.Page - 1) * f.Limit))
		}
	}

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find products: %w", err)
	}
	defer cur.Close(ctx)

	var products []domain.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, 0, fmt.Errorf("decode products: %w", err)
	}
	return products, total, nil
}

func (r *mongoRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

func (r *mongoRepo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	now := time.Now().UTC()
	p.ID = primitive.NewObjectID().Hex()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Images == nil {
		p.Images = []string{}
	}

	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return &p, nil
}

func (r *mongoRepo) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	p.UpdatedAt = time.Now().UTC()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (r *mongoRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
