package order

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
	return &mongoRepo{coll: database.Collection("orders")}
}

// Create inserts the order and assigns its order number from the running
// count: ORD-<unix-millis>-<count+1>. The unique index on order_number
// guards against the rare collision; one retry refreshes the count.
func (r *mongoRepo) Create(ctx context.Context, o domain.Order) (*domain.Order, error) {
	now := time.Now().UTC()
	o.ID = primitive.NewObjectID().Hex()
	o.CreatedAt = now
	o.UpdatedAt = now
	if o.Status == "" {
		o.Status = domain.OrderStatusPending
	}

	for attempt := 0; attempt < 2; attempt++ {
		count, err := r.coll.CountDocuments(ctx, bson.M{})
		if err != nil {
			return nil, fmt.Errorf("count orders: %w", err)
		}
		o.OrderNumber = fmt.Sprintf("ORD-%d-%d", time.Now().UnixMilli(), count+1)

		_, err = r.coll.InsertOne(ctx, o)
		if err == nil {
			return &o, nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("insert order: %w", err)
		}
	}
	return nil, domain.ErrAlreadyExists
}

func (r *mongoRepo) List(ctx context.Context, f ListFilter) ([]domain.Order, int64, error) {
	query := bson.M{}
	if f.Status != "" {
		query["status"] = f.Status
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if f.Limit > 0 {
		opts.SetLimit(int64(f.Limit))
		if f.Page > 1 {
			opts.SetSkip(int64((f.Page - 1) * f.Limit))
		}
	}

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find orders: %w", err)
	}
	defer cur.Close(ctx)

	var orders []domain.Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, 0, fmt.Errorf("decode orders: %w", err)
	}
	return orders, total, nil
}

func (r *mongoRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	var o domain.Order
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

func (r *mongoRepo) UpdateStatus(ctx context.Context, id, status string) (*domain.Order, error) {
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var o domain.Order
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&o)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update order status: %w", err)
	}
	return &o, nil
}

func (r *mongoRepo) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	var err error
	if stats.TotalOrders, err = r.coll.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, fmt.Errorf("count total orders: %w", err)
	}
	if stats.PendingOrders, err = r.coll.CountDocuments(ctx, bson.M{"status": domain.OrderStatusPending}); err != nil {
		return nil, fmt.Errorf("count pending orders: %w", err)
	}
	if stats.CompletedOrders, err = r.coll.CountDocuments(ctx, bson.M{"status": domain.OrderStatusCompleted}); err != nil {
		return nil, fmt.Errorf("count completed orders: %w", err)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": bson.M{"$in": bson.A{domain.OrderStatusConfirmed, domain.OrderStatusCompleted}}}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$total_cents"}}}},
	}
	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate revenue: %w", err)
	}
	defer cur.Close(ctx)

	var results []struct {
		Total int64 `bson:"total"`
	}
	if err := cur.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decode revenue: %w", err)
	}
	if len(results) > 0 {
		stats.TotalRevenueCents = results[0].Total
	}
	return stats, nil
}
