package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rishijha390/delhi-tandoori-momo/models"
)

type OrderRepository interface {
	Insert(ctx context.Context, order models.Order) error
	GetByOrderID(ctx context.Context, orderID string) (*models.Order, error)
	// List returns orders newest first, optionally filtered by order status.
	List(ctx context.Context, status string, limit, offset int64) ([]models.Order, error)
}

type MongoOrderRepo struct {
	coll *mongo.Collection
}

func NewMongoOrderRepo(coll *mongo.Collection) *MongoOrderRepo {
	return &MongoOrderRepo{coll: coll}
}

func (r *MongoOrderRepo) Insert(ctx context.Context, order models.Order) error {
	_, err := r.coll.InsertOne(ctx, order)
	return err
}

func (r *MongoOrderRepo) GetByOrderID(ctx context.Context, orderID string) (*models.Order, error) {
	var order models.Order
	err := r.coll.FindOne(ctx, bson.M{"order_id": orderID}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *MongoOrderRepo) List(ctx context.Context, status string, limit, offset int64) ([]models.Order, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	filter := bson.M{}
	if status != "" {
		filter["order_status"] = status
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(offset).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
