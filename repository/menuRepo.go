package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rishijha390/delhi-tandoori-momo/models"
)

type MenuRepository interface {
	// ListAvailable returns available items, optionally filtered by exact
	// category match (empty category means all).
	ListAvailable(ctx context.Context, category string) ([]models.MenuItem, error)
	GetByItemID(ctx context.Context, itemID int) (*models.MenuItem, error)
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error
	InsertMany(ctx context.Context, items []models.MenuItem) error
}

type MongoMenuRepo struct {
	coll *mongo.Collection
}

func NewMongoMenuRepo(coll *mongo.Collection) *MongoMenuRepo {
	return &MongoMenuRepo{coll: coll}
}

func (r *MongoMenuRepo) ListAvailable(ctx context.Context, category string) ([]models.MenuItem, error) {
	filter := bson.M{"is_available": true}
	if category != "" {
		filter["category"] = category
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.MenuItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoMenuRepo) GetByItemID(ctx context.Context, itemID int) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.coll.FindOne(ctx, bson.M{"item_id": itemID}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MongoMenuRepo) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *MongoMenuRepo) DeleteAll(ctx context.Context) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{})
	return err
}

func (r *MongoMenuRepo) InsertMany(ctx context.Context, items []models.MenuItem) error {
	docs := make([]interface{}, 0, len(items))
	for _, item := range items {
		docs = append(docs, item)
	}
	_, err := r.coll.InsertMany(ctx, docs)
	return err
}
