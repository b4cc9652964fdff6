package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rishijha390/delhi-tandoori-momo/models"
)

type ContactRepository interface {
	Insert(ctx context.Context, message models.ContactMessage) error
	// List returns messages newest first.
	List(ctx context.Context, limit, offset int64) ([]models.ContactMessage, error)
	// MarkRead flips is_read on the message with the given id.
	MarkRead(ctx context.Context, messageID string) error
}

type MongoContactRepo struct {
	coll *mongo.Collection
}

func NewMongoContactRepo(coll *mongo.Collection) *MongoContactRepo {
	return &MongoContactRepo{coll: coll}
}

func (r *MongoContactRepo) Insert(ctx context.Context, message models.ContactMessage) error {
	_, err := r.coll.InsertOne(ctx, message)
	return err
}

func (r *MongoContactRepo) List(ctx context.Context, limit, offset int64) ([]models.ContactMessage, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(offset).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var messages []models.ContactMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *MongoContactRepo) MarkRead(ctx context.Context, messageID string) error {
	result, err := r.coll.UpdateOne(ctx,
		bson.M{"message_id": messageID},
		bson.M{"$set": bson.M{"is_read": true}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
