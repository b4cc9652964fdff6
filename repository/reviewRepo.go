package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rishijha390/delhi-tandoori-momo/models"
)

type ReviewRepository interface {
	// ListApproved returns approved reviews only, newest first.
	ListApproved(ctx context.Context, limit int64) ([]models.Review, error)
	Insert(ctx context.Context, review models.Review) error
	// Approve flips is_approved on the review with the given id.
	Approve(ctx context.Context, reviewID string) error
	DeleteAll(ctx context.Context) error
	InsertMany(ctx context.Context, reviews []models.Review) error
}

type MongoReviewRepo struct {
	coll *mongo.Collection
}

func NewMongoReviewRepo(coll *mongo.Collection) *MongoReviewRepo {
	return &MongoReviewRepo{coll: coll}
}

func (r *MongoReviewRepo) ListApproved(ctx context.Context, limit int64) ([]models.Review, error) {
	if limit <= 0 {
		limit = 10
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{"is_approved": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *MongoReviewRepo) Insert(ctx context.Context, review models.Review) error {
	_, err := r.coll.InsertOne(ctx, review)
	return err
}

func (r *MongoReviewRepo) Approve(ctx context.Context, reviewID string) error {
	result, err := r.coll.UpdateOne(ctx,
		bson.M{"review_id": reviewID},
		bson.M{"$set": bson.M{"is_approved": true}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoReviewRepo) DeleteAll(ctx context.Context) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{})
	return err
}

func (r *MongoReviewRepo) InsertMany(ctx context.Context, reviews []models.Review) error {
	docs := make([]interface{}, 0, len(reviews))
	for _, review := range reviews {
		docs = append(docs, review)
	}
	_, err := r.coll.InsertMany(ctx, docs)
	return err
}
