package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	apperrors "github.com/allisson/vidshare/internal/errors"
	"github.com/allisson/vidshare/internal/media/domain"
)

// ratingCollection is the collection holding rating documents.
const ratingCollection = "ratings"

// MongoRatingRepository implements usecase.RatingRepository on a Mongo
// collection.
type MongoRatingRepository struct {
	collection *mongo.Collection
}

// NewMongoRatingRepository creates a rating repository on the given database.
func NewMongoRatingRepository(db *mongo.Database) *MongoRatingRepository {
	return &MongoRatingRepository{collection: db.Collection(ratingCollection)}
}

// Create inserts a new rating document.
func (r *MongoRatingRepository) Create(ctx context.Context, rating *domain.Rating) error {
	if _, err := r.collection.InsertOne(ctx, rating); err != nil {
		return apperrors.Wrap(err, "failed to create rating")
	}
	return nil
}

// ListByVideo returns a video's ratings, newest first.
func (r *MongoRatingRepository) ListByVideo(ctx context.Context, videoID string, limit int) ([]*domain.Rating, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{"videoId": videoID}, opts)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list ratings")
	}
	defer cursor.Close(ctx)

	ratings := []*domain.Rating{}
	if err := cursor.All(ctx, &ratings); err != nil {
		return nil, apperrors.Wrap(err, "failed to decode ratings")
	}
	return ratings, nil
}
