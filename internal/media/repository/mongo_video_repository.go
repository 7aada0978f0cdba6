// Package repository provides the document-store implementation of the media
// stores.
package repository

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	apperrors "github.com/allisson/vidshare/internal/errors"
	"github.com/allisson/vidshare/internal/media/domain"
)

// videoCollection is the collection holding video metadata documents.
const videoCollection = "videos"

// MongoVideoRepository implements usecase.VideoRepository on a Mongo
// collection.
type MongoVideoRepository struct {
	collection *mongo.Collection
}

// NewMongoVideoRepository creates a video repository on the given database.
func NewMongoVideoRepository(db *mongo.Database) *MongoVideoRepository {
	return &MongoVideoRepository{collection: db.Collection(videoCollection)}
}

// Create inserts a new video document.
func (r *MongoVideoRepository) Create(ctx context.Context, video *domain.Video) error {
	if _, err := r.collection.InsertOne(ctx, video); err != nil {
		return apperrors.Wrap(err, "failed to create video")
	}
	return nil
}

// GetByID returns one document, or a not-found domain error.
func (r *MongoVideoRepository) GetByID(ctx context.Context, id string) (*domain.Video, error) {
	var video domain.Video
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&video)
	if err != nil {
		if apperrors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrVideoNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get video")
	}
	return &video, nil
}

// List returns the newest documents first. A non-empty query matches title,
// publisher or genre case-insensitively.
func (r *MongoVideoRepository) List(ctx context.Context, query string, limit int) ([]*domain.Video, error) {
	filter := bson.M{}
	if query != "" {
		pattern := bson.M{"$regex": regexp.QuoteMeta(query), "$options": "i"}
		filter = bson.M{"$or": []bson.M{
			{"title": pattern},
			{"publisher": pattern},
			{"genre": pattern},
		}}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list videos")
	}
	defer cursor.Close(ctx)

	videos := []*domain.Video{}
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, apperrors.Wrap(err, "failed to decode videos")
	}
	return videos, nil
}
