package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	apperrors "github.com/allisson/vidshare/internal/errors"
	"github.com/allisson/vidshare/internal/media/domain"
)

// commentCollection is the collection holding comment documents.
const commentCollection = "comments"

// MongoCommentRepository implements usecase.CommentRepository on a Mongo
// collection.
type MongoCommentRepository struct {
	collection *mongo.Collection
}

// NewMongoCommentRepository creates a comment repository on the given
// database.
func NewMongoCommentRepository(db *mongo.Database) *MongoCommentRepository {
	return &MongoCommentRepository{collection: db.Collection(commentCollection)}
}

// Create inserts a new comment document.
func (r *MongoCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	if _, err := r.collection.InsertOne(ctx, comment); err != nil {
		return apperrors.Wrap(err, "failed to create comment")
	}
	return nil
}

// ListByVideo returns a video's comments, newest first.
func (r *MongoCommentRepository) ListByVideo(ctx context.Context, videoID string, limit int) ([]*domain.Comment, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{"videoId": videoID}, opts)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list comments")
	}
	defer cursor.Close(ctx)

	comments := []*domain.Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, apperrors.Wrap(err, "failed to decode comments")
	}
	return comments, nil
}
