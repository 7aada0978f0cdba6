// Package repository provides the document-store implementation of the user
// record store.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	apperrors "github.com/allisson/vidshare/internal/errors"
	"github.com/allisson/vidshare/internal/identity/domain"
)

// userCollection is the collection holding account records.
const userCollection = "users"

// MongoUserRepository implements usecase.UserRepository on a Mongo
// collection keyed by lowercase email. Identifier uniqueness comes from the
// store's primary key, not application-level locking.
type MongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a user repository on the given database.
func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{collection: db.Collection(userCollection)}
}

// GetByEmail returns the record for an identifier, or a not-found domain error.
func (r *MongoUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.collection.FindOne(ctx, bson.M{"_id": email}).Decode(&user)
	if err != nil {
		if apperrors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user")
	}
	return &user, nil
}

// Create inserts a new record, mapping a duplicate identifier to a conflict.
func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) error {
	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailAlreadyRegistered
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// Replace overwrites an existing record.
func (r *MongoUserRepository) Replace(ctx context.Context, user *domain.User) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": user.Email}, user)
	if err != nil {
		return apperrors.Wrap(err, "failed to replace user")
	}
	if result.MatchedCount == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}
