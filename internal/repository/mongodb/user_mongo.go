// internal/repository/mongodb/user_mongo.go
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"birthday-blog/internal/domain"
	"birthday-blog/internal/util"
)

// userDoc is the persisted shape of a user.
type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	PasswordHash string             `bson:"password"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

func (d userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:           d.ID.Hex(),
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// UserRepository implements repository.UserRepository for MongoDB.
type UserRepository struct {
	coll *mongo.Collection
}

// GetByUsername retrieves a user by their username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var doc userDoc
	err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %q: %w", username, MapError(err))
	}
	return doc.toDomain(), nil
}

// Create inserts a new user with a store-assigned identifier. A duplicate-key
// write on the unique username index surfaces as util.ErrDuplicateEntry.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	doc := userDoc{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to create user %q: %w", user.Username, MapError(err))
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid.Hex()
	}
	return nil
}

// UpdatePassword replaces the stored hash and refreshes the updated timestamp.
func (r *UserRepository) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"username": username},
		bson.M{"$set": bson.M{
			"password":  passwordHash,
			"updatedAt": time.Now().UTC(),
		}})
	if err != nil {
		return fmt.Errorf("failed to update password for %q: %w", username, MapError(err))
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: user", util.ErrNotFound)
	}
	return nil
}
