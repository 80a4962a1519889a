// internal/repository/mongodb/blog_mongo.go
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"birthday-blog/internal/domain"
	"birthday-blog/internal/util"
)

// blogDoc is the persisted shape of a blog post. The _id is an ObjectID in
// the store and exposed to the API as its hex form.
type blogDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Content   string             `bson:"content"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d blogDoc) toDomain() domain.BlogPost {
	return domain.BlogPost{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Content:   d.Content,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// BlogRepository implements repository.BlogRepository for MongoDB.
type BlogRepository struct {
	coll *mongo.Collection
}

// List returns all blog posts sorted by creation time, newest first.
func (r *BlogRepository) List(ctx context.Context) ([]domain.BlogPost, error) {
	cur, err := r.coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", MapError(err))
	}
	defer cur.Close(ctx)

	var docs []blogDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode blogs: %w", MapError(err))
	}

	posts := make([]domain.BlogPost, 0, len(docs))
	for _, d := range docs {
		posts = append(posts, d.toDomain())
	}
	return posts, nil
}

// Create inserts a new blog post with a store-assigned identifier.
func (r *BlogRepository) Create(ctx context.Context, title, content string) (*domain.BlogPost, error) {
	post := domain.NewBlogPost(title, content)
	doc := blogDoc{
		Title:     post.Title,
		Content:   post.Content,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to create blog: %w", MapError(err))
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	post.ID = oid.Hex()
	return post, nil
}

// Update applies title and content and refreshes the updated timestamp.
func (r *BlogRepository) Update(ctx context.Context, id, title, content string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"title":     title,
			"content":   content,
			"updatedAt": time.Now().UTC(),
		}})
	if err != nil {
		return fmt.Errorf("failed to update blog %s: %w", id, MapError(err))
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: blog", util.ErrNotFound)
	}
	return nil
}

// Delete physically removes the post with the given id.
func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete blog %s: %w", id, MapError(err))
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: blog", util.ErrNotFound)
	}
	return nil
}

// parseObjectID validates a client-supplied identifier. A malformed
// identifier is a validation failure, distinct from a missing document.
func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: malformed identifier %q", util.ErrInvalidInput, id)
	}
	return oid, nil
}
