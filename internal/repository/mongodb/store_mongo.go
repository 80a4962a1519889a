// internal/repository/mongodb/store_mongo.go
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"birthday-blog/internal/repository"
	"birthday-blog/pkg/db"
)

const (
	blogsCollection = "blogs"
	usersCollection = "users"
)

// Store implements repository.Store for MongoDB.
type Store struct {
	client *mongo.Client
	blogs  *BlogRepository
	users  *UserRepository
}

// NewStore creates a Store over an established MongoDB client.
func NewStore(client *mongo.Client, database string) *Store {
	database = nonEmpty(database, "birthday_blog")
	dbHandle := client.Database(database)
	return &Store{
		client: client,
		blogs:  &BlogRepository{coll: dbHandle.Collection(blogsCollection)},
		users:  &UserRepository{coll: dbHandle.Collection(usersCollection)},
	}
}

// Blogs returns the blog repository bound to this store's client.
func (s *Store) Blogs() repository.BlogRepository { return s.blogs }

// Users returns the user repository bound to this store's client.
func (s *Store) Users() repository.UserRepository { return s.users }

// Close disconnects the client, returning its pooled connections.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Init ensures the unique username index exists, so the duplicate-username
// conflict is enforced by the store and not only by the defensive pre-check.
func (s *Store) Init(ctx context.Context) error {
	_, err := s.users.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to ensure username index: %w", err)
	}
	return nil
}

// Connector implements repository.Connector for MongoDB.
type Connector struct {
	cfg db.Config
}

// NewConnector creates a Connector for the given backend configuration.
func NewConnector(cfg db.Config) *Connector {
	return &Connector{cfg: cfg}
}

// Connect dials MongoDB, verifies the connection and ensures indexes.
func (c *Connector) Connect(ctx context.Context) (repository.Store, error) {
	client, err := db.NewMongoClient(ctx, c.cfg)
	if err != nil {
		return nil, MapError(err)
	}
	store := NewStore(client, c.cfg.Database)
	if err := store.Init(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, MapError(err)
	}
	return store, nil
}

func nonEmpty(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
