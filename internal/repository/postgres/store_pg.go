// internal/repository/postgres/store_pg.go
package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"birthday-blog/internal/repository"
	"birthday-blog/pkg/db"
)

// schema is bootstrapped on connect. Migration tooling is deliberately out of
// scope; the two tables never change shape within this API.
const schema = `
CREATE TABLE IF NOT EXISTS blogs (
	id UUID PRIMARY KEY,
	title TEXT NOT NULL,
	content TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
`

// Store implements repository.Store for PostgreSQL.
type Store struct {
	pool  *sqlx.DB
	blogs *BlogRepository
	users *UserRepository
}

// NewStore creates a Store over an established sqlx pool.
func NewStore(pool *sqlx.DB) *Store {
	return &Store{
		pool:  pool,
		blogs: &BlogRepository{pool: pool},
		users: &UserRepository{pool: pool},
	}
}

// Blogs returns the blog repository bound to this store's pool.
func (s *Store) Blogs() repository.BlogRepository { return s.blogs }

// Users returns the user repository bound to this store's pool.
func (s *Store) Users() repository.UserRepository { return s.users }

// Close tears down the connection pool.
func (s *Store) Close(ctx context.Context) error {
	return s.pool.Close()
}

// Init creates the tables if they do not exist yet.
func (s *Store) Init(ctx context.Context) error {
	if _, err := s.pool.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to bootstrap schema: %w", err)
	}
	return nil
}

// Connector implements repository.Connector for PostgreSQL.
type Connector struct {
	cfg db.Config
}

// NewConnector creates a Connector for the given backend configuration.
func NewConnector(cfg db.Config) *Connector {
	return &Connector{cfg: cfg}
}

// Connect dials PostgreSQL, verifies the connection and bootstraps the schema.
func (c *Connector) Connect(ctx context.Context) (repository.Store, error) {
	pool, err := db.NewPostgresDB(ctx, c.cfg)
	if err != nil {
		return nil, MapError(err)
	}
	store := NewStore(pool)
	if err := store.Init(ctx); err != nil {
		_ = pool.Close()
		return nil, MapError(err)
	}
	return store, nil
}
