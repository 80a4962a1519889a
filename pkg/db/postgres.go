// pkg/db/postgres.go
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver
)

// Config holds storage backend connection configuration.
// The same set of knobs is honored by both backends; the relational backend
// ignores Database (the URI carries it) and SelectTimeout.
type Config struct {
	URI            string        // store location, e.g. postgres://... or mongodb+srv://...
	Database       string        // logical database name (document backend only)
	PoolSize       int           // max number of live backend connections
	MinPoolSize    int           // connections kept warm between invocations
	MaxIdleTime    time.Duration // idle connection teardown threshold
	ConnectTimeout time.Duration // dial timeout
	SelectTimeout  time.Duration // server selection timeout (document backend only)
}

// NewPostgresDB opens a bounded PostgreSQL connection pool and verifies it
// with a ping. It uses sqlx for enhanced database operations.
func NewPostgresDB(ctx context.Context, cfg Config) (*sqlx.DB, error) {
	pool, err := sqlx.Open("postgres", cfg.URI)
	if err != nil {
		return nil, fmt.Errorf("failed to open PostgreSQL pool: %w", err)
	}

	// Bound the pool so repeated invocations never exceed the configured
	// number of live backend connections.
	pool.SetMaxOpenConns(cfg.PoolSize)
	pool.SetMaxIdleConns(cfg.PoolSize)
	pool.SetConnMaxIdleTime(cfg.MaxIdleTime)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := pool.PingContext(pingCtx); err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}

	return pool, nil
}
