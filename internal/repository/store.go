// internal/repository/store.go
package repository

import "context"

// Store bundles the repositories bound to one established backend connection
// (or connection pool). A Store is obtained through the Manager, never
// constructed directly by handlers.
type Store interface {
	Blogs() BlogRepository
	Users() UserRepository
	// Close tears down the underlying connection(s). After Close the Store
	// must never be used again.
	Close(ctx context.Context) error
}

// Connector dials a storage backend and returns a ready Store. Implementations
// verify connectivity (ping) and bootstrap any required schema before
// returning, so an acquired handle is usable immediately.
type Connector interface {
	Connect(ctx context.Context) (Store, error)
}
