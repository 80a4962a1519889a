// internal/repository/manager.go
package repository

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"birthday-blog/internal/util"
)

// ReleasePolicy controls what Release does with a handle's connection.
type ReleasePolicy string

const (
	// PolicyPooled keeps one shared connection pool alive across invocations;
	// Release only returns the checkout permit.
	PolicyPooled ReleasePolicy = "pooled"
	// PolicyPerRequest dials a fresh connection per Acquire and closes it on
	// Release. Total live connections stay bounded by the manager's pool size.
	PolicyPerRequest ReleasePolicy = "per-request"
)

// ParseReleasePolicy validates a configured policy string.
func ParseReleasePolicy(s string) (ReleasePolicy, error) {
	switch ReleasePolicy(s) {
	case PolicyPooled, PolicyPerRequest:
		return ReleasePolicy(s), nil
	default:
		return "", fmt.Errorf("unknown release policy %q", s)
	}
}

// closeTimeout bounds connection teardown on release and shutdown paths,
// which run outside any request context.
const closeTimeout = 5 * time.Second

// Handle represents a ready, usable connection to the storage backend,
// checked out for the duration of one invocation.
type Handle struct {
	store      Store
	perRequest bool
	released   atomic.Bool
}

// Blogs returns the blog repository bound to this handle's connection.
func (h *Handle) Blogs() BlogRepository { return h.store.Blogs() }

// Users returns the user repository bound to this handle's connection.
func (h *Handle) Users() UserRepository { return h.store.Users() }

// Manager owns the lifecycle of backend connections across repeated,
// possibly-concurrent invocations: creation, reuse, and teardown. It is the
// only shared mutable resource in the request pipeline and serializes its own
// bookkeeping internally.
type Manager struct {
	connector Connector
	policy    ReleasePolicy
	sem       chan struct{} // bounds concurrent checkouts to the pool size

	mu     sync.Mutex
	shared Store // pooled policy: established lazily, reused until Shutdown
	closed bool
}

// NewManager creates a Manager handing out at most poolSize concurrent
// handles. A nil connector means no store location was configured; every
// Acquire then fails fast with util.ErrStoreConfigMissing before any
// network I/O.
func NewManager(connector Connector, policy ReleasePolicy, poolSize int) *Manager {
	if poolSize < 1 {
		poolSize = 1
	}
	return &Manager{
		connector: connector,
		policy:    policy,
		sem:       make(chan struct{}, poolSize),
	}
}

// Acquire returns a ready handle bound to an established connection. It may
// block while a connection is established or while all permits are checked
// out; ctx cancellation aborts the wait.
func (m *Manager) Acquire(ctx context.Context) (*Handle, error) {
	if m.connector == nil {
		return nil, util.ErrStoreConfigMissing
	}

	select {
	case m.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if m.policy == PolicyPerRequest {
		m.mu.Lock()
		closed := m.closed
		m.mu.Unlock()
		if closed {
			<-m.sem
			return nil, util.ErrManagerClosed
		}
		st, err := m.connector.Connect(ctx)
		if err != nil {
			<-m.sem
			return nil, err
		}
		return &Handle{store: st, perRequest: true}, nil
	}

	st, err := m.sharedStore(ctx)
	if err != nil {
		<-m.sem
		return nil, err
	}
	return &Handle{store: st}, nil
}

// sharedStore returns the pooled Store, establishing it on first use.
// A connection is only ever reused while the manager holds it open; once
// Shutdown has closed it, no later invocation can see it again.
func (m *Manager) sharedStore(ctx context.Context) (Store, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, util.ErrManagerClosed
	}
	if m.shared != nil {
		return m.shared, nil
	}

	st, err := m.connector.Connect(ctx)
	if err != nil {
		return nil, err
	}
	m.shared = st
	return st, nil
}

// Release returns a handle after an invocation, success or failure. It must
// be called exactly once per successful Acquire; extra calls are no-ops.
func (m *Manager) Release(h *Handle) {
	if h == nil || !h.released.CompareAndSwap(false, true) {
		return
	}
	if h.perRequest && h.store != nil {
		ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		_ = h.store.Close(ctx)
	}
	<-m.sem
}

// Shutdown closes all held connections. Used at process teardown only;
// subsequent Acquires fail with util.ErrManagerClosed.
func (m *Manager) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true

	if m.shared != nil {
		st := m.shared
		m.shared = nil
		if err := st.Close(ctx); err != nil {
			return fmt.Errorf("failed to close shared store: %w", err)
		}
	}
	return nil
}
