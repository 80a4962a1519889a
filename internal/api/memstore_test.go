// internal/api/memstore_test.go
package api_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	router "birthday-blog/internal/api"
	"birthday-blog/internal/api/handler"
	"birthday-blog/internal/domain"
	"birthday-blog/internal/repository"
	"birthday-blog/internal/service"
	"birthday-blog/internal/util"
)

// memStore is an in-memory repository.Store used to exercise the full HTTP
// pipeline without a backend. It honors the same contract as the real
// drivers: sorted lists, store-assigned ids, sentinel errors.
type memStore struct {
	blogs *memBlogRepo
	users *memUserRepo
}

func newMemStore() *memStore {
	return &memStore{
		blogs: &memBlogRepo{now: func() time.Time { return time.Now().UTC() }},
		users: &memUserRepo{byName: make(map[string]domain.User)},
	}
}

func (s *memStore) Blogs() repository.BlogRepository { return s.blogs }
func (s *memStore) Users() repository.UserRepository { return s.users }
func (s *memStore) Close(ctx context.Context) error  { return nil }

type memBlogRepo struct {
	mu    sync.Mutex
	posts []domain.BlogPost
	seq   int
	now   func() time.Time // injectable so ordering tests can scramble creation times
}

func (r *memBlogRepo) List(ctx context.Context) ([]domain.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.BlogPost, len(r.posts))
	copy(out, r.posts)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *memBlogRepo) Create(ctx context.Context, title, content string) (*domain.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.seq++
	post := domain.BlogPost{
		ID:        fmt.Sprintf("%024x", r.seq),
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.posts = append(r.posts, post)
	return &post, nil
}

func (r *memBlogRepo) Update(ctx context.Context, id, title, content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.posts {
		if r.posts[i].ID == id {
			r.posts[i].Title = title
			r.posts[i].Content = content
			r.posts[i].UpdatedAt = r.now()
			return nil
		}
	}
	return util.ErrNotFound
}

func (r *memBlogRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.posts {
		if r.posts[i].ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return nil
		}
	}
	return util.ErrNotFound
}

type memUserRepo struct {
	mu     sync.Mutex
	byName map[string]domain.User
}

func (r *memUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byName[username]
	if !ok {
		return nil, util.ErrNotFound
	}
	return &user, nil
}

func (r *memUserRepo) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[user.Username]; ok {
		return util.ErrDuplicateEntry
	}
	user.ID = fmt.Sprintf("%024x", len(r.byName)+1)
	r.byName[user.Username] = *user
	return nil
}

func (r *memUserRepo) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byName[username]
	if !ok {
		return util.ErrNotFound
	}
	user.PasswordHash = passwordHash
	user.UpdatedAt = time.Now().UTC()
	r.byName[username] = user
	return nil
}

func (r *memUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byName)
}

// countingConnector tracks dials and live stores, so tests can assert both
// the pooling bound and that preflights never touch storage.
type countingConnector struct {
	mu      sync.Mutex
	data    *memStore
	dials   int
	open    int
	maxOpen int
}

func (c *countingConnector) Connect(ctx context.Context) (repository.Store, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dials++
	c.open++
	if c.open > c.maxOpen {
		c.maxOpen = c.open
	}
	return &countedStore{memStore: c.data, conn: c}, nil
}

func (c *countingConnector) stats() (dials, open, maxOpen int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dials, c.open, c.maxOpen
}

type countedStore struct {
	*memStore
	conn *countingConnector
}

func (s *countedStore) Close(ctx context.Context) error {
	s.conn.mu.Lock()
	defer s.conn.mu.Unlock()
	s.conn.open--
	return nil
}

// newTestServer wires the real manager, services, handlers and router over
// the in-memory store, mirroring Application.Initialize.
func newTestServer(t *testing.T, policy repository.ReleasePolicy, poolSize int) (*httptest.Server, *countingConnector) {
	t.Helper()

	conn := &countingConnector{data: newMemStore()}
	manager := repository.NewManager(conn, policy, poolSize)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	blogHandler := handler.NewBlogHandler(manager, service.NewBlogService(), logger)
	userHandler := handler.NewUserHandler(manager, service.NewUserService(), logger)
	server := httptest.NewServer(router.NewRouter(blogHandler, userHandler, logger))

	t.Cleanup(func() {
		server.Close()
		_ = manager.Shutdown(context.Background())
	})
	return server, conn
}

// newUnconfiguredServer builds a server whose manager has no store location,
// as when the environment variable is absent.
func newUnconfiguredServer(t *testing.T) *httptest.Server {
	t.Helper()

	manager := repository.NewManager(nil, repository.PolicyPooled, 4)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	blogHandler := handler.NewBlogHandler(manager, service.NewBlogService(), logger)
	userHandler := handler.NewUserHandler(manager, service.NewUserService(), logger)
	server := httptest.NewServer(router.NewRouter(blogHandler, userHandler, logger))

	t.Cleanup(server.Close)
	return server
}
