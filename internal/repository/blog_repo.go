// internal/repository/blog_repo.go
package repository

import (
	"context"

	"birthday-blog/internal/domain"
)

// BlogRepository defines the interface for blog post data operations.
// Implementations translate backend-specific failures into the sentinels in
// internal/util before returning.
type BlogRepository interface {
	// List returns all blog posts sorted by creation time, newest first.
	// An empty store yields an empty slice, never an error.
	List(ctx context.Context) ([]domain.BlogPost, error)
	// Create inserts a new blog post, assigning its identifier and setting
	// both timestamps to the same creation instant.
	Create(ctx context.Context, title, content string) (*domain.BlogPost, error)
	// Update applies title and content to the post with the given id and
	// refreshes its updated timestamp. The identifier and creation timestamp
	// are never touched. Returns util.ErrNotFound if no such post exists and
	// util.ErrInvalidInput if id is not a well-formed identifier for the
	// backend in use.
	Update(ctx context.Context, id, title, content string) error
	// Delete physically removes the post with the given id. A second delete
	// of the same id returns util.ErrNotFound.
	Delete(ctx context.Context, id string) error
}
