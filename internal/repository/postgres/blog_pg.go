// internal/repository/postgres/blog_pg.go
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"birthday-blog/internal/domain"
	"birthday-blog/internal/util"
)

// BlogRepository implements repository.BlogRepository for PostgreSQL.
type BlogRepository struct {
	pool *sqlx.DB
}

// List returns all blog posts sorted by creation time, newest first.
func (r *BlogRepository) List(ctx context.Context) ([]domain.BlogPost, error) {
	posts := []domain.BlogPost{}
	query := `SELECT id, title, content, created_at, updated_at FROM blogs ORDER BY created_at DESC`
	if err := r.pool.SelectContext(ctx, &posts, query); err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", MapError(err))
	}
	return posts, nil
}

// Create inserts a new blog post with a store-assigned identifier.
func (r *BlogRepository) Create(ctx context.Context, title, content string) (*domain.BlogPost, error) {
	post := domain.NewBlogPost(title, content)
	post.ID = uuid.NewString()

	query := `INSERT INTO blogs (id, title, content, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.pool.ExecContext(ctx, query,
		post.ID, post.Title, post.Content, post.CreatedAt, post.UpdatedAt); err != nil {
		return nil, fmt.Errorf("failed to create blog: %w", MapError(err))
	}
	return post, nil
}

// Update applies title and content and refreshes the updated timestamp.
func (r *BlogRepository) Update(ctx context.Context, id, title, content string) error {
	postID, err := parseID(id)
	if err != nil {
		return err
	}

	query := `UPDATE blogs SET title = $1, content = $2, updated_at = $3 WHERE id = $4`
	res, err := r.pool.ExecContext(ctx, query, title, content, time.Now().UTC(), postID)
	if err != nil {
		return fmt.Errorf("failed to update blog %s: %w", id, MapError(err))
	}
	return checkRowsAffected(res, "blog")
}

// Delete physically removes the post with the given id.
func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	postID, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := r.pool.ExecContext(ctx, `DELETE FROM blogs WHERE id = $1`, postID)
	if err != nil {
		return fmt.Errorf("failed to delete blog %s: %w", id, MapError(err))
	}
	return checkRowsAffected(res, "blog")
}

// parseID validates a client-supplied identifier. A malformed identifier is a
// validation failure, distinct from a missing row.
func parseID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w: malformed identifier %q", util.ErrInvalidInput, id)
	}
	return parsed.String(), nil
}
