// internal/service/blog_service.go
package service

import (
	"context"
	"strings"

	"birthday-blog/internal/domain"
	"birthday-blog/internal/repository"
	"birthday-blog/internal/util"
)

// BlogService defines the interface for blog-related business logic.
// Each method receives the repository bound to the invocation's acquired
// connection handle, so the service itself carries no connection state.
type BlogService interface {
	List(ctx context.Context, blogs repository.BlogRepository) ([]domain.BlogPost, error)
	Create(ctx context.Context, blogs repository.BlogRepository, title, content string) (*domain.BlogPost, error)
	Update(ctx context.Context, blogs repository.BlogRepository, id, title, content string) error
	Delete(ctx context.Context, blogs repository.BlogRepository, id string) error
}

// blogService implements the BlogService interface.
type blogService struct{}

// NewBlogService creates a new instance of BlogService.
func NewBlogService() BlogService {
	return &blogService{}
}

// List returns all blog posts, newest first. Never returns a nil slice.
func (s *blogService) List(ctx context.Context, blogs repository.BlogRepository) ([]domain.BlogPost, error) {
	posts, err := blogs.List(ctx)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []domain.BlogPost{}
	}
	return posts, nil
}

// Create inserts a new blog post after checking the required fields.
func (s *blogService) Create(ctx context.Context, blogs repository.BlogRepository, title, content string) (*domain.BlogPost, error) {
	if fields := blankFields(map[string]string{"title": title, "content": content}); len(fields) > 0 {
		return nil, util.NewValidationError(fields...)
	}
	return blogs.Create(ctx, title, content)
}

// Update mutates title and content of an existing post.
func (s *blogService) Update(ctx context.Context, blogs repository.BlogRepository, id, title, content string) error {
	if fields := blankFields(map[string]string{"id": id, "title": title, "content": content}); len(fields) > 0 {
		return util.NewValidationError(fields...)
	}
	return blogs.Update(ctx, id, title, content)
}

// Delete removes an existing post.
func (s *blogService) Delete(ctx context.Context, blogs repository.BlogRepository, id string) error {
	if strings.TrimSpace(id) == "" {
		return util.NewValidationError("id")
	}
	return blogs.Delete(ctx, id)
}

// blankFields returns the names of fields whose values are blank, in a
// stable order for predictable error messages.
func blankFields(fields map[string]string) []string {
	order := []string{"id", "username", "password", "newPassword", "title", "content"}
	var missing []string
	for _, name := range order {
		value, ok := fields[name]
		if ok && strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}
