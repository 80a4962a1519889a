// internal/repository/user_repo.go
package repository

import (
	"context"

	"birthday-blog/internal/domain"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// GetByUsername retrieves a user by username.
	// Returns util.ErrNotFound if no such user exists.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	// Create inserts a new user, assigning its identifier. A duplicate-key
	// failure from the store is reported as util.ErrDuplicateEntry so the
	// check-then-insert race collapses into the same conflict outcome.
	Create(ctx context.Context, user *domain.User) error
	// UpdatePassword replaces the stored password hash and refreshes the
	// updated timestamp. Returns util.ErrNotFound if the user is absent.
	UpdatePassword(ctx context.Context, username, passwordHash string) error
}
