// internal/repository/postgres/user_pg.go
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"birthday-blog/internal/domain"
)

// UserRepository implements repository.UserRepository for PostgreSQL.
type UserRepository struct {
	pool *sqlx.DB
}

// GetByUsername retrieves a user by their username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	query := `SELECT id, username, password_hash, created_at, updated_at FROM users WHERE username = $1`
	if err := r.pool.GetContext(ctx, &user, query, username); err != nil {
		return nil, fmt.Errorf("failed to get user %q: %w", username, MapError(err))
	}
	return &user, nil
}

// Create inserts a new user with a store-assigned identifier. A unique
// constraint violation on username surfaces as util.ErrDuplicateEntry.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	user.ID = uuid.NewString()
	query := `INSERT INTO users (id, username, password_hash, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.pool.ExecContext(ctx, query,
		user.ID, user.Username, user.PasswordHash, user.CreatedAt, user.UpdatedAt); err != nil {
		return fmt.Errorf("failed to create user %q: %w", user.Username, MapError(err))
	}
	return nil
}

// UpdatePassword replaces the stored hash and refreshes the updated timestamp.
func (r *UserRepository) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	query := `UPDATE users SET password_hash = $1, updated_at = $2 WHERE username = $3`
	res, err := r.pool.ExecContext(ctx, query, passwordHash, time.Now().UTC(), username)
	if err != nil {
		return fmt.Errorf("failed to update password for %q: %w", username, MapError(err))
	}
	return checkRowsAffected(res, "user")
}
