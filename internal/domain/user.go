// internal/domain/user.go
package domain

import "time"

// User represents a registered user of the blog.
type User struct {
	ID           string    `db:"id" json:"_id"`               // assigned by the store, immutable
	Username     string    `db:"username" json:"username"`    // unique across all users
	PasswordHash string    `db:"password_hash" json:"-"`      // bcrypt hash, never serialized
	CreatedAt    time.Time `db:"created_at" json:"createdAt"` // set once at creation
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"` // refreshed on password reset
}

// NewUser creates a new User instance with both timestamps set to now.
// The caller provides the already-hashed password; plaintext never reaches
// the domain or storage layers.
func NewUser(username, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
