// internal/service/user_service.go
package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"birthday-blog/internal/domain"
	"birthday-blog/internal/repository"
	"birthday-blog/internal/util"
)

// UserService defines the interface for user-related business logic.
type UserService interface {
	Register(ctx context.Context, users repository.UserRepository, username, password string) (*domain.User, error)
	Login(ctx context.Context, users repository.UserRepository, username, password string) (*domain.User, error)
	ResetPassword(ctx context.Context, users repository.UserRepository, username, newPassword string) error
	CheckUsername(ctx context.Context, users repository.UserRepository, username string) (bool, error)
}

// userService implements the UserService interface. Passwords are stored as
// bcrypt hashes; the API contract is unchanged but credentials never persist
// in plaintext.
type userService struct{}

// NewUserService creates a new instance of UserService.
func NewUserService() UserService {
	return &userService{}
}

// Register creates a new user. The username is checked defensively before the
// insert so the common case returns a clean conflict; a concurrent registration
// that slips past the check still surfaces as util.ErrDuplicateEntry via the
// store's own unique constraint.
func (s *userService) Register(ctx context.Context, users repository.UserRepository, username, password string) (*domain.User, error) {
	if fields := blankFields(map[string]string{"username": username, "password": password}); len(fields) > 0 {
		return nil, util.NewValidationError(fields...)
	}

	if _, err := users.GetByUsername(ctx, username); err == nil {
		return nil, fmt.Errorf("%w: username %q", util.ErrDuplicateEntry, username)
	} else if !util.IsError(err, util.ErrNotFound) {
		return nil, err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	user := domain.NewUser(username, hash)
	if err := users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the given credentials. An unknown username and a wrong
// password both return util.ErrInvalidCredentials, so responses do not reveal
// which usernames exist.
func (s *userService) Login(ctx context.Context, users repository.UserRepository, username, password string) (*domain.User, error) {
	if fields := blankFields(map[string]string{"username": username, "password": password}); len(fields) > 0 {
		return nil, util.NewValidationError(fields...)
	}

	user, err := users.GetByUsername(ctx, username)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, util.ErrInvalidCredentials
	}
	return user, nil
}

// ResetPassword replaces an existing user's password.
func (s *userService) ResetPassword(ctx context.Context, users repository.UserRepository, username, newPassword string) error {
	if fields := blankFields(map[string]string{"username": username, "newPassword": newPassword}); len(fields) > 0 {
		return util.NewValidationError(fields...)
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	return users.UpdatePassword(ctx, username, hash)
}

// CheckUsername reports whether a username is already taken. Absence is a
// normal outcome here, never an error.
func (s *userService) CheckUsername(ctx context.Context, users repository.UserRepository, username string) (bool, error) {
	if username == "" {
		return false, util.NewValidationError("username")
	}

	if _, err := users.GetByUsername(ctx, username); err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
