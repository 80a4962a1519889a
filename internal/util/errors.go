// internal/util/errors.go
package util

import (
	"errors"
	"fmt"
	"strings"
)

// Common application-specific errors. Storage backends translate their raw
// driver errors into these sentinels at the repository boundary, so the HTTP
// layer can map them to status codes without knowing which backend is in use.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input provided")
	ErrDuplicateEntry     = errors.New("duplicate entry") // e.g. registering an existing username
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Connection lifecycle errors.
	ErrStoreConfigMissing = errors.New("store location is not configured")
	ErrManagerClosed      = errors.New("connection manager is shut down")

	// Connectivity errors, sub-classified so callers can tell a timeout from
	// a DNS failure from a plain network fault.
	ErrConnTimeout = errors.New("store connection timed out")
	ErrDNSFailure  = errors.New("store DNS resolution failed")
	ErrNetwork     = errors.New("store network failure")
)

// ValidationError reports which request fields were missing or malformed.
type ValidationError struct {
	Fields []string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing or invalid fields: %s", strings.Join(e.Fields, ", "))
}

// NewValidationError creates a ValidationError for the given field names.
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// IsError checks whether err matches the given sentinel via errors.Is.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
