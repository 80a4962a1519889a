// internal/api/handler/errors.go
package handler

import (
	"context"
	"errors"
	"net"
	"net/http"

	"birthday-blog/internal/util"
)

// Classify maps any failure surfacing from the connection manager, the
// storage layer, or the services into a (status, message, detail) triple.
// This is the single place where the error taxonomy becomes HTTP; no other
// component invents its own status codes.
func Classify(err error) (status int, message string, detail string) {
	var validationErr *util.ValidationError

	switch {
	case err == nil:
		return http.StatusOK, "", ""

	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Error(), ""

	case errors.Is(err, util.ErrInvalidInput):
		return http.StatusBadRequest, err.Error(), ""

	case errors.Is(err, util.ErrNotFound):
		return http.StatusNotFound, "Resource not found", ""

	case errors.Is(err, util.ErrDuplicateEntry):
		return http.StatusBadRequest, "Username already exists", ""

	case errors.Is(err, util.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid username or password", ""

	case errors.Is(err, util.ErrStoreConfigMissing):
		return http.StatusInternalServerError,
			"Database connection error: store location is not configured",
			"Missing store URI configuration"

	case errors.Is(err, util.ErrManagerClosed):
		return http.StatusInternalServerError,
			"Database connection error: connection manager is shut down", ""

	case errors.Is(err, util.ErrDNSFailure), isDNSFailure(err):
		return http.StatusInternalServerError,
			"Database connection error: DNS resolution failed",
			err.Error()

	case errors.Is(err, util.ErrConnTimeout), isTimeout(err):
		return http.StatusInternalServerError,
			"Database connection error: timed out connecting to the store",
			err.Error()

	case errors.Is(err, util.ErrNetwork), isNetworkFailure(err):
		return http.StatusInternalServerError,
			"Database network error",
			err.Error()

	default:
		// Unclassified: generic message, original cause attached for
		// diagnostics only.
		return http.StatusInternalServerError, "Internal server error", err.Error()
	}
}

// The storage backends map most driver errors to taxonomy sentinels at the
// repository boundary; the checks below catch raw dial errors that escape
// that mapping, e.g. from a backend added later.

func isDNSFailure(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isNetworkFailure(err error) bool {
	var opErr *net.OpError
	return errors.As(err, &opErr)
}
