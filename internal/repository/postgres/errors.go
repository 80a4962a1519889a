// internal/repository/postgres/errors.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"

	"github.com/lib/pq"

	"birthday-blog/internal/util"
)

// uniqueViolationCode is the PostgreSQL error code for unique constraint
// violations.
const uniqueViolationCode = "23505"

// MapError translates a raw PostgreSQL/driver error into the application
// error taxonomy, preserving the original error as wrapped context. Errors
// with no specific mapping are returned unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", util.ErrNotFound, err)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
		return fmt.Errorf("%w: %v", util.ErrDuplicateEntry, err)
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return fmt.Errorf("%w: %v", util.ErrDNSFailure, err)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", util.ErrConnTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return fmt.Errorf("%w: %v", util.ErrConnTimeout, err)
		}
		return fmt.Errorf("%w: %v", util.ErrNetwork, err)
	}

	return err
}

// checkRowsAffected turns a zero-row UPDATE/DELETE into util.ErrNotFound,
// which the dispatcher maps to a 404. This is a normal outcome, not a fault.
func checkRowsAffected(res sql.Result, entity string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", util.ErrNotFound, entity)
	}
	return nil
}
