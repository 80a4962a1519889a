// internal/repository/mongodb/errors.go
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"net"

	"go.mongodb.org/mongo-driver/mongo"

	"birthday-blog/internal/util"
)

// MapError translates a raw MongoDB/driver error into the application error
// taxonomy, preserving the original error as wrapped context. Errors with no
// specific mapping are returned unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%w: %v", util.ErrNotFound, err)
	}
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", util.ErrDuplicateEntry, err)
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return fmt.Errorf("%w: %v", util.ErrDNSFailure, err)
	}

	if mongo.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", util.ErrConnTimeout, err)
	}
	if mongo.IsNetworkError(err) {
		return fmt.Errorf("%w: %v", util.ErrNetwork, err)
	}

	return err
}
