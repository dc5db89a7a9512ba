// Package images implements the gallery image repository: CRUD over image
// records and upload/removal of image files in blob storage.
//
// System returns classified errors (see KindOf). Gallery wraps a System and
// converts every failure into a logged default result for callers that only
// need to know whether an operation produced a value.
package images

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/JaimeStill/gallery/internal/storage"
	"github.com/JaimeStill/gallery/pkg/repository"
	"github.com/jackc/pgx/v5/pgconn"
)

// Domain errors for image operations.
var (
	ErrNotFound    = errors.New("image not found")
	ErrConflict    = errors.New("image already exists")
	ErrUnavailable = errors.New("backend unavailable")
	ErrInvalidURL  = errors.New("no storage key in url")
)

// Kind classifies an operation failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindConflict
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// KindOf reports the kind of err. Nil and unclassified errors are KindUnknown.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrUnavailable):
		return KindUnavailable
	default:
		return KindUnknown
	}
}

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidURL), errors.Is(err, storage.ErrInvalidKey):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// classify wraps err with the domain error matching its cause, keeping the
// original error in the chain for logging.
func classify(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, storage.ErrConflict):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	case unavailable(err):
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	switch mapped := repository.MapError(err, ErrNotFound, ErrConflict); mapped {
	case ErrNotFound, ErrConflict:
		return fmt.Errorf("%w: %w", mapped, err)
	}

	return err
}

func unavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, driver.ErrBadConn) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	if pgconn.Timeout(err) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
