package images_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/JaimeStill/gallery/internal/images"
	"github.com/JaimeStill/gallery/internal/storage"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want images.Kind
	}{
		{"nil", nil, images.KindUnknown},
		{"not found", fmt.Errorf("find: %w", images.ErrNotFound), images.KindNotFound},
		{"conflict", images.ErrConflict, images.KindConflict},
		{"unavailable", fmt.Errorf("%w: dial", images.ErrUnavailable), images.KindUnavailable},
		{"other", errors.New("boom"), images.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := images.KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{images.ErrInvalidURL, http.StatusBadRequest},
		{storage.ErrInvalidKey, http.StatusBadRequest},
		{images.ErrNotFound, http.StatusNotFound},
		{images.ErrConflict, http.StatusConflict},
		{images.ErrUnavailable, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			if got := images.MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("MapHTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

// Storage failures surface through the repository classified by kind, with
// the original error still in the chain.
func TestRepository_ClassifiesStorageErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want images.Kind
	}{
		{"conflict", storage.ErrConflict, images.KindConflict},
		{"not found", storage.ErrNotFound, images.KindNotFound},
		{"deadline", context.DeadlineExceeded, images.KindUnavailable},
		{"connect", &pgconn.ConnectError{Config: &pgconn.Config{}}, images.KindUnavailable},
		{"unique violation", &pgconn.PgError{Code: "23505"}, images.KindConflict},
		{"permission", storage.ErrPermissionDenied, images.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &recordingStorage{uploadErr: tt.err}
			sys := images.New(nil, store, nil, "max-age=3600", testLogger())

			_, err := sys.UploadFile(context.Background(), []byte("x"), "cat.png", "image/png")
			if err == nil {
				t.Fatal("UploadFile() succeeded, want error")
			}
			if got := images.KindOf(err); got != tt.want {
				t.Errorf("KindOf(UploadFile()) = %v, want %v (err: %v)", got, tt.want, err)
			}
			if !errors.Is(err, tt.err) {
				t.Errorf("UploadFile() error %v does not wrap %v", err, tt.err)
			}
		})
	}
}
