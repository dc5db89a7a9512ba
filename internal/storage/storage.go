package storage

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/JaimeStill/gallery/internal/config"
	"github.com/JaimeStill/gallery/internal/lifecycle"
)

// UploadOptions carries object metadata stored alongside the file.
type UploadOptions struct {
	ContentType  string
	CacheControl string
}

// System defines the blob storage operations used by the image repository.
type System interface {
	// Upload stores data at key. It never overwrites: if the key already
	// exists it returns ErrConflict and leaves the existing object intact.
	Upload(ctx context.Context, key string, data []byte, opts UploadOptions) error

	// PublicURL returns the publicly reachable URL for key. It performs no I/O
	// and does not check that the key exists.
	PublicURL(key string) string

	// Remove deletes the object at key.
	// Returns nil if the key does not exist (idempotent).
	Remove(ctx context.Context, key string) error

	// Start registers lifecycle hooks with the coordinator.
	Start(lc *lifecycle.Coordinator) error
}

// New creates the storage system selected by cfg.Provider. The backend key is
// the secret half of the S3 credential pair.
func New(ctx context.Context, cfg *config.StorageConfig, backend *config.BackendConfig, logger *slog.Logger) (System, error) {
	switch cfg.Provider {
	case config.StorageProviderS3:
		return NewS3(ctx, cfg, backend.Key, logger)
	case config.StorageProviderFilesystem:
		return NewFilesystem(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown storage provider: %s", cfg.Provider)
	}
}

// ValidateKey reports ErrInvalidKey for keys that cannot name a single stored
// object: empty keys, "." and "..", and keys containing a path separator.
func ValidateKey(key string) error {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return ErrInvalidKey
	}
	return nil
}

func publicURL(base, key string) string {
	return base + "/" + url.PathEscape(key)
}
