package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/JaimeStill/gallery/internal/config"
	"github.com/JaimeStill/gallery/internal/lifecycle"
)

// Filesystem implements System using the local filesystem.
// Keys map to file names directly inside a base directory,
// and ServeHTTP exposes them for the URLs returned by PublicURL.
// No per-object metadata is persisted: Content-Type is derived from the file
// extension when serving and Cache-Control comes from configuration.
type Filesystem struct {
	basePath     string
	publicURL    string
	cacheControl string
	logger       *slog.Logger
}

// NewFilesystem creates a new filesystem storage system.
// The base path is resolved to an absolute path during construction.
// Directory creation is deferred to Start() for lifecycle integration.
func NewFilesystem(cfg *config.StorageConfig, logger *slog.Logger) (*Filesystem, error) {
	if cfg.BasePath == "" {
		return nil, fmt.Errorf("base_path required")
	}

	absPath, err := filepath.Abs(cfg.BasePath)
	if err != nil {
		return nil, fmt.Errorf("resolve base_path: %w", err)
	}

	return &Filesystem{
		basePath:     absPath,
		publicURL:    strings.TrimSuffix(cfg.PublicURL, "/"),
		cacheControl: cfg.CacheControl,
		logger:       logger.With("system", "storage", "provider", "filesystem"),
	}, nil
}

func (f *Filesystem) Start(lc *lifecycle.Coordinator) error {
	f.logger.Info("starting storage system", "base_path", f.basePath)

	lc.OnStartup(func() {
		if err := os.MkdirAll(f.basePath, 0755); err != nil {
			f.logger.Error("storage initialization failed", "error", err)
			return
		}
		f.logger.Info("storage directory initialized")
	})

	return nil
}

// Upload writes to a temporary file and hard-links it into place, so the
// final path appears atomically and an existing file is never replaced.
func (f *Filesystem) Upload(ctx context.Context, key string, data []byte, opts UploadOptions) error {
	path, err := f.fullPath(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".upload-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Link(tmpPath, path); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return ErrConflict
		}
		if errors.Is(err, fs.ErrPermission) {
			return ErrPermissionDenied
		}
		return fmt.Errorf("link file: %w", err)
	}

	return nil
}

func (f *Filesystem) PublicURL(key string) string {
	return publicURL(f.publicURL, key)
}

// Remove deletes the file stored at key. Directories are never removed, even
// when one happens to sit at the key's path.
func (f *Filesystem) Remove(ctx context.Context, key string) error {
	path, err := f.fullPath(key)
	if err != nil {
		return err
	}

	info, err := os.Lstat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		if errors.Is(err, fs.ErrPermission) {
			return ErrPermissionDenied
		}
		return fmt.Errorf("stat file: %w", err)
	}
	if info.IsDir() {
		return ErrInvalidKey
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		if errors.Is(err, fs.ErrPermission) {
			return ErrPermissionDenied
		}
		return fmt.Errorf("remove file: %w", err)
	}

	return nil
}

// ServeHTTP serves stored files. Mount it with http.StripPrefix so that the
// request path equals the storage key.
func (f *Filesystem) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path, err := f.fullPath(strings.TrimPrefix(r.URL.Path, "/"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}

	if f.cacheControl != "" {
		w.Header().Set("Cache-Control", f.cacheControl)
	}
	http.ServeFile(w, r, path)
}

// fullPath maps key to a file directly inside basePath. Keys are flat, so
// anything that would name basePath itself or reach outside it is rejected.
func (f *Filesystem) fullPath(key string) (string, error) {
	if err := ValidateKey(key); err != nil {
		return "", err
	}
	return filepath.Join(f.basePath, key), nil
}
