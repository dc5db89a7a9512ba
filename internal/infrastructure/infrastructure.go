// Package infrastructure assembles the backend client handle shared by every
// gallery component: lifecycle coordination, logging, the database pool and
// blob storage. It is built once at startup and read concurrently afterwards.
package infrastructure

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/JaimeStill/gallery/internal/config"
	"github.com/JaimeStill/gallery/internal/database"
	"github.com/JaimeStill/gallery/internal/images"
	"github.com/JaimeStill/gallery/internal/lifecycle"
	"github.com/JaimeStill/gallery/internal/logger"
	"github.com/JaimeStill/gallery/internal/storage"
)

// Infrastructure holds the core systems required by the image repository.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Storage   storage.System
	Keys      *images.KeyGenerator
}

// New creates an Infrastructure from a finalized configuration, logging to w.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config, w io.Writer) (*Infrastructure, error) {
	lc := lifecycle.New()
	log := logger.New(&cfg.Logging, w)

	db, err := database.New(&cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	store, err := storage.New(lc.Context(), &cfg.Storage, &cfg.Backend, log)
	if err != nil {
		return nil, fmt.Errorf("storage init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    log,
		Database:  db,
		Storage:   store,
		Keys:      images.NewKeyGenerator(nil),
	}, nil
}

// Start registers every infrastructure system with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	if err := i.Storage.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("storage start failed: %w", err)
	}
	return nil
}

// Images builds the strict image repository over the shared handle.
func (i *Infrastructure) Images(cfg *config.StorageConfig) images.System {
	return images.New(i.Database.Connection(), i.Storage, i.Keys, cfg.CacheControl, i.Logger)
}
