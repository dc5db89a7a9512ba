package main

import (
	"net/http"

	"github.com/JaimeStill/gallery/internal/config"
	"github.com/JaimeStill/gallery/internal/images"
	"github.com/JaimeStill/gallery/internal/infrastructure"
	"github.com/JaimeStill/gallery/internal/lifecycle"
	"github.com/JaimeStill/gallery/internal/storage"
	"github.com/JaimeStill/gallery/pkg/openapi"
	"github.com/JaimeStill/gallery/pkg/routes"
)

// filesPrefix is where filesystem-backed storage serves uploaded files.
const filesPrefix = "/files/"

// registerRoutes configures all HTTP routes for the service and returns the
// API route groups it mounted.
func registerRoutes(mux *http.ServeMux, infra *infrastructure.Infrastructure, cfg *config.Config) []routes.Group {
	imagesHandler := images.NewHandler(
		infra.Images(&cfg.Storage),
		infra.Logger,
		cfg.Storage.MaxUploadSizeBytes(),
	)

	groups := []routes.Group{imagesHandler.Routes()}
	routes.Register(mux, cfg.Server.BasePath, groups...)

	if specJSON, err := openapi.MarshalJSON(generateSpec(cfg, groups...)); err != nil {
		infra.Logger.Error("failed to render openapi document", "error", err)
	} else {
		mux.HandleFunc("GET "+cfg.Server.BasePath+"/openapi.json", openapi.ServeSpec(specJSON))
	}

	if fs, ok := infra.Storage.(*storage.Filesystem); ok {
		mux.Handle("GET "+filesPrefix, http.StripPrefix(filesPrefix, fs))
	}

	mux.HandleFunc("GET /healthz", handleHealthCheck)
	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		handleReadinessCheck(w, infra.Lifecycle)
	})

	return groups
}

// handleHealthCheck responds with OK status for health monitoring.
func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func handleReadinessCheck(w http.ResponseWriter, ready lifecycle.ReadinessChecker) {
	if !ready.Ready() {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("NOT READY"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("READY"))
}
