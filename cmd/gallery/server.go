package main

import (
	"net/http"
	"os"
	"time"

	"github.com/JaimeStill/gallery/internal/config"
	"github.com/JaimeStill/gallery/internal/infrastructure"
	"github.com/JaimeStill/gallery/internal/server"
)

// Server coordinates the lifecycle of all subsystems.
type Server struct {
	infra *infrastructure.Infrastructure
	http  server.System
}

// NewServer creates and initializes the service with all subsystems.
func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg, os.Stdout)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	groups := registerRoutes(mux, infra, cfg)

	handler := buildMiddleware(infra, cfg, groups).Apply(mux)

	infra.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"storage", cfg.Storage.Provider,
	)

	return &Server{
		infra: infra,
		http:  server.New(&cfg.Server, handler, infra.Logger),
	}, nil
}

// Start begins all subsystems and returns when they are registered.
func (s *Server) Start() error {
	s.infra.Logger.Info("starting service")

	if err := s.infra.Start(); err != nil {
		return err
	}

	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("all subsystems ready")
	}()

	return nil
}

// Shutdown gracefully stops all subsystems within timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")
	return s.infra.Lifecycle.Shutdown(timeout)
}
