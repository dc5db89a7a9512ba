// Package logger provides structured logging configuration and initialization.
package logger

import (
	"io"
	"log/slog"

	"github.com/JaimeStill/gallery/internal/config"
)

// New creates a structured logger writing to w with the configured level and format.
// The server logs to stdout; the CLI logs to stderr so command output stays clean.
func New(cfg *config.LoggingConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.Level.ToSlogLevel(),
	}

	var handler slog.Handler
	if cfg.Format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
