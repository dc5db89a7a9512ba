package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/JaimeStill/gallery/internal/images"
	"github.com/JaimeStill/gallery/internal/infrastructure"
	"github.com/spf13/cobra"
)

// withGallery starts the backend handle, runs fn against the fail-soft
// gallery and shuts the handle down again. Logs go to stderr so stdout
// carries only command output.
func withGallery(cmd *cobra.Command, fn func(ctx context.Context, g *images.Gallery) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	infra, err := infrastructure.New(cfg, os.Stderr)
	if err != nil {
		return err
	}

	if err := infra.Start(); err != nil {
		return err
	}
	infra.Lifecycle.WaitForStartup()

	defer func() {
		if err := infra.Lifecycle.Shutdown(cfg.Server.ShutdownTimeoutDuration()); err != nil {
			infra.Logger.Warn("shutdown incomplete", "error", err)
		}
	}()

	gallery := images.NewGallery(infra.Images(&cfg.Storage), infra.Logger)
	return fn(cmd.Context(), gallery)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
