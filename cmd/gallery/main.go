package main

import (
	"context"
	"fmt"
	"os"

	"github.com/JaimeStill/gallery/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Gallery image repository service",
	Long: `Serves the gallery image API and provides operator commands for
the images table and stored image files.

Configuration is read from config.toml (or --config), overlaid with
config.<SERVICE_ENV>.toml, then overridden by environment variables.
BACKEND_URL and BACKEND_KEY are required.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", config.BaseConfigFile, "Path to the base configuration file")
}

// loadConfig reads, overlays and finalizes configuration, failing fast when
// the backend URL or key is missing.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("config load failed: %w", err)
	}

	if err := cfg.Finalize(); err != nil {
		return nil, fmt.Errorf("config finalize failed: %w", err)
	}

	return cfg, nil
}
