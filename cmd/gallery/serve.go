package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the gallery HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		srv, err := NewServer(cfg)
		if err != nil {
			return err
		}

		if err := srv.Start(); err != nil {
			return err
		}

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

		select {
		case <-sigChan:
		case <-cmd.Context().Done():
		}

		return srv.Shutdown(cfg.Server.ShutdownTimeoutDuration())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
