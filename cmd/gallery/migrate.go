package main

import (
	"os"

	"github.com/JaimeStill/gallery/internal/database"
	"github.com/JaimeStill/gallery/internal/logger"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or roll back the images table schema",
	Long: `Provisions the images table in the configured database.
The service never migrates on its own; run "gallery migrate up" once
against a new backend before serving.`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(cmd, func(m *database.Migrator) error {
			return m.Up()
		})
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back applied migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		steps, err := cmd.Flags().GetInt("steps")
		if err != nil {
			return err
		}
		return withMigrator(cmd, func(m *database.Migrator) error {
			return m.Down(steps)
		})
	},
}

func init() {
	migrateDownCmd.Flags().IntP("steps", "n", 1, "Number of migrations to roll back")
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)
	rootCmd.AddCommand(migrateCmd)
}

func withMigrator(cmd *cobra.Command, fn func(*database.Migrator) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := logger.New(&cfg.Logging, os.Stderr)

	m, err := database.NewMigrator(&cfg.Database, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := m.Close(); err != nil {
			log.Warn("migrator close failed", "error", err)
		}
	}()

	return fn(m)
}
