package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/templui/postpage/internal/config"
	"github.com/templui/postpage/internal/db"
	"github.com/templui/postpage/internal/logger"
)

func MigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations for POST_SOURCE=db",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return migrate(true)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the latest migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return migrate(false)
		},
	})

	return cmd
}

func migrate(up bool) error {
	cfg := config.Load()
	logger.Init(cfg.IsDevelopment(), cfg.AppEnv, "")

	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() { _ = database.Close() }()

	if up {
		return db.RunMigrations(database.DB, cfg.DBDriver)
	}
	return db.MigrateDown(database.DB, cfg.DBDriver)
}
