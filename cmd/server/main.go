package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/yukikurage/project-admin/internal/config"
	"github.com/yukikurage/project-admin/internal/database"
	"github.com/yukikurage/project-admin/internal/logger"
	"gorm.io/gorm"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "project-admin",
		Short:         "Administration site for the project catalogs",
		SilenceUsage:  true,
		SilenceErrors: true,
		// serve is the default command
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	root.AddCommand(newServeCmd(), newMigrateCmd(), newCrearAdminCmd())
	return root
}

// bootstrap loads configuration, builds the logger and connects to the database.
func bootstrap(ctx context.Context) (*config.Config, zerolog.Logger, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.New(cfg.AppEnv, cfg.LogLevel)

	db, err := database.Connect(ctx, cfg, log)
	if err != nil {
		return nil, log, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return cfg, log, db, nil
}
