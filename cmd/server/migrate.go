package main

import (
	"github.com/spf13/cobra"
	"github.com/yukikurage/project-admin/internal/database"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the catalog tables and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, db, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := database.Migrate(db, log); err != nil {
				return err
			}
			log.Info().Msg("migrations applied")
			return nil
		},
	}
}
