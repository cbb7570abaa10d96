package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
	"github.com/yukikurage/project-admin/internal/database"
	"github.com/yukikurage/project-admin/internal/events"
	"github.com/yukikurage/project-admin/internal/services"
)

func newCrearAdminCmd() *cobra.Command {
	var usuario, contrasena string

	cmd := &cobra.Command{
		Use:   "crear-admin",
		Short: "Create the first employee account",
		Long: "Creates an employee with the Administrador position. When --contrasena is " +
			"omitted a temporary password is generated and printed once.",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, db, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := database.Migrate(db, log); err != nil {
				return err
			}

			s := services.NewServicios(database.NewDataContext(db), events.NoopPublisher{}, nil)
			admin, err := services.CrearAdministrador(cmd.Context(), s.Puestos, s.Usuarios, usuario, contrasena)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(admin)
		},
	}

	cmd.Flags().StringVar(&usuario, "usuario", "admin", "login name")
	cmd.Flags().StringVar(&contrasena, "contrasena", "", "password; generated when empty")
	return cmd
}
