package main

import (
	"github.com/SscSPs/backoffice_app/pkg/database"
	"github.com/spf13/cobra"
)

func newMigrateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}

	for _, direction := range []database.Direction{database.Up, database.Down} {
		direction := direction
		cmd.AddCommand(&cobra.Command{
			Use:   string(direction),
			Short: "Run all " + string(direction) + " migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return database.RunMigrations(a.cfg.DatabaseURL, a.cfg.MigrationsPath, direction, a.logger)
			},
		})
	}
	return cmd
}
