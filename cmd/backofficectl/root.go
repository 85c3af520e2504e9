package main

import (
	"context"
	"fmt"
	"log/slog"

	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/core/services"
	"github.com/SscSPs/backoffice_app/internal/platform/config"
	"github.com/SscSPs/backoffice_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/backoffice_app/pkg/database"
	"github.com/spf13/cobra"
)

type app struct {
	verbose bool
	logger  *slog.Logger
	cfg     *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "backofficectl",
		Short:         "Operate the backoffice currency preferences",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelWarn
			if a.verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			a.cfg = cfg
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newMigrateCmd(a),
		newPreferencesCmd(a),
		newFormatCmd(a),
		newParseCmd(a),
	)
	return root
}

// withPreferences opens the database and hands a bootstrapped preferences service to fn.
func (a *app) withPreferences(ctx context.Context, fn func(svc portssvc.PreferencesSvcFacade) error) error {
	pool, err := database.NewPgxPool(ctx, a.cfg.DatabaseURL, true)
	if err != nil {
		return err
	}
	defer database.ClosePgxPool(pool)

	container := services.NewServiceContainer(a.cfg, pgsql.NewRepositoryProvider(pool), a.logger)
	if err := container.Preferences.Bootstrap(ctx); err != nil {
		return err
	}
	return fn(container.Preferences)
}
