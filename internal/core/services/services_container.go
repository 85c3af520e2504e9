package services

import (
	"log/slog"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// The formatter is created here and shared by every consumer; callers must run
// Preferences.Bootstrap before serving requests.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, logger *slog.Logger, formatterOpts ...CurrencyFormatterOption) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	formatterOpts = append([]CurrencyFormatterOption{WithFormatterLogger(logger)}, formatterOpts...)
	container.Currency = NewCurrencyFormatter(formatterOpts...)

	container.Preferences = NewPreferencesService(
		repos.PreferencesRepo,
		container.Currency,
		WithPreferenceDefaults(domain.CurrencyCode(cfg.DefaultCurrency), domain.LocaleTag(cfg.DefaultLocale)),
		WithPreferencesLogger(logger),
	)

	return container
}
