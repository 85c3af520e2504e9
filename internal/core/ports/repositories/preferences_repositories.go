package repositories

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// PreferencesReader defines read operations for system preferences
type PreferencesReader interface {
	// FindPreferences returns the stored preferences or apperrors.ErrNotFound.
	FindPreferences(ctx context.Context) (*domain.SystemPreferences, error)

	// ListPreferencesHistory returns up to limit past changes, newest first.
	ListPreferencesHistory(ctx context.Context, limit int) ([]domain.PreferencesChange, error)
}

// PreferencesWriter defines write operations for system preferences
type PreferencesWriter interface {
	// SavePreferences inserts or replaces the stored preferences.
	SavePreferences(ctx context.Context, prefs domain.SystemPreferences) error
}

// PreferencesRepositoryFacade combines all preferences-related repository interfaces
type PreferencesRepositoryFacade interface {
	PreferencesReader
	PreferencesWriter
}

// PreferencesRepositoryWithTx extends PreferencesRepositoryFacade with transaction capabilities
type PreferencesRepositoryWithTx interface {
	PreferencesRepositoryFacade
	TransactionManager
}
