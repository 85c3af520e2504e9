package services

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/dto"
)

// PreferencesReaderSvc defines read operations for system preferences
type PreferencesReaderSvc interface {
	// GetPreferences returns the stored preferences, or the formatter's live state when none are stored.
	GetPreferences(ctx context.Context) (*domain.SystemPreferences, error)

	// ListPreferencesHistory returns recent preference changes, newest first.
	ListPreferencesHistory(ctx context.Context, limit int) ([]domain.PreferencesChange, error)
}

// PreferencesWriterSvc defines write operations for system preferences
type PreferencesWriterSvc interface {
	// UpdatePreferences persists new preferences and re-initializes the formatter.
	UpdatePreferences(ctx context.Context, req dto.UpdatePreferencesRequest, userID string) (*domain.SystemPreferences, error)
}

// PreferencesLoaderSvc pushes stored preferences into the currency formatter.
type PreferencesLoaderSvc interface {
	// Bootstrap initializes the formatter at startup. The formatter is always initialized,
	// even when an error is returned.
	Bootstrap(ctx context.Context) error

	// Reload re-reads storage and reports whether the formatter state changed.
	Reload(ctx context.Context) (bool, error)
}

// PreferencesSvcFacade combines all preferences-related service interfaces
type PreferencesSvcFacade interface {
	PreferencesReaderSvc
	PreferencesWriterSvc
	PreferencesLoaderSvc
}
