package dto

import (
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// UpdatePreferencesRequest defines the data needed to change the display currency.
type UpdatePreferencesRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required,uppercase,len=3" validate:"required,uppercase,len=3" yaml:"currencyCode"`
	Locale       string `json:"locale,omitempty" binding:"omitempty,max=35" validate:"omitempty,max=35" yaml:"locale"`
}

// PreferencesResponse defines the data returned for the system preferences.
type PreferencesResponse struct {
	CurrencyCode  string     `json:"currencyCode"`
	Locale        string     `json:"locale"`
	Symbol        string     `json:"symbol"`
	Stored        bool       `json:"stored"`
	LastUpdatedAt *time.Time `json:"lastUpdatedAt,omitempty"`
	LastUpdatedBy string     `json:"lastUpdatedBy,omitempty"`
}

// PreferencesChangeResponse is one entry of the preferences history.
type PreferencesChangeResponse struct {
	CurrencyCode string    `json:"currencyCode"`
	Locale       string    `json:"locale"`
	ChangedAt    time.Time `json:"changedAt"`
	ChangedBy    string    `json:"changedBy"`
}

// ToPreferencesResponse converts domain preferences to the response DTO.
// Preferences without audit data are the formatter's defaults, not a stored row.
func ToPreferencesResponse(prefs *domain.SystemPreferences) PreferencesResponse {
	res := PreferencesResponse{
		CurrencyCode: string(prefs.Currency),
		Locale:       string(prefs.Locale),
		Symbol:       domain.SymbolFor(prefs.Currency),
		Stored:       !prefs.LastUpdatedAt.IsZero(),
	}
	if res.Stored {
		updatedAt := prefs.LastUpdatedAt
		res.LastUpdatedAt = &updatedAt
		res.LastUpdatedBy = prefs.LastUpdatedBy
	}
	return res
}

// ToListPreferencesChangeResponse converts history entries to DTOs
func ToListPreferencesChangeResponse(changes []domain.PreferencesChange) []PreferencesChangeResponse {
	res := make([]PreferencesChangeResponse, len(changes))
	for i, c := range changes {
		res[i] = PreferencesChangeResponse{
			CurrencyCode: string(c.Currency),
			Locale:       string(c.Locale),
			ChangedAt:    c.ChangedAt,
			ChangedBy:    c.ChangedBy,
		}
	}
	return res
}
