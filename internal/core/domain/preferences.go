package domain

import "time"

// SystemPreferences holds the organisation-wide display settings chosen in the dashboard.
// Locale may be empty, in which case it is derived from Currency.
type SystemPreferences struct {
	Currency CurrencyCode `json:"currencyCode"`
	Locale   LocaleTag    `json:"locale"`
	AuditFields
}

// PreferencesChange is one entry of the preferences audit trail.
type PreferencesChange struct {
	Currency  CurrencyCode `json:"currencyCode"`
	Locale    LocaleTag    `json:"locale"`
	ChangedAt time.Time    `json:"changedAt"`
	ChangedBy string       `json:"changedBy"`
}
