package models

import "time"

// SystemPreferences is the single row of the system_preferences table.
type SystemPreferences struct {
	CurrencyCode string `db:"currency_code"`
	Locale       string `db:"locale"` // Empty when derived from the currency
	AuditFields
}

// PreferencesChange is a row of system_preferences_history.
type PreferencesChange struct {
	CurrencyCode string    `db:"currency_code"`
	Locale       string    `db:"locale"`
	ChangedAt    time.Time `db:"changed_at"`
	ChangedBy    string    `db:"changed_by"`
}
