package mapping

import (
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/models"
)

// ToModelPreferences converts domain preferences to the stored row
func ToModelPreferences(d domain.SystemPreferences) models.SystemPreferences {
	return models.SystemPreferences{
		CurrencyCode: string(d.Currency),
		Locale:       string(d.Locale),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPreferences converts the stored row to domain preferences
func ToDomainPreferences(m models.SystemPreferences) domain.SystemPreferences {
	return domain.SystemPreferences{
		Currency:    domain.CurrencyCode(m.CurrencyCode),
		Locale:      domain.LocaleTag(m.Locale),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPreferencesChange converts a history row to a domain change
func ToDomainPreferencesChange(m models.PreferencesChange) domain.PreferencesChange {
	return domain.PreferencesChange{
		Currency:  domain.CurrencyCode(m.CurrencyCode),
		Locale:    domain.LocaleTag(m.Locale),
		ChangedAt: m.ChangedAt,
		ChangedBy: m.ChangedBy,
	}
}

// ToDomainPreferencesChangeSlice converts history rows to domain changes
func ToDomainPreferencesChangeSlice(ms []models.PreferencesChange) []domain.PreferencesChange {
	ds := make([]domain.PreferencesChange, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPreferencesChange(m)
	}
	return ds
}
