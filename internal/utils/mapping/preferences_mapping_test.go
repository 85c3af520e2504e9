package mapping_test

import (
	"testing"
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/models"
	"github.com/SscSPs/backoffice_app/internal/utils/mapping"
	"github.com/stretchr/testify/assert"
)

func TestPreferencesMapping(t *testing.T) {
	now := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	d := domain.SystemPreferences{
		Currency: "EUR",
		Locale:   "",
		AuditFields: domain.AuditFields{
			CreatedAt: now.Add(-time.Hour), CreatedBy: "founder",
			LastUpdatedAt: now, LastUpdatedBy: "editor",
		},
	}

	m := mapping.ToModelPreferences(d)

	assert.Equal(t, "EUR", m.CurrencyCode)
	assert.Equal(t, "", m.Locale)
	assert.Equal(t, "founder", m.CreatedBy)
	assert.Equal(t, d, mapping.ToDomainPreferences(m))
}

func TestToDomainPreferencesChangeSlice(t *testing.T) {
	now := time.Now()
	changes := mapping.ToDomainPreferencesChangeSlice([]models.PreferencesChange{
		{CurrencyCode: "USD", Locale: "en-US", ChangedAt: now, ChangedBy: "a"},
		{CurrencyCode: "GBP", ChangedAt: now, ChangedBy: "b"},
	})

	assert.Len(t, changes, 2)
	assert.Equal(t, domain.CurrencyCode("USD"), changes[0].Currency)
	assert.Equal(t, domain.LocaleTag("en-US"), changes[0].Locale)
	assert.Equal(t, "b", changes[1].ChangedBy)
	assert.Empty(t, mapping.ToDomainPreferencesChangeSlice(nil))
}
