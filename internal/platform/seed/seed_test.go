package seed_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/SscSPs/backoffice_app/internal/platform/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePreferences(t *testing.T) {
	tests := []struct {
		name       string
		doc        string
		wantErr    bool
		wantCode   string
		wantLocale string
		wantUser   string
	}{
		{
			name:       "full document",
			doc:        "preferences:\n  currencyCode: USD\n  locale: en-US\nupdatedBy: ops\n",
			wantCode:   "USD",
			wantLocale: "en-US",
			wantUser:   "ops",
		},
		{
			name:     "locale optional and user defaulted",
			doc:      "preferences:\n  currencyCode: EUR\n",
			wantCode: "EUR",
			wantUser: "seed",
		},
		{name: "missing currency", doc: "preferences:\n  locale: en-US\n", wantErr: true},
		{name: "lowercase currency", doc: "preferences:\n  currencyCode: usd\n", wantErr: true},
		{name: "malformed yaml", doc: "preferences: [", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := seed.ParsePreferences([]byte(tt.doc))
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, file)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, file.Preferences.CurrencyCode)
			assert.Equal(t, tt.wantLocale, file.Preferences.Locale)
			assert.Equal(t, tt.wantUser, file.UpdatedBy)
		})
	}
}

func TestLoadPreferencesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("preferences:\n  currencyCode: JPY\n  locale: ja-JP\n"), 0o600))

	file, err := seed.LoadPreferencesFile(path)

	require.NoError(t, err)
	assert.Equal(t, "JPY", file.Preferences.CurrencyCode)
	assert.Equal(t, "ja-JP", file.Preferences.Locale)
}

func TestLoadPreferencesFile_Missing(t *testing.T) {
	_, err := seed.LoadPreferencesFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
