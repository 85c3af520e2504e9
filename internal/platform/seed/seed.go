package seed

import (
	"fmt"
	"os"

	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// PreferencesFile is the YAML document accepted by the seed command.
//
//	preferences:
//	  currencyCode: USD
//	  locale: en-US
//	updatedBy: ops
type PreferencesFile struct {
	Preferences dto.UpdatePreferencesRequest `yaml:"preferences"`
	UpdatedBy   string                       `yaml:"updatedBy"`
}

const defaultSeedUser = "seed"

// LoadPreferencesFile reads and validates a preferences seed file.
func LoadPreferencesFile(filename string) (*PreferencesFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ParsePreferences(data)
}

// ParsePreferences decodes and validates a seed document.
func ParsePreferences(data []byte) (*PreferencesFile, error) {
	var file PreferencesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validator.New().Struct(file.Preferences); err != nil {
		return nil, fmt.Errorf("seed validation failed: %w", err)
	}
	if file.UpdatedBy == "" {
		file.UpdatedBy = defaultSeedUser
	}
	return &file, nil
}
