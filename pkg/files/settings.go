package files

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalogo/katalogo-cli/pkg/models"
)

// LoadSettings reads the settings file, falling back to defaults when
// the file does not exist. Unset fields keep their default values.
func LoadSettings(path string) (*models.Settings, error) {
	settings := models.DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}

	if settings.Search.MaxResults <= 0 {
		settings.Search.MaxResults = models.DefaultSettings().Search.MaxResults
	}
	if settings.Search.MinChars <= 0 {
		settings.Search.MinChars = models.DefaultSettings().Search.MinChars
	}
	return settings, nil
}

// SaveSettings writes the settings file.
func SaveSettings(path string, settings *models.Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", path, err)
	}
	return nil
}
