package catalog

import (
	"os"
	"path/filepath"

	"github.com/shotput/boxpacker/internal/model"
)

// DefaultConfigDir returns ~/.boxpacker, the default home for this
// package's JSON files.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".boxpacker")
}

// DefaultConfigPath returns the default path for the application config.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveAppConfig persists config to path as indented JSON, creating any
// missing parent directories.
func SaveAppConfig(path string, config model.AppConfig) error {
	return writeJSON(path, config)
}

// LoadAppConfig reads config from path, returning model.DefaultAppConfig
// with no error if the file doesn't exist yet. A loaded
// DefaultMaxWeightGrams that is zero or negative — a hand-edited config
// file, or one written before that field existed — falls back to
// model.DefaultMaxWeightGrams rather than being passed through as-is:
// this value feeds Pack's maxWeight directly, where zero would reject
// every item as too heavy instead of falling back to a sane default.
func LoadAppConfig(path string) (model.AppConfig, error) {
	var config model.AppConfig
	if err := readJSON(path, &config); err != nil {
		if os.IsNotExist(err) {
			return model.DefaultAppConfig(), nil
		}
		return model.AppConfig{}, err
	}
	if config.RecentManifests == nil {
		config.RecentManifests = []string{}
	}
	if config.DefaultMaxWeightGrams <= 0 {
		config.DefaultMaxWeightGrams = model.DefaultMaxWeightGrams
	}
	return config, nil
}
