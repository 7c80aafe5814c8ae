package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadConfigFile loads configuration from a YAML file.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in standard locations.
// Returns empty string if not found (non-fatal).
func FindConfigFile() string {
	locations := []string{
		"./chapterizer.yaml",
		"./chapterizer.yml",
		filepath.Join(os.Getenv("HOME"), ".chapterizer", "config.yaml"),
		filepath.Join(os.Getenv("HOME"), ".chapterizer", "config.yml"),
		"/etc/chapterizer/config.yaml",
		"/etc/chapterizer/config.yml",
	}

	for _, path := range locations {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}
