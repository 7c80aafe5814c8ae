package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// MergeFromEnv overrides config values from CHAPTERIZER_* environment
// variables. Unset variables leave the corresponding fields untouched.
func (c *Config) MergeFromEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	return nil
}
