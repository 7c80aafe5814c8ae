package config

import (
	"fmt"
	"os"
	"strings"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errors []string

	// Required positional arguments
	if c.SourceDir == "" {
		errors = append(errors, "source directory is required")
	} else if info, err := os.Stat(c.SourceDir); err != nil {
		errors = append(errors, fmt.Sprintf("source directory does not exist: %s", c.SourceDir))
	} else if !info.IsDir() {
		errors = append(errors, fmt.Sprintf("source path is not a directory: %s", c.SourceDir))
	}

	if c.DestDir == "" {
		errors = append(errors, "destination directory is required")
	}

	// Validate chapter interval
	if c.ChapterInterval <= 0 {
		errors = append(errors, "chapter interval must be positive")
	}

	// Validate workers (0 is valid, means auto-detect)
	if c.Workers < 0 {
		errors = append(errors, "workers cannot be negative (use 0 for auto-detect)")
	}

	// Validate timeout
	if c.TimeoutMinutes < 0 {
		errors = append(errors, "timeout cannot be negative (use 0 to disable)")
	}

	// Validate extensions
	if len(c.Extensions) == 0 {
		errors = append(errors, "at least one media extension is required")
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			errors = append(errors, fmt.Sprintf("extension must start with a dot: %s", ext))
		}
	}

	// Validate metrics port
	if c.MetricsPort < 0 || c.MetricsPort > 65535 {
		errors = append(errors, "metrics port must be between 0 and 65535")
	}

	// Validate log level
	if !IsValidLogLevel(c.LogLevel) {
		errors = append(errors, fmt.Sprintf("invalid log level '%s', must be one of: %s",
			c.LogLevel, strings.Join(LogLevelValues(), ", ")))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}
