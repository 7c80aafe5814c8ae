package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chapterizer.yaml")
	content := `
chapter_interval: 300
workers: 6
extensions:
  - .mkv
  - .mp4
log_level: warn
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.ChapterInterval != 300 {
		t.Errorf("Expected interval 300, got %d", cfg.ChapterInterval)
	}
	if cfg.Workers != 6 {
		t.Errorf("Expected workers 6, got %d", cfg.Workers)
	}
	if len(cfg.Extensions) != 2 {
		t.Errorf("Expected 2 extensions, got %v", cfg.Extensions)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("Expected log level warn, got %s", cfg.LogLevel)
	}

	// Unspecified fields keep their defaults
	if cfg.TimeoutMinutes != 30 {
		t.Errorf("Expected default timeout 30, got %d", cfg.TimeoutMinutes)
	}
}

func TestLoadConfigFile_Missing(t *testing.T) {
	if _, err := LoadConfigFile("/nonexistent/chapterizer.yaml"); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestLoadConfigFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("workers: [not a number"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfigFile(path); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

// Full priority chain: flags beat environment beats file beats defaults.
func TestLoadConfig_Priority(t *testing.T) {
	srcDir := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "chapterizer.yaml")
	if err := os.WriteFile(cfgPath, []byte("chapter_interval: 300\nworkers: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("CHAPTERIZER_WORKERS", "5")

	cfg, err := loadConfig([]string{
		"-config", cfgPath,
		"-interval", "600",
		srcDir, t.TempDir(),
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.ChapterInterval != 600 {
		t.Errorf("Expected flag to win: interval 600, got %d", cfg.ChapterInterval)
	}
	if cfg.Workers != 5 {
		t.Errorf("Expected env to beat file: workers 5, got %d", cfg.Workers)
	}
}

func TestLoadConfig_MissingDirectoriesFails(t *testing.T) {
	if _, err := loadConfig(nil); err == nil {
		t.Error("Expected error when positional directories are missing")
	}
}
