package config

// Config holds all chapterizer configuration options.
//
// Priority: CLI flags > environment > config file > defaults.
type Config struct {
	// Required positional arguments
	SourceDir string `yaml:"source_dir" env:"CHAPTERIZER_SOURCE_DIR"`
	DestDir   string `yaml:"dest_dir" env:"CHAPTERIZER_DEST_DIR"`

	// Chapter settings
	ChapterInterval int `yaml:"chapter_interval" env:"CHAPTERIZER_CHAPTER_INTERVAL"` // minimum seconds between boundaries

	// Execution settings
	Workers        int      `yaml:"workers" env:"CHAPTERIZER_WORKERS"`                 // 0 = auto-detect
	Extensions     []string `yaml:"extensions" env:"CHAPTERIZER_EXTENSIONS" envSeparator:","` // media file extensions to process
	TimeoutMinutes int      `yaml:"timeout_minutes" env:"CHAPTERIZER_TIMEOUT_MINUTES"` // per-file limit, 0 = none

	// Observability
	MetricsPort int    `yaml:"metrics_port" env:"CHAPTERIZER_METRICS_PORT"` // 0 = disabled
	LogLevel    string `yaml:"log_level" env:"CHAPTERIZER_LOG_LEVEL"`       // debug, info, warn, error

	// Behavioral flags
	Verbose bool `yaml:"verbose" env:"CHAPTERIZER_VERBOSE"` // human-readable development logging
	DryRun  bool `yaml:"dry_run"`                           // list files without processing
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		// Required - must be provided as positional arguments
		SourceDir: "",
		DestDir:   "",

		// Chapter defaults: a boundary at most every 3 minutes
		ChapterInterval: 180,

		// Execution settings
		Workers:        0, // Auto-detect CPU count
		Extensions:     []string{".mp4", ".mkv", ".mov", ".m4v", ".avi", ".webm"},
		TimeoutMinutes: 30,

		// Observability defaults
		MetricsPort: 0, // Disabled
		LogLevel:    "info",

		// Behavioral defaults
		Verbose: false,
		DryRun:  false,
	}
}

// LogLevelValues returns valid log level values.
func LogLevelValues() []string {
	return []string{"debug", "info", "warn", "error"}
}

// IsValidLogLevel checks if level is valid.
func IsValidLogLevel(level string) bool {
	for _, valid := range LogLevelValues() {
		if level == valid {
			return true
		}
	}
	return false
}
