package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// MergeFromFlags parses command-line arguments and overrides config values.
// The two positional arguments are the source and destination directories.
func (c *Config) MergeFromFlags(args []string) error {
	fs := flag.NewFlagSet("chapterizer", flag.ContinueOnError)
	fs.Usage = printUsage

	// Config file override (handled by LoadConfig before this function is called)
	_ = fs.String("config", "", "Path to config file (default: search standard locations)")

	// Chapter settings
	interval := fs.Int("interval", -1, "Minimum seconds between chapter boundaries (default: from config)")

	// Execution settings
	workers := fs.Int("workers", -1, "Number of parallel workers (0 = auto-detect, default: from config)")
	extensions := fs.String("extensions", "", "Comma-separated media extensions, e.g. .mp4,.mkv (default: from config)")
	timeout := fs.Int("timeout", -1, "Per-file timeout in minutes, 0 disables (default: from config)")

	// Observability
	metricsPort := fs.Int("metrics-port", -1, "Prometheus metrics port, 0 disables (default: from config)")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn, error (default: from config)")

	// Behavioral flags
	verbose := fs.Bool("verbose", false, "Enable human-readable development logging")
	dryRun := fs.Bool("dry-run", false, "List files that would be processed without processing them")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// Positional arguments: SOURCE_DIR DEST_DIR
	positional := fs.Args()
	if len(positional) > 2 {
		return fmt.Errorf("unexpected extra arguments: %s", strings.Join(positional[2:], " "))
	}
	if len(positional) >= 1 {
		c.SourceDir = positional[0]
	}
	if len(positional) >= 2 {
		c.DestDir = positional[1]
	}

	// Override with flag values (only if explicitly set, -1/"" means not set)
	if *interval > 0 {
		c.ChapterInterval = *interval
	}
	if *workers >= 0 {
		c.Workers = *workers
	}
	if *extensions != "" {
		c.Extensions = splitExtensions(*extensions)
	}
	if *timeout >= 0 {
		c.TimeoutMinutes = *timeout
	}
	if *metricsPort >= 0 {
		c.MetricsPort = *metricsPort
	}
	if *logLevel != "" {
		c.LogLevel = *logLevel
	}
	if *verbose {
		c.Verbose = true
	}
	if *dryRun {
		c.DryRun = true
	}

	return nil
}

// splitExtensions parses a comma-separated extension list, trimming spaces.
func splitExtensions(list string) []string {
	var exts []string
	for _, ext := range strings.Split(list, ",") {
		ext = strings.TrimSpace(ext)
		if ext != "" {
			exts = append(exts, ext)
		}
	}
	return exts
}

// printUsage prints help text
func printUsage() {
	fmt.Fprintf(os.Stderr, `chapterizer - Embed evenly-spaced chapter markers into a media library

USAGE:
  chapterizer [OPTIONS] SOURCE_DIR DEST_DIR

ARGUMENTS:
  SOURCE_DIR
        Directory scanned recursively for media files (required)
  DEST_DIR
        Directory receiving chapterized copies, mirroring relative paths
        (required, created if absent)

CONFIGURATION:
  -config string
        Path to config file (default: search ./chapterizer.yaml,
        ~/.chapterizer/config.yaml, /etc/chapterizer/config.yaml)

CHAPTER SETTINGS:
  -interval int
        Minimum seconds between chapter boundaries (default: 180)

EXECUTION SETTINGS:
  -workers int
        Number of files processed in parallel (0 = auto-detect CPU count)
  -extensions string
        Comma-separated media extensions (default: .mp4,.mkv,.mov,.m4v,.avi,.webm)
  -timeout int
        Per-file timeout in minutes, 0 disables (default: 30)

OBSERVABILITY:
  -metrics-port int
        Serve Prometheus metrics on this port, 0 disables (default: 0)
  -log-level string
        Log level: debug, info, warn, error (default: info)

BEHAVIORAL FLAGS:
  --verbose
        Human-readable development logging
  --dry-run
        List files that would be processed, then exit

EXAMPLES:
  # Chapterize a library into a mirror directory
  chapterizer /media/movies /media/movies-chaptered

  # Chapter boundaries at least 5 minutes apart, 8 files at a time
  chapterizer -interval 300 -workers 8 /media/movies /out

  # Preview which files would be processed
  chapterizer --dry-run /media/movies /out

ENVIRONMENT:
  All settings can also come from CHAPTERIZER_* environment variables,
  e.g. CHAPTERIZER_WORKERS=8 CHAPTERIZER_LOG_LEVEL=debug.

  Priority: CLI flags > environment > config file > defaults.

`)
}

// PrintConfig prints the effective configuration.
func (c *Config) PrintConfig() {
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Println("                 Effective Configuration                  ")
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Printf("Source Dir:       %s\n", c.SourceDir)
	fmt.Printf("Dest Dir:         %s\n", c.DestDir)
	fmt.Printf("Chapter Interval: %d seconds\n", c.ChapterInterval)
	fmt.Printf("Workers:          %d\n", c.Workers)
	fmt.Printf("Extensions:       %s\n", strings.Join(c.Extensions, ", "))
	fmt.Printf("Timeout:          %d minutes\n", c.TimeoutMinutes)
	fmt.Printf("Metrics Port:     %d\n", c.MetricsPort)
	fmt.Printf("Log Level:        %s\n", c.LogLevel)
	fmt.Printf("Verbose:          %v\n", c.Verbose)
	fmt.Println("═══════════════════════════════════════════════════════════")
}
