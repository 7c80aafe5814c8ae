package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"chapterizer/batch"
	"chapterizer/config"
	"chapterizer/logging"
	"chapterizer/metrics"
)

func main() {
	// Step 1: Load configuration (CLI flags > environment > config file > defaults)
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Configuration error: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.Verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Logging error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	// Step 2: Handle dry-run mode — show the effective configuration and the
	// source-to-destination mapping, then stop.
	if cfg.DryRun {
		fmt.Println("═══════════════════════════════════════════════════════════")
		fmt.Println("                      DRY RUN MODE")
		fmt.Println("═══════════════════════════════════════════════════════════")
		cfg.PrintConfig()
		fmt.Println()
		if err := batch.New(cfg, logger).Run(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "❌ %v\n", err)
			os.Exit(1)
		}
		fmt.Println("\n✓ Configuration is valid. No files were modified.")
		return
	}

	// Step 3: Set up context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Step 4: Register signal handlers (Ctrl+C, SIGTERM)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Warn("interrupt received, finishing in-flight files")
		cancel()
	}()

	// Step 5: Optional metrics endpoint
	if cfg.MetricsPort > 0 {
		srv := metrics.StartServer(cfg.MetricsPort, logger)
		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server shutdown failed", zap.Error(err))
			}
		}()
	}

	// Step 6: Run the batch
	if err := batch.New(cfg, logger).Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Warn("batch cancelled")
			os.Exit(130) // Standard exit code for SIGINT
		}
		logger.Error("batch failed", zap.Error(err))
		os.Exit(1)
	}
}
