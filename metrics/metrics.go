// Package metrics exposes Prometheus instrumentation for batch processing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FilesProcessedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chapterizer_files_processed_total",
		Help: "Total number of files processed, by status",
	}, []string{"status"})

	KeyframesDiscoveredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chapterizer_keyframes_discovered_total",
		Help: "Total number of keyframes discovered across all files",
	})

	ChaptersWrittenTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chapterizer_chapters_written_total",
		Help: "Total number of chapter records embedded across all files",
	})

	FileStageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "chapterizer_file_stage_duration_seconds",
		Help:    "Duration of per-file pipeline stages",
		Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600},
	}, []string{"stage"})
)

// Status label values for FilesProcessedTotal.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
)
