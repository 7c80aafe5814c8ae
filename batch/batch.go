// Package batch walks a source tree, runs the chapter pipeline over every
// matching media file with a bounded worker pool, and mirrors the results
// into the destination tree.
package batch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"chapterizer/chapters"
	"chapterizer/collector"
	"chapterizer/config"
	"chapterizer/ffmpeg"
	"chapterizer/ffprobe"
	"chapterizer/internal/timeutil"
	"chapterizer/metrics"
	"chapterizer/models"
)

// Processor runs the chapter pipeline over a directory tree.
type Processor struct {
	cfg    *config.Config
	logger *zap.Logger
}

// New creates a batch processor.
func New(cfg *config.Config, logger *zap.Logger) *Processor {
	return &Processor{cfg: cfg, logger: logger}
}

// Run processes every matching file under the source directory. Per-file
// failures are logged and counted but do not stop the batch; an error is
// returned only when setup fails or every file failed.
func (p *Processor) Run(ctx context.Context) error {
	files, err := p.findFiles()
	if err != nil {
		return fmt.Errorf("failed to scan source directory: %w", err)
	}

	if len(files) == 0 {
		p.logger.Warn("no matching media files found",
			zap.String("source_dir", p.cfg.SourceDir),
			zap.Strings("extensions", p.cfg.Extensions))
		return nil
	}

	p.logger.Info("starting batch",
		zap.Int("files", len(files)),
		zap.Int("workers", p.cfg.Workers),
		zap.Int("chapter_interval", p.cfg.ChapterInterval))

	if p.cfg.DryRun {
		for _, rel := range files {
			fmt.Printf("%s -> %s\n",
				filepath.Join(p.cfg.SourceDir, rel),
				filepath.Join(p.cfg.DestDir, rel))
		}
		return nil
	}

	var failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Workers)
	for _, rel := range files {
		rel := rel
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			if err := p.processFile(gctx, rel); err != nil {
				failed.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	nFailed := int(failed.Load())
	p.logger.Info("batch complete",
		zap.Int("processed", len(files)-nFailed),
		zap.Int("failed", nFailed))

	if nFailed == len(files) {
		return fmt.Errorf("all %d files failed", len(files))
	}
	return nil
}

// findFiles walks the source tree and returns the relative paths of files
// whose extension matches the configured set. Matching is case-insensitive.
func (p *Processor) findFiles() ([]string, error) {
	wanted := make(map[string]bool, len(p.cfg.Extensions))
	for _, ext := range p.cfg.Extensions {
		wanted[strings.ToLower(ext)] = true
	}

	var files []string
	err := filepath.WalkDir(p.cfg.SourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !wanted[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		rel, err := filepath.Rel(p.cfg.SourceDir, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// processFile runs the full pipeline for one file: probe, keyframe scan,
// boundary selection, chapter document rendering, and the mux into the
// mirrored destination path.
func (p *Processor) processFile(ctx context.Context, rel string) error {
	src := filepath.Join(p.cfg.SourceDir, rel)
	dst := filepath.Join(p.cfg.DestDir, rel)

	logger := p.logger.With(
		zap.String("job_id", uuid.NewString()),
		zap.String("file", rel))

	if p.cfg.TimeoutMinutes > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(p.cfg.TimeoutMinutes)*time.Minute)
		defer cancel()
	}

	probe, err := ffprobe.Probe(ctx, src)
	if err != nil {
		logger.Error("probe failed", zap.Error(err))
		metrics.FilesProcessedTotal.WithLabelValues(metrics.StatusFailed).Inc()
		return err
	}
	if !probe.HasVideo() {
		logger.Warn("skipping file without video stream")
		metrics.FilesProcessedTotal.WithLabelValues(metrics.StatusSkipped).Inc()
		return nil
	}
	if probe.HasChapters() {
		logger.Info("replacing existing chapter table",
			zap.Int("existing_chapters", probe.GetChapterCount()))
	}

	col := collector.New(int64(p.cfg.ChapterInterval)).
		SetProgressFunc(func(frame models.KeyFrame) {
			metrics.KeyframesDiscoveredTotal.Inc()
			logger.Debug("keyframe discovered",
				zap.Int64("seconds", frame.TimeSeconds),
				zap.Int64("byte_offset", frame.ByteOffset))
		})

	scanStart := time.Now()
	if err := ffprobe.ScanKeyframes(ctx, src, col); err != nil {
		logger.Error("keyframe scan failed", zap.Error(err))
		metrics.FilesProcessedTotal.WithLabelValues(metrics.StatusFailed).Inc()
		return err
	}
	boundaries, err := col.Wait(ctx)
	if err != nil {
		logger.Error("collector failed", zap.Error(err))
		metrics.FilesProcessedTotal.WithLabelValues(metrics.StatusFailed).Inc()
		return err
	}
	metrics.FileStageDuration.WithLabelValues("scan").Observe(time.Since(scanStart).Seconds())

	logger.Info("keyframe scan complete",
		zap.Int("keyframes", col.Discovered()),
		zap.Int("boundaries", len(boundaries)))

	table := chapters.Build(boundaries)
	if err := chapters.ValidateChapters(table); err != nil {
		logger.Error("chapter table invalid", zap.Error(err))
		metrics.FilesProcessedTotal.WithLabelValues(metrics.StatusFailed).Inc()
		return err
	}
	doc := chapters.Render(table)

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		logger.Error("failed to create destination directory", zap.Error(err))
		metrics.FilesProcessedTotal.WithLabelValues(metrics.StatusFailed).Inc()
		return err
	}

	muxStart := time.Now()
	if err := ffmpeg.NewMuxBuilder(src, dst).Run(ctx, []byte(doc)); err != nil {
		logger.Error("mux failed", zap.Error(err))
		metrics.FilesProcessedTotal.WithLabelValues(metrics.StatusFailed).Inc()
		return err
	}
	metrics.FileStageDuration.WithLabelValues("mux").Observe(time.Since(muxStart).Seconds())

	metrics.FilesProcessedTotal.WithLabelValues(metrics.StatusSuccess).Inc()
	metrics.ChaptersWrittenTotal.Add(float64(len(table)))

	fields := []zap.Field{
		zap.String("output", dst),
		zap.Int("chapters", len(table)),
	}
	if duration, err := probe.GetDuration(); err == nil {
		fields = append(fields, zap.String("duration", timeutil.FormatSeconds(duration)))
	}
	if n := len(boundaries); n > 0 {
		fields = append(fields, zap.String("last_boundary",
			timeutil.FormatWhole(boundaries[n-1].TimeSeconds)))
	}
	logger.Info("chapters embedded", fields...)
	return nil
}
