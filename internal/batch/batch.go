package batch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/schollz/progressbar/v3"

	"recap/internal/config"
	"recap/internal/logger"
	"recap/internal/pipeline"
)

// FileResult is the outcome for one recording in a batch run.
type FileResult struct {
	File    string
	Status  string // "processed", "skipped" or "failed"
	Err     error
	Elapsed time.Duration
}

// Summary aggregates a whole batch run.
type Summary struct {
	Results   []FileResult
	Processed int
	Skipped   int
	Failed    int
}

// Runner processes every recording in a directory, continuing past
// per-file failures.
type Runner interface {
	Run(ctx context.Context, dir string, opts pipeline.Options) (Summary, error)
}

type implRunner struct {
	cfg       *config.Config
	processor pipeline.Processor
	logger    logger.Logger
	progress  io.Writer
}

// New creates a batch Runner.
func New(cfg *config.Config, proc pipeline.Processor, log logger.Logger) Runner {
	return newRunner(cfg, proc, log, os.Stderr)
}

func newRunner(cfg *config.Config, proc pipeline.Processor, log logger.Logger, progress io.Writer) Runner {
	return &implRunner{
		cfg:       cfg,
		processor: proc,
		logger:    log,
		progress:  progress,
	}
}

// Run processes every video in dir sequentially. Each file gets its own
// deadline; a failure is logged and counted, never fatal for the batch.
// A directory lock keeps two batch runs from interleaving their outputs.
func (r *implRunner) Run(ctx context.Context, dir string, opts pipeline.Options) (Summary, error) {
	files, err := Discover(dir)
	if err != nil {
		return Summary{}, err
	}
	if len(files) == 0 {
		r.logger.Info(ctx, "No .mov or .mp4 files found in %s.", dir)
		return Summary{}, nil
	}

	lock := flock.New(filepath.Join(dir, ".recap.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return Summary{}, fmt.Errorf("lock batch directory: %w", err)
	}
	if !locked {
		return Summary{}, fmt.Errorf("another batch run is already processing %s", dir)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lock.Path())
	}()

	r.logger.Info(ctx, "Batch processing started. Found %d files.", len(files))

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(r.progress),
		progressbar.OptionSetDescription("recordings"),
	)

	fileTimeout := time.Duration(r.cfg.Batch.FileTimeoutHours) * time.Hour
	var summary Summary

	for i, file := range files {
		if ctx.Err() != nil {
			r.logger.Warn(ctx, "Batch interrupted: %v", ctx.Err())
			break
		}

		r.logger.Info(ctx, "(%d/%d) Processing: %s", i+1, len(files), file)
		start := time.Now()

		fileCtx, cancel := context.WithTimeout(ctx, fileTimeout)
		outcome, err := r.processor.Process(fileCtx, file, opts)
		cancel()

		res := FileResult{File: file, Elapsed: time.Since(start)}
		switch {
		case err != nil:
			res.Status = "failed"
			res.Err = err
			summary.Failed++
			r.logger.Error(ctx, "FAIL: %s (took %s): %v", file, res.Elapsed.Truncate(time.Second), err)
		case outcome == pipeline.OutcomeSkipped:
			res.Status = "skipped"
			summary.Skipped++
			r.logger.Info(ctx, "SKIP: %s: outputs already exist", file)
		default:
			res.Status = "processed"
			summary.Processed++
			r.logger.Info(ctx, "SUCCESS: %s (took %s)", file, res.Elapsed.Truncate(time.Second))
		}
		summary.Results = append(summary.Results, res)

		_ = bar.Add(1)
	}

	r.logger.Info(ctx, "Batch processing complete. Success: %d, Skipped: %d, Failed: %d",
		summary.Processed, summary.Skipped, summary.Failed)
	if summary.Failed > 0 {
		r.logger.Info(ctx, "Some files failed. Retry them individually or run with --force to overwrite existing outputs.")
	}

	return summary, nil
}
