package diarize

import (
	"context"
	"fmt"

	"recap/internal/config"
	"recap/internal/logger"
	"recap/pkg/executor"
)

type implDiarizer struct {
	cfg      config.Diarize
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Diarizer that shells out to the configured diarization
// command (typically a pyannote wrapper) and parses its RTTM output.
func New(cfg config.Diarize, exec executor.Executor, log logger.Logger) Diarizer {
	return &implDiarizer{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}

func (d *implDiarizer) Diarize(ctx context.Context, audioPath string) ([]Turn, error) {
	d.logger.Info(ctx, "Running speaker diarization: %s", audioPath)

	args := append(append([]string{}, d.cfg.ExtraArgs...), audioPath)
	out, err := d.executor.Execute(ctx, d.cfg.BinaryPath, args...)
	if err != nil {
		return nil, fmt.Errorf("diarization command: %w", err)
	}

	turns, err := ParseRTTM(out)
	if err != nil {
		return nil, fmt.Errorf("parse rttm: %w", err)
	}

	d.logger.Info(ctx, "Speaker diarization done, %d segments", len(turns))
	return turns, nil
}
