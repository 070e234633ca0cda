package media

import (
	"recap/internal/config"
	"recap/internal/logger"
	"recap/pkg/executor"
)

type implConverter struct {
	cfg      config.FFmpeg
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Converter backed by the configured ffmpeg binary.
func New(cfg config.FFmpeg, exec executor.Executor, log logger.Logger) Converter {
	return &implConverter{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
