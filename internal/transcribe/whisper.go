package transcribe

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"recap/internal/config"
	"recap/internal/logger"
	"recap/pkg/executor"
)

type implTranscriber struct {
	cfg      config.Whisper
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Transcriber backed by the whisper.cpp CLI.
func New(cfg config.Whisper, exec executor.Executor, log logger.Logger) Transcriber {
	return &implTranscriber{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}

// Transcribe runs whisper.cpp on one audio file and returns the plain
// text. Forcing the language prevents hallucinated language switches on
// short segments.
//
// -nt drops timestamps so stdout is just the recognized text; segment
// timing comes from diarization, not from whisper.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath, language string) (string, error) {
	args := []string{
		"-m", t.cfg.ModelPath,
		"-f", audioPath,
		"-t", strconv.Itoa(t.cfg.Threads),
		"-bo", strconv.Itoa(t.cfg.BestOf),
		"-nt",
	}
	if language != "" && language != "auto" {
		args = append(args, "-l", language)
	}

	out, err := t.executor.Execute(ctx, t.cfg.BinaryPath, args...)
	if err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	return collapseWhitespace(out), nil
}

// collapseWhitespace joins whisper's output lines into one space-separated
// string.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
