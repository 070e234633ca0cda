package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// EnsureWAVMono16k converts the input to mono 16 kHz WAV, the format the
// diarization and transcription tools expect. A WAV that already has the
// right channel count and sample rate is returned unchanged.
func (c *implConverter) EnsureWAVMono16k(ctx context.Context, inputPath string) (string, bool, error) {
	if strings.EqualFold(filepath.Ext(inputPath), ".wav") {
		ok, err := IsWAVMono16k(inputPath)
		if err != nil {
			c.logger.Warn(ctx, "Could not check WAV format of %s: %v", inputPath, err)
		} else if ok {
			return inputPath, false, nil
		}
	}

	outPath := strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + "_16k_mono.wav"
	c.logger.Info(ctx, "Converting %s to mono 16kHz WAV...", inputPath)

	args := []string{
		"-y",
		"-i", inputPath,
		"-ar", "16000",
		"-ac", "1",
		outPath,
	}
	if _, err := c.executor.Execute(ctx, c.cfg.BinaryPath, args...); err != nil {
		return "", false, fmt.Errorf("ffmpeg convert audio: %w", err)
	}

	return outPath, true, nil
}

// CutSegment extracts one diarized turn into its own WAV so whisper can
// transcribe it in isolation.
func (c *implConverter) CutSegment(ctx context.Context, audioPath string, start, end float64) (string, error) {
	if end <= start {
		return "", fmt.Errorf("invalid segment range [%f-%f]", start, end)
	}

	segPath := filepath.Join(os.TempDir(), fmt.Sprintf("segment-%s.wav", uuid.NewString()))

	args := []string{
		"-y",
		"-i", audioPath,
		"-ss", fmt.Sprintf("%.3f", start),
		"-to", fmt.Sprintf("%.3f", end),
		"-c:a", "pcm_s16le",
		segPath,
	}
	if _, err := c.executor.Execute(ctx, c.cfg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("ffmpeg cut segment: %w", err)
	}

	return segPath, nil
}
