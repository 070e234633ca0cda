package media

import (
	"context"
	"fmt"
)

// Downscale480p re-encodes a large recording at 480p so it is cheap to
// keep around and fast to transcribe.
func (c *implConverter) Downscale480p(ctx context.Context, inputPath, outputPath string) error {
	c.logger.Info(ctx, "Converting: %s -> %s", inputPath, outputPath)

	args := []string{
		"-i", inputPath,
		"-vf", "scale=640:480",
		"-c:v", "libx264",
		"-crf", "23",
		"-c:a", "aac",
		outputPath,
	}
	if _, err := c.executor.Execute(ctx, c.cfg.BinaryPath, args...); err != nil {
		return fmt.Errorf("ffmpeg downscale: %w", err)
	}

	return nil
}
