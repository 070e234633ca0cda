package media

import "context"

// Converter wraps the external ffmpeg invocations the pipeline needs.
type Converter interface {
	// EnsureWAVMono16k returns a path to a mono 16 kHz WAV for the input.
	// temp reports whether the returned file was created by the call and
	// should be removed by the caller when done.
	EnsureWAVMono16k(ctx context.Context, inputPath string) (path string, temp bool, err error)

	// CutSegment extracts [start,end) seconds of audio into a temporary
	// WAV file and returns its path. The caller removes it.
	CutSegment(ctx context.Context, audioPath string, start, end float64) (string, error)

	// Downscale480p re-encodes a video to 480p at the given output path.
	Downscale480p(ctx context.Context, inputPath, outputPath string) error
}
