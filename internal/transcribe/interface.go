package transcribe

import "context"

// Transcriber converts a speech audio file into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath, language string) (string, error)
}
