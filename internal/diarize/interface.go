package diarize

import "context"

// Turn is one diarized speech segment attributed to a speaker.
type Turn struct {
	Speaker string
	Start   float64
	End     float64
}

// Diarizer assigns time-stamped speech segments to speaker identities.
type Diarizer interface {
	Diarize(ctx context.Context, audioPath string) ([]Turn, error)
}
