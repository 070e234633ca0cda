package pipeline

import "context"

// Outcome reports what Process did with a file.
type Outcome int

const (
	// OutcomeProcessed means outputs were (re)generated.
	OutcomeProcessed Outcome = iota
	// OutcomeSkipped means the outputs already existed and no force flag
	// was given.
	OutcomeSkipped
)

func (o Outcome) String() string {
	if o == OutcomeSkipped {
		return "skipped"
	}
	return "processed"
}

// Options selects the optional pipeline stages for one run.
type Options struct {
	// Language forces the transcription language ("en" or "zh");
	// "auto" lets whisper decide.
	Language string

	// Force regenerates outputs even when they already exist.
	Force bool

	// NoRefine skips the LLM cleanup pass; the refined transcript is a
	// copy of the raw one.
	NoRefine bool

	// Summary generates the long-form summary. Implied by Rename.
	Summary bool

	// Rename renames the recording and its outputs from the summary.
	Rename bool

	// RenamePrefix overrides the date prefix used for renaming.
	RenamePrefix string

	// Docx additionally exports summary and transcript as a .docx.
	Docx bool
}

// TextService is the LLM-backed text generation the pipeline needs. All
// methods fall back to a usable value instead of failing.
type TextService interface {
	RefineTranscript(ctx context.Context, raw string) string
	Summarize(ctx context.Context, refined string) string
	FilenameSummary(ctx context.Context, summary string) string
}

// Processor runs the transcription pipeline on one recording.
type Processor interface {
	Process(ctx context.Context, inputPath string, opts Options) (Outcome, error)
}
