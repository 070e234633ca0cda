package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"recap/internal/rename"
	"recap/internal/transcript"
)

// Process runs the full pipeline on one recording: convert, diarize,
// transcribe, refine, summarize, and optionally rename. Per-stage details
// are in the stage methods below.
func (p *implProcessor) Process(ctx context.Context, inputPath string, opts Options) (Outcome, error) {
	startTime := time.Now()

	if _, err := os.Stat(inputPath); err != nil {
		return OutcomeProcessed, fmt.Errorf("input file: %w", err)
	}
	if opts.Rename {
		opts.Summary = true
	}

	paths := DerivePaths(inputPath)
	p.logger.Info(ctx, "Processing: %s", inputPath)

	if !opts.Force && exists(paths.CleanTranscript) && exists(paths.Summary) {
		p.logger.Info(ctx, "Clean transcript and summary already exist. Use --force to overwrite.")
		return OutcomeSkipped, nil
	}

	raw, err := p.loadOrGenerateTranscript(ctx, inputPath, paths, opts)
	if err != nil {
		return OutcomeProcessed, err
	}

	lines := transcript.Parse(raw)
	if err := transcript.WriteSRT(lines, paths.SRT); err != nil {
		return OutcomeProcessed, err
	}
	p.logger.Info(ctx, "SRT subtitles saved to: %s", paths.SRT)

	refined := raw
	if opts.NoRefine {
		p.logger.Info(ctx, "Skipping transcript refinement")
	} else {
		refined = p.text.RefineTranscript(ctx, raw)
	}
	if err := os.WriteFile(paths.CleanTranscript, []byte(refined), 0644); err != nil {
		return OutcomeProcessed, fmt.Errorf("write clean transcript: %w", err)
	}
	p.logger.Info(ctx, "Clean transcript: %s", paths.CleanTranscript)

	var summary string
	if opts.Summary {
		summary = p.text.Summarize(ctx, refined)
		if err := os.WriteFile(paths.Summary, []byte(summary), 0644); err != nil {
			return OutcomeProcessed, fmt.Errorf("write summary: %w", err)
		}
		p.logger.Info(ctx, "Summary: %s", paths.Summary)
	}

	if opts.Docx {
		if err := exportDocx(paths.Base, summary, refined, paths.Docx); err != nil {
			p.logger.Warn(ctx, "Failed to export docx: %v", err)
		} else {
			p.logger.Info(ctx, "Docx export: %s", paths.Docx)
		}
	}

	if opts.Rename {
		p.renameFromSummary(ctx, inputPath, paths, summary, opts.RenamePrefix)
	}

	p.logger.Info(ctx, "Processing completed in %s", time.Since(startTime).Truncate(time.Second))
	return OutcomeProcessed, nil
}

// loadOrGenerateTranscript reuses an existing raw transcript when present;
// otherwise it converts the audio, diarizes it, and transcribes each turn.
func (p *implProcessor) loadOrGenerateTranscript(ctx context.Context, inputPath string, paths Paths, opts Options) (string, error) {
	if exists(paths.RawTranscript) {
		p.logger.Info(ctx, "Found existing raw transcript at %s, skipping audio conversion, diarization, and transcription.", paths.RawTranscript)
		data, err := os.ReadFile(paths.RawTranscript)
		if err != nil {
			return "", fmt.Errorf("read raw transcript: %w", err)
		}
		return string(data), nil
	}

	audioPath, temp, err := p.converter.EnsureWAVMono16k(ctx, inputPath)
	if err != nil {
		return "", err
	}
	if temp {
		defer func() {
			if err := os.Remove(audioPath); err != nil {
				p.logger.Warn(ctx, "Failed to remove temporary audio %s: %v", audioPath, err)
			} else {
				p.logger.Debug(ctx, "Deleted temporary file: %s", audioPath)
			}
		}()
	}

	turns, err := p.diarizer.Diarize(ctx, audioPath)
	if err != nil {
		return "", err
	}
	p.logger.Info(ctx, "Found %d segments to transcribe.", len(turns))

	var lines []transcript.Line
	for i, turn := range turns {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		p.logger.Debug(ctx, "Transcribing segment %d of %d...", i+1, len(turns))

		segPath, err := p.converter.CutSegment(ctx, audioPath, turn.Start, turn.End)
		if err != nil {
			p.logger.Error(ctx, "Error cutting segment %d: %v", i+1, err)
			continue
		}

		text, err := p.stt.Transcribe(ctx, segPath, opts.Language)
		if rmErr := os.Remove(segPath); rmErr != nil {
			p.logger.Warn(ctx, "Failed to remove segment file %s: %v", segPath, rmErr)
		}
		if err != nil {
			p.logger.Error(ctx, "Error transcribing segment %d: %v", i+1, err)
			continue
		}
		if text == "" {
			continue
		}

		line := transcript.Line{Speaker: turn.Speaker, Start: turn.Start, End: turn.End, Text: text}
		lines = append(lines, line)
		p.logger.Debug(ctx, "%s", line.Format())
	}
	p.logger.Info(ctx, "Transcription done, %d non-empty segments", len(lines))

	raw := transcript.Join(lines)
	if err := os.WriteFile(paths.RawTranscript, []byte(raw), 0644); err != nil {
		return "", fmt.Errorf("write raw transcript: %w", err)
	}
	return raw, nil
}

// renameFromSummary renames the recording and its outputs to
// "<prefix>_<topic>" where prefix is a supplied string or a date pulled
// from the original name. Collisions are logged and left alone.
func (p *implProcessor) renameFromSummary(ctx context.Context, inputPath string, paths Paths, summary, prefix string) {
	if prefix == "" {
		prefix = rename.DateFrom(paths.Base, time.Now())
	}

	topic := rename.Sanitize(p.text.FilenameSummary(ctx, summary))
	if topic == "" {
		topic = "recording"
	}
	newBase := prefix + "_" + topic

	ext := filepath.Ext(inputPath)
	newInputPath := filepath.Join(paths.Dir, newBase+ext)
	if err := rename.Safe(inputPath, newInputPath); err != nil {
		p.logger.Warn(ctx, "Skipping media rename: %v", err)
	} else {
		p.logger.Info(ctx, "Renamed recording: %s -> %s", inputPath, newInputPath)
	}

	newPaths := paths.WithBase(newBase)
	for _, pair := range paths.Pairs(newPaths) {
		err := rename.Safe(pair[0], pair[1])
		switch {
		case err == nil:
			p.logger.Info(ctx, "Renamed: %s -> %s", pair[0], pair[1])
		case errors.Is(err, rename.ErrSourceMissing):
			// Optional outputs (docx, summary) may not exist.
			p.logger.Debug(ctx, "Skipping rename: %v", err)
		default:
			p.logger.Warn(ctx, "Skipping rename: %v", err)
		}
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
