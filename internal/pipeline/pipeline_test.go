package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"recap/internal/diarize"
	"recap/internal/logger"
)

type fakeConverter struct {
	converted int
	cuts      int
}

func (f *fakeConverter) EnsureWAVMono16k(ctx context.Context, inputPath string) (string, bool, error) {
	f.converted++
	path := strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + "_16k_mono.wav"
	if err := os.WriteFile(path, []byte("wav"), 0644); err != nil {
		return "", false, err
	}
	return path, true, nil
}

func (f *fakeConverter) CutSegment(ctx context.Context, audioPath string, start, end float64) (string, error) {
	f.cuts++
	path := filepath.Join(filepath.Dir(audioPath), "seg.wav")
	if err := os.WriteFile(path, []byte("seg"), 0644); err != nil {
		return "", err
	}
	return path, nil
}

func (f *fakeConverter) Downscale480p(ctx context.Context, inputPath, outputPath string) error {
	return nil
}

type fakeDiarizer struct {
	turns []diarize.Turn
}

func (f *fakeDiarizer) Diarize(ctx context.Context, audioPath string) ([]diarize.Turn, error) {
	return f.turns, nil
}

type fakeSTT struct {
	texts []string
	calls int
}

func (f *fakeSTT) Transcribe(ctx context.Context, audioPath, language string) (string, error) {
	text := f.texts[f.calls%len(f.texts)]
	f.calls++
	return text, nil
}

type fakeText struct {
	refined  string
	summary  string
	filename string

	refineCalls  int
	summaryCalls int
}

func (f *fakeText) RefineTranscript(ctx context.Context, raw string) string {
	f.refineCalls++
	return f.refined
}

func (f *fakeText) Summarize(ctx context.Context, refined string) string {
	f.summaryCalls++
	return f.summary
}

func (f *fakeText) FilenameSummary(ctx context.Context, summary string) string {
	return f.filename
}

func newTestProcessor(conv *fakeConverter, text *fakeText) Processor {
	diar := &fakeDiarizer{turns: []diarize.Turn{
		{Speaker: "00", Start: 0, End: 1.5},
		{Speaker: "01", Start: 1.5, End: 3},
	}}
	stt := &fakeSTT{texts: []string{"hello", "world"}}
	return New(conv, diar, stt, text, logger.New("error"))
}

func writeInput(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("video"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestProcessGeneratesOutputs(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "meeting.mp4")

	conv := &fakeConverter{}
	text := &fakeText{refined: "REFINED", summary: "SUMMARY"}
	proc := newTestProcessor(conv, text)

	outcome, err := proc.Process(context.Background(), input, Options{Summary: true})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if outcome != OutcomeProcessed {
		t.Errorf("outcome = %v, want processed", outcome)
	}

	paths := DerivePaths(input)

	raw, err := os.ReadFile(paths.RawTranscript)
	if err != nil {
		t.Fatalf("raw transcript missing: %v", err)
	}
	wantRaw := "Speaker 00: [0.00-1.50] hello\nSpeaker 01: [1.50-3.00] world"
	if string(raw) != wantRaw {
		t.Errorf("raw transcript = %q, want %q", raw, wantRaw)
	}

	srt, err := os.ReadFile(paths.SRT)
	if err != nil {
		t.Fatalf("srt missing: %v", err)
	}
	if !strings.Contains(string(srt), "00:00:01,500 --> 00:00:03,000") {
		t.Errorf("srt content = %q", srt)
	}

	clean, err := os.ReadFile(paths.CleanTranscript)
	if err != nil || string(clean) != "REFINED" {
		t.Errorf("clean transcript = %q, %v", clean, err)
	}

	summary, err := os.ReadFile(paths.Summary)
	if err != nil || string(summary) != "SUMMARY" {
		t.Errorf("summary = %q, %v", summary, err)
	}

	// Temporary converted audio must be gone.
	if _, err := os.Stat(filepath.Join(dir, "meeting_16k_mono.wav")); err == nil {
		t.Error("temporary audio file was not cleaned up")
	}
	if conv.cuts != 2 {
		t.Errorf("cuts = %d, want 2", conv.cuts)
	}
}

func TestProcessIdempotentWithoutForce(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "meeting.mp4")
	paths := DerivePaths(input)

	if err := os.WriteFile(paths.CleanTranscript, []byte("old clean"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(paths.Summary, []byte("old summary"), 0644); err != nil {
		t.Fatal(err)
	}

	conv := &fakeConverter{}
	text := &fakeText{refined: "NEW"}
	proc := newTestProcessor(conv, text)

	outcome, err := proc.Process(context.Background(), input, Options{Summary: true})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if outcome != OutcomeSkipped {
		t.Errorf("outcome = %v, want skipped", outcome)
	}
	if conv.converted != 0 || text.refineCalls != 0 {
		t.Error("skipped run should not touch converter or LLM")
	}

	clean, _ := os.ReadFile(paths.CleanTranscript)
	if string(clean) != "old clean" {
		t.Errorf("existing output modified: %q", clean)
	}
}

func TestProcessForceRegenerates(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "meeting.mp4")
	paths := DerivePaths(input)

	if err := os.WriteFile(paths.CleanTranscript, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(paths.Summary, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	text := &fakeText{refined: "NEW", summary: "NEW SUMMARY"}
	proc := newTestProcessor(&fakeConverter{}, text)

	outcome, err := proc.Process(context.Background(), input, Options{Summary: true, Force: true})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if outcome != OutcomeProcessed {
		t.Errorf("outcome = %v, want processed", outcome)
	}

	clean, _ := os.ReadFile(paths.CleanTranscript)
	if string(clean) != "NEW" {
		t.Errorf("clean transcript = %q, want NEW", clean)
	}
}

func TestProcessReusesRawTranscript(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "meeting.mp4")
	paths := DerivePaths(input)

	raw := "Speaker 00: [0.00-1.00] reused"
	if err := os.WriteFile(paths.RawTranscript, []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	conv := &fakeConverter{}
	text := &fakeText{refined: "R"}
	proc := newTestProcessor(conv, text)

	if _, err := proc.Process(context.Background(), input, Options{NoRefine: true}); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if conv.converted != 0 || conv.cuts != 0 {
		t.Error("existing raw transcript should skip conversion and cutting")
	}

	clean, _ := os.ReadFile(paths.CleanTranscript)
	if string(clean) != raw {
		t.Errorf("no-refine clean transcript = %q, want raw", clean)
	}
}

func TestProcessRename(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "rec_2021-12-21.mp4")

	text := &fakeText{refined: "R", summary: "S", filename: "weekly sync"}
	proc := newTestProcessor(&fakeConverter{}, text)

	if _, err := proc.Process(context.Background(), input, Options{Rename: true}); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	// Rename implies summary.
	if text.summaryCalls != 1 {
		t.Errorf("summaryCalls = %d, want 1", text.summaryCalls)
	}

	renamed := filepath.Join(dir, "2021-12-21_weekly_sync.mp4")
	if _, err := os.Stat(renamed); err != nil {
		t.Errorf("renamed media missing: %v", err)
	}
	if _, err := os.Stat(input); err == nil {
		t.Error("original media still present after rename")
	}
	if _, err := os.Stat(filepath.Join(dir, "2021-12-21_weekly_sync.srt")); err != nil {
		t.Errorf("renamed srt missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "2021-12-21_weekly_sync.speakers.summary.txt")); err != nil {
		t.Errorf("renamed summary missing: %v", err)
	}
}

func TestProcessRenameDoesNotOverwrite(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "rec_2021-12-21.mp4")
	occupied := writeInput(t, dir, "2021-12-21_weekly_sync.mp4")

	text := &fakeText{refined: "R", summary: "S", filename: "weekly sync"}
	proc := newTestProcessor(&fakeConverter{}, text)

	if _, err := proc.Process(context.Background(), input, Options{Rename: true}); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	// Both files intact: the rename target existed.
	if _, err := os.Stat(input); err != nil {
		t.Errorf("input should be untouched: %v", err)
	}
	data, _ := os.ReadFile(occupied)
	if string(data) != "video" {
		t.Errorf("occupied target modified: %q", data)
	}
}

func TestProcessRenameCustomPrefix(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "rec.mp4")

	text := &fakeText{refined: "R", summary: "S", filename: "standup"}
	proc := newTestProcessor(&fakeConverter{}, text)

	opts := Options{Rename: true, RenamePrefix: "teamA"}
	if _, err := proc.Process(context.Background(), input, opts); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "teamA_standup.mp4")); err != nil {
		t.Errorf("prefixed rename missing: %v", err)
	}
}

func TestProcessMissingInput(t *testing.T) {
	proc := newTestProcessor(&fakeConverter{}, &fakeText{})
	if _, err := proc.Process(context.Background(), filepath.Join(t.TempDir(), "nope.mp4"), Options{}); err == nil {
		t.Error("expected error for missing input")
	}
}
