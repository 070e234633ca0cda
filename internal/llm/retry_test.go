package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"recap/internal/config"
	"recap/internal/logger"
)

// fakeClient fails a fixed number of times before succeeding, recording
// the deadline of every attempt.
type fakeClient struct {
	failures  int
	response  string
	calls     int
	deadlines []time.Duration
	started   time.Time
}

func (f *fakeClient) Name() string { return "fake" }

func (f *fakeClient) Complete(ctx context.Context, req Request) (string, error) {
	f.calls++
	if dl, ok := ctx.Deadline(); ok {
		f.deadlines = append(f.deadlines, dl.Sub(f.started).Round(time.Second))
	}
	if f.calls <= f.failures {
		return "", errors.New("simulated failure")
	}
	return f.response, nil
}

func newFake(failures int, response string) *fakeClient {
	return &fakeClient{failures: failures, response: response, started: time.Now()}
}

var testTimeouts = []time.Duration{2 * time.Second, 3 * time.Second, 4 * time.Second}

func TestRetryReturnsFallbackAfterAllFailures(t *testing.T) {
	client := newFake(3, "never returned")
	log := logger.New("error")

	got := generateWithRetry(context.Background(), log, client, Request{Model: "m"}, testTimeouts, "the fallback")
	if got != "the fallback" {
		t.Errorf("got %q, want fallback", got)
	}
	if client.calls != 3 {
		t.Errorf("calls = %d, want 3", client.calls)
	}
}

func TestRetrySucceedsMidSchedule(t *testing.T) {
	client := newFake(1, "cleaned text")
	log := logger.New("error")

	got := generateWithRetry(context.Background(), log, client, Request{Model: "m"}, testTimeouts, "fallback")
	if got != "cleaned text" {
		t.Errorf("got %q, want response", got)
	}
	if client.calls != 2 {
		t.Errorf("calls = %d, want 2", client.calls)
	}
}

func TestRetryTimeoutsEscalate(t *testing.T) {
	client := newFake(3, "")
	log := logger.New("error")

	generateWithRetry(context.Background(), log, client, Request{Model: "m"}, testTimeouts, "fb")

	if len(client.deadlines) != 3 {
		t.Fatalf("recorded %d deadlines, want 3", len(client.deadlines))
	}
	for i := 1; i < len(client.deadlines); i++ {
		if client.deadlines[i] <= client.deadlines[i-1] {
			t.Errorf("deadlines not increasing: %v", client.deadlines)
		}
	}
}

func TestRetryStopsOnCanceledContext(t *testing.T) {
	client := newFake(0, "should not be used")
	log := logger.New("error")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := generateWithRetry(ctx, log, client, Request{Model: "m"}, testTimeouts, "fb")
	if got != "fb" {
		t.Errorf("got %q, want fallback on canceled context", got)
	}
	if client.calls != 0 {
		t.Errorf("calls = %d, want 0", client.calls)
	}
}

func TestServiceRefineFallsBackToRawChunk(t *testing.T) {
	cfg := config.Default().LLM
	cfg.RefineTimeouts = []int{1, 1, 1}
	client := newFake(99, "")

	svc := NewService(client, cfg, logger.New("error"))
	raw := "Speaker 00: [0.00-1.00] um hello there"
	if got := svc.RefineTranscript(context.Background(), raw); got != raw {
		t.Errorf("refine fallback = %q, want raw transcript", got)
	}
}

func TestServiceRefineChunksLongTranscript(t *testing.T) {
	cfg := config.Default().LLM
	cfg.MaxChunkChars = 10
	cfg.RefineTimeouts = []int{1}
	client := newFake(0, "refined")

	svc := NewService(client, cfg, logger.New("error"))
	svc.RefineTranscript(context.Background(), "aaaaaaaaaabbbbbbbbbbcc")
	if client.calls != 3 {
		t.Errorf("calls = %d, want 3 chunks", client.calls)
	}
}

func TestServiceSummaryPlaceholderFallback(t *testing.T) {
	cfg := config.Default().LLM
	cfg.SummaryTimeouts = []int{1}
	client := newFake(99, "")

	svc := NewService(client, cfg, logger.New("error"))
	got := svc.Summarize(context.Background(), "some text")
	want := "Summary of transcript with 9 characters."
	if got != want {
		t.Errorf("summary fallback = %q, want %q", got, want)
	}
}

func TestServiceFilenameFallback(t *testing.T) {
	cfg := config.Default().LLM
	cfg.FilenameTimeout = 1
	client := newFake(99, "")

	svc := NewService(client, cfg, logger.New("error"))
	if got := svc.FilenameSummary(context.Background(), "whatever"); got != "recording" {
		t.Errorf("filename fallback = %q, want recording", got)
	}
	if client.calls != 1 {
		t.Errorf("calls = %d, want single attempt", client.calls)
	}
}

func TestNewClientUnknownProvider(t *testing.T) {
	cfg := config.LLM{Provider: "other"}
	if _, err := NewClient(cfg); err == nil {
		t.Error("expected error for unknown provider")
	}
}
