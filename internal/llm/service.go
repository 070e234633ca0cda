package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"recap/internal/config"
	"recap/internal/logger"
	"recap/internal/transcript"
)

// Service runs the three text-generation tasks of the pipeline. Every
// method degrades to a fallback instead of returning an error: a failed
// refinement keeps the raw text, a failed summary becomes a placeholder,
// a failed filename suggestion becomes "recording".
type Service struct {
	client Client
	cfg    config.LLM
	logger logger.Logger
}

// NewClient builds the configured chat-completion backend.
func NewClient(cfg config.LLM) (Client, error) {
	switch cfg.Provider {
	case "openai":
		return NewOpenAI(cfg.OpenAIKey)
	case "gemini":
		return NewGemini(cfg.GeminiKeys, cfg.GeminiModel)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}

// NewService creates a Service on top of the given client.
func NewService(client Client, cfg config.LLM, log logger.Logger) *Service {
	return &Service{client: client, cfg: cfg, logger: log}
}

// RefineTranscript cleans up a raw transcript chunk by chunk: punctuation,
// filler removal, common mistranscriptions. Chunks that fail to refine are
// kept verbatim.
func (s *Service) RefineTranscript(ctx context.Context, raw string) string {
	chunks := transcript.SplitChunks(raw, s.cfg.MaxChunkChars)
	if len(chunks) > 1 {
		s.logger.Info(ctx, "Transcript is long (%d chars), refining in %d chunks", len(raw), len(chunks))
	}

	refined := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		if len(chunks) > 1 {
			s.logger.Info(ctx, "Refining chunk %d of %d...", i+1, len(chunks))
		}
		lang := transcript.DetectLanguage(chunk)
		req := refineRequest(s.cfg.RefineModel, lang, chunk)
		refined = append(refined, generateWithRetry(ctx, s.logger, s.client, req, seconds(s.cfg.RefineTimeouts), chunk))
	}

	return strings.Join(refined, "\n\n")
}

// Summarize produces the long-form summary of a refined transcript.
func (s *Service) Summarize(ctx context.Context, refined string) string {
	lang := transcript.DetectLanguage(refined)
	req := summaryRequest(s.cfg.SummaryModel, lang, refined)
	fallback := fmt.Sprintf("Summary of transcript with %d characters.", len(refined))
	return generateWithRetry(ctx, s.logger, s.client, req, seconds(s.cfg.SummaryTimeouts), fallback)
}

// FilenameSummary asks for a one-line topic suitable as a file name.
// Single attempt with a short timeout; naming is not worth a long wait.
func (s *Service) FilenameSummary(ctx context.Context, summary string) string {
	lang := transcript.DetectLanguage(summary)
	req := filenameRequest(s.cfg.FilenameModel, lang, summary)
	timeouts := []time.Duration{time.Duration(s.cfg.FilenameTimeout) * time.Second}
	return generateWithRetry(ctx, s.logger, s.client, req, timeouts, "recording")
}

func seconds(xs []int) []time.Duration {
	ds := make([]time.Duration, len(xs))
	for i, x := range xs {
		ds[i] = time.Duration(x) * time.Second
	}
	return ds
}
