package llm

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"
)

type geminiClient struct {
	apiKeys []string
	model   string

	// mu guards currentKey: watch runs handlers concurrently and they
	// all share one client.
	mu         sync.Mutex
	currentKey int
}

// NewGemini creates a Gemini client that rotates through the supplied API
// keys on quota errors. The configured Gemini model overrides the
// per-request model, which names an OpenAI default.
func NewGemini(apiKeys []string, model string) (Client, error) {
	if len(apiKeys) == 0 {
		return nil, fmt.Errorf("GEMINI_API_KEYS is not set")
	}
	return &geminiClient{apiKeys: apiKeys, model: model}, nil
}

func (c *geminiClient) Name() string { return "gemini" }

func (c *geminiClient) Complete(ctx context.Context, req Request) (string, error) {
	prompt := req.Prompt
	if req.System != "" {
		prompt = req.System + "\n\n" + prompt
	}

	attempts := len(c.apiKeys)
	var lastErr error

	for range attempts {
		key := c.key()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			c.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
		if err != nil {
			if isQuotaError(err) {
				c.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			if text = strings.TrimSpace(text); text != "" {
				return text, nil
			}
		}

		return "", fmt.Errorf("empty response from %s", c.model)
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (c *geminiClient) key() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.apiKeys[c.currentKey]
}

func (c *geminiClient) rotateKey() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentKey = (c.currentKey + 1) % len(c.apiKeys)
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED")
}
