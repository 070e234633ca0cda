package llm

import "context"

// Request is one chat-completion call.
type Request struct {
	Model       string
	System      string
	Prompt      string
	Temperature float32
}

// Client is a chat-completion backend. Implementations must honor the
// context deadline; the retry wrapper relies on it.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
	Name() string
}
