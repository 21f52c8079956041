package completion

import (
	"context"
	"time"
)

// Result holds generated text and how long the provider took to produce it.
type Result struct {
	Text     string
	Duration time.Duration
}

// Completer generates a response to a prompt via a remote LLM API.
type Completer interface {
	Complete(ctx context.Context, prompt string) (Result, error)
}
