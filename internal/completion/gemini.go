package completion

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/Silverls96/transcript-summarizer/internal/logger"
)

type implGemini struct {
	apiKey string
	model  string
	logger logger.Logger
}

func newGemini(apiKey, model string, log logger.Logger) Completer {
	return &implGemini{
		apiKey: apiKey,
		model:  model,
		logger: log,
	}
}

// Complete calls the Gemini API and concatenates the text parts of the
// first candidate.
func (c *implGemini) Complete(ctx context.Context, prompt string) (Result, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return Result{}, &CompletionError{Provider: c.model, Err: fmt.Errorf("create client: %w", err)}
	}

	start := time.Now()
	result, err := client.Models.GenerateContent(ctx, c.model, genai.Text(buildPrompt(prompt)), nil)
	if err != nil {
		return Result{}, &CompletionError{Provider: c.model, Err: err}
	}
	elapsed := time.Since(start)

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return Result{}, &CompletionError{Provider: c.model, Err: fmt.Errorf("empty response")}
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text.WriteString(part.Text)
		}
	}

	out := strings.TrimSpace(text.String())
	if out == "" {
		return Result{}, &CompletionError{Provider: c.model, Err: fmt.Errorf("empty response")}
	}

	c.logger.Debug(ctx, "Completion finished in %s (%d chars)", elapsed, len(out))

	return Result{Text: out, Duration: elapsed}, nil
}
