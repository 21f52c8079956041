package completion

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/Silverls96/transcript-summarizer/internal/config"
	"github.com/Silverls96/transcript-summarizer/internal/logger"
)

type implOpenAI struct {
	client *openai.Client
	model  string
	logger logger.Logger
}

func newOpenAI(cfg config.LLMConfig, log logger.Logger) Completer {
	var clientCfg openai.ClientConfig
	if cfg.APIVersion != "" {
		// An API version implies an Azure-style deployment
		clientCfg = openai.DefaultAzureConfig(cfg.APIKey, cfg.APIBase)
		clientCfg.APIVersion = cfg.APIVersion
	} else {
		clientCfg = openai.DefaultConfig(cfg.APIKey)
		if cfg.APIBase != "" {
			clientCfg.BaseURL = cfg.APIBase
		}
	}

	return &implOpenAI{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
		logger: log,
	}
}

// Complete sends the prompt as a single user message and returns the first
// choice's content.
func (c *implOpenAI) Complete(ctx context.Context, prompt string) (Result, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(prompt)},
		},
	}

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return Result{}, &CompletionError{Provider: c.model, Err: err}
	}
	elapsed := time.Since(start)

	if len(resp.Choices) == 0 {
		return Result{}, &CompletionError{Provider: c.model, Err: fmt.Errorf("response contains no choices")}
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	c.logger.Debug(ctx, "Completion finished in %s (%d chars)", elapsed, len(text))

	return Result{Text: text, Duration: elapsed}, nil
}
