package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/Sjking2025/resume-builder-pro/internal/llm"
	"github.com/Sjking2025/resume-builder-pro/internal/shared/telemetry"
)

// Client implements llm.Client using OpenAI-compatible chat completions.
type Client struct {
	inner *goopenai.Client
	model string
}

// NewClient constructs a new OpenAI client from an explicit configuration.
func NewClient(cfg llm.Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if strings.TrimSpace(cfg.Model) == "" {
		return nil, fmt.Errorf("LLM_MODEL is required for OpenAI")
	}
	transportCfg := goopenai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		transportCfg.BaseURL = cfg.BaseURL
	}
	if cfg.Timeout > 0 {
		transportCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		inner: goopenai.NewClientWithConfig(transportCfg),
		model: cfg.Model,
	}, nil
}

// Generate sends the prompt as a single user message and returns the reply text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.inner.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: c.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return "", fmt.Errorf("openai request timeout: %w", err)
		}
		return "", fmt.Errorf("openai: %w", err)
	}
	logUsage(c.model, resp.Usage)

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai response missing choices: %w", llm.ErrEmptyResponse)
	}
	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("openai: %w", llm.ErrEmptyResponse)
	}
	return content, nil
}

func logUsage(model string, usage goopenai.Usage) {
	telemetry.Info("llm.response", map[string]any{
		"provider":          llm.ProviderOpenAI,
		"model":             model,
		"prompt_tokens":     usage.PromptTokens,
		"completion_tokens": usage.CompletionTokens,
		"total_tokens":      usage.TotalTokens,
	})
}

var _ llm.Client = (*Client)(nil)
