package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"github.com/Sjking2025/resume-builder-pro/internal/llm"
	"github.com/Sjking2025/resume-builder-pro/internal/shared/telemetry"
)

// Client implements llm.Client on the Gemini API.
type Client struct {
	inner *genai.Client
	model string
}

// NewClient constructs a Gemini client from an explicit configuration.
func NewClient(ctx context.Context, cfg llm.Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("GOOGLE_API_KEY is required")
	}
	if strings.TrimSpace(cfg.Model) == "" {
		return nil, fmt.Errorf("LLM_MODEL is required for Gemini")
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = cfg.BaseURL
	}
	if cfg.Timeout > 0 {
		clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	inner, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &Client{inner: inner, model: cfg.Model}, nil
}

// Generate sends the prompt as a single user turn and returns the concatenated reply text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	result, err := c.inner.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			switch apiErr.Code {
			case http.StatusUnauthorized, http.StatusForbidden:
				return "", fmt.Errorf("gemini authentication failed (%d): %w", apiErr.Code, err)
			case http.StatusBadRequest:
				return "", fmt.Errorf("gemini invalid input (400): %w", err)
			}
		}
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	fields := map[string]any{
		"provider": llm.ProviderGemini,
		"model":    c.model,
	}
	if usage := result.UsageMetadata; usage != nil {
		fields["prompt_tokens"] = usage.PromptTokenCount
		fields["completion_tokens"] = usage.CandidatesTokenCount
		fields["total_tokens"] = usage.TotalTokenCount
	}
	telemetry.Info("llm.response", fields)

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("gemini: %w", llm.ErrEmptyResponse)
	}
	return text, nil
}

var _ llm.Client = (*Client)(nil)
