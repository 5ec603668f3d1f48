package llm

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Client abstracts LLM providers: a prompt goes in, free-form text comes out.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ClientFunc adapts a plain function to Client.
type ClientFunc func(ctx context.Context, prompt string) (string, error)

// Generate calls f.
func (f ClientFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// ErrEmptyResponse is returned by providers when the model produced no text.
var ErrEmptyResponse = errors.New("llm returned empty response")

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Config is the explicit provider configuration handed to a provider constructor.
type Config struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
	Timeout  time.Duration
}

// Configured reports whether the provider has the credentials it needs.
func (c Config) Configured() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// NormalizeProvider maps user input onto a known provider name, defaulting to Gemini.
func NormalizeProvider(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case ProviderOpenAI:
		return ProviderOpenAI
	default:
		return ProviderGemini
	}
}

// DefaultModel returns the model used when none is configured.
func DefaultModel(provider string) string {
	if NormalizeProvider(provider) == ProviderOpenAI {
		return "gpt-4o-mini"
	}
	return "gemini-2.5-flash"
}

// APIKeyEnv names the environment variable holding the provider's API key.
func APIKeyEnv(provider string) string {
	if NormalizeProvider(provider) == ProviderOpenAI {
		return "OPENAI_API_KEY"
	}
	return "GOOGLE_API_KEY"
}
