package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Sjking2025/resume-builder-pro/internal/llm"
)

const (
	defaultMaxUploadBytes = 10 << 20
	defaultMinTextChars   = 50
	defaultLLMTimeout     = 120 * time.Second
)

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	Env             string
	LLMProvider     string
	LLMModel        string
	LLMBaseURL      string
	LLMTimeout      time.Duration
	GoogleAPIKey    string
	OpenAIAPIKey    string
	MaxUploadBytes  int64
	MinTextChars    int
	ObjectStoreType string
	LocalStoreDir   string
	AWSRegion       string
	S3Bucket        string
	S3Prefix        string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	return Config{
		Port:            getEnv("PORT", "8080"),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		Env:             normalizeEnv(getEnv("ENV", "dev")),
		LLMProvider:     llm.NormalizeProvider(getEnv("LLM_PROVIDER", llm.ProviderGemini)),
		LLMModel:        getEnv("LLM_MODEL", ""),
		LLMBaseURL:      getEnv("LLM_BASE_URL", ""),
		LLMTimeout:      getSeconds("LLM_TIMEOUT_SECONDS", defaultLLMTimeout),
		GoogleAPIKey:    getEnv("GOOGLE_API_KEY", ""),
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		MaxUploadBytes:  int64(getInt("MAX_UPLOAD_BYTES", defaultMaxUploadBytes)),
		MinTextChars:    getInt("IMPORT_MIN_TEXT_CHARS", defaultMinTextChars),
		ObjectStoreType: normalizeStoreType(getEnv("OBJECT_STORE", "local")),
		LocalStoreDir:   getEnv("LOCAL_STORE_DIR", "./data"),
		AWSRegion:       getEnv("AWS_REGION", ""),
		S3Bucket:        getEnv("S3_BUCKET", ""),
		S3Prefix:        getEnv("S3_PREFIX", ""),
	}
}

// LLM returns the model configuration for the selected provider.
func (c Config) LLM() llm.Config {
	provider := llm.NormalizeProvider(c.LLMProvider)
	key := c.GoogleAPIKey
	if provider == llm.ProviderOpenAI {
		key = c.OpenAIAPIKey
	}
	model := strings.TrimSpace(c.LLMModel)
	if model == "" {
		model = llm.DefaultModel(provider)
	}
	return llm.Config{
		Provider: provider,
		Model:    model,
		APIKey:   strings.TrimSpace(key),
		BaseURL:  strings.TrimSpace(c.LLMBaseURL),
		Timeout:  c.LLMTimeout,
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

func getSeconds(key string, def time.Duration) time.Duration {
	secs := getInt(key, 0)
	if secs == 0 {
		return def
	}
	return time.Duration(secs) * time.Second
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}
