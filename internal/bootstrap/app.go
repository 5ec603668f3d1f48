package bootstrap

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Sjking2025/resume-builder-pro/internal/exports"
	"github.com/Sjking2025/resume-builder-pro/internal/extract"
	"github.com/Sjking2025/resume-builder-pro/internal/imports"
	"github.com/Sjking2025/resume-builder-pro/internal/llm"
	"github.com/Sjking2025/resume-builder-pro/internal/llm/gemini"
	"github.com/Sjking2025/resume-builder-pro/internal/llm/openai"
	"github.com/Sjking2025/resume-builder-pro/internal/services/health"
	"github.com/Sjking2025/resume-builder-pro/internal/shared/config"
	"github.com/Sjking2025/resume-builder-pro/internal/shared/server"
	"github.com/Sjking2025/resume-builder-pro/internal/shared/storage/object"
	localstore "github.com/Sjking2025/resume-builder-pro/internal/shared/storage/object/local"
	s3store "github.com/Sjking2025/resume-builder-pro/internal/shared/storage/object/s3"
	"github.com/Sjking2025/resume-builder-pro/internal/shared/telemetry"
)

// App holds shared dependencies and the wired router.
type App struct {
	Config        config.Config
	Router        *gin.Engine
	Model         llm.Client
	ImportService *imports.Service
	ImportHandler *imports.Handler
	ExportHandler *exports.Handler
	Health        *health.Service
}

// Option customizes Build.
type Option func(*options)

type options struct {
	model    llm.Client
	modelSet bool
}

// WithModel replaces the provider client built from configuration. A nil
// client leaves the service unconfigured.
func WithModel(model llm.Client) Option {
	return func(o *options) {
		o.model = model
		o.modelSet = true
	}
}

// Build prepares shared dependencies and wires routes.
func Build(cfg config.Config, opts ...Option) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	model := o.model
	if !o.modelSet {
		built, err := BuildModel(context.Background(), cfg.LLM())
		if err != nil {
			return nil, err
		}
		model = built
	}

	svc := &imports.Service{
		Extractor:    extract.Extractor{},
		Model:        model,
		MinTextChars: cfg.MinTextChars,
	}

	app := &App{
		Config:        cfg,
		Model:         model,
		ImportService: svc,
		ImportHandler: imports.NewHandler(svc, cfg.MaxUploadBytes, cfg.LLM().Provider),
		ExportHandler: exports.NewHandler(),
		Health:        health.NewService(cfg.LLM()),
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:        app.Config,
		ImportHandler: app.ImportHandler,
		ExportHandler: app.ExportHandler,
		Health:        app.Health,
	})

	return app, nil
}

// BuildModel constructs the provider client for cfg. It returns a nil client
// when no API key is configured.
func BuildModel(ctx context.Context, cfg llm.Config) (llm.Client, error) {
	if !cfg.Configured() {
		telemetry.Info("bootstrap.model_unconfigured", map[string]any{
			"provider": cfg.Provider,
			"key_env":  llm.APIKeyEnv(cfg.Provider),
		})
		return nil, nil
	}

	switch llm.NormalizeProvider(cfg.Provider) {
	case llm.ProviderOpenAI:
		client, err := openai.NewClient(cfg)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		client, err := gemini.NewClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return client, nil
	}
}

// BuildStore returns the object store selected by configuration.
func BuildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}
