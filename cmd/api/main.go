package main

import (
	"log"

	"github.com/Sjking2025/resume-builder-pro/internal/bootstrap"
	"github.com/Sjking2025/resume-builder-pro/internal/shared/config"
	"github.com/Sjking2025/resume-builder-pro/internal/shared/server"
	"github.com/Sjking2025/resume-builder-pro/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()
	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	addr := server.Addr(cfg.Port)
	telemetry.Info("server.start", map[string]any{
		"addr":       addr,
		"env":        cfg.Env,
		"provider":   cfg.LLM().Provider,
		"model":      cfg.LLM().Model,
		"configured": app.ImportService.Configured(),
	})

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
