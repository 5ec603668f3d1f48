package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sjking2025/resume-builder-pro/internal/exports"
	"github.com/Sjking2025/resume-builder-pro/internal/imports"
	"github.com/Sjking2025/resume-builder-pro/internal/services/health"
	"github.com/Sjking2025/resume-builder-pro/internal/shared/config"
	"github.com/Sjking2025/resume-builder-pro/internal/shared/metrics"
	"github.com/Sjking2025/resume-builder-pro/internal/shared/server/middleware"
	"github.com/Sjking2025/resume-builder-pro/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config        config.Config
	ImportHandler *imports.Handler
	ExportHandler *exports.Handler
	Health        *health.Service
}

var endpoints = []string{
	"GET /health",
	"GET /api/ai/health",
	"POST /api/ai/import-resume",
	"POST /api/pdf/export",
	"GET /metrics",
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	healthHandler := func(c *gin.Context) {
		respond.OK(c, deps.Health.Status())
	}

	r.GET("/", func(c *gin.Context) {
		respond.OK(c, gin.H{
			"message":   "Resume Builder Backend API",
			"endpoints": endpoints,
		})
	})
	r.GET("/health", healthHandler)
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	api.GET("/ai/health", healthHandler)
	if deps.ImportHandler != nil {
		deps.ImportHandler.RegisterRoutes(api)
	}
	if deps.ExportHandler != nil {
		deps.ExportHandler.RegisterRoutes(api)
	}

	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "not_found", "route not found", nil)
	})

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
