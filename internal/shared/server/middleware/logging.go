package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sjking2025/resume-builder-pro/internal/shared/telemetry"
)

// Context keys handlers may set to enrich the request log line.
const (
	FileNameKey       = "fileName"
	DocumentDigestKey = "documentDigest"
	FallbackKey       = "importFallback"
)

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		fields := map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": float64(latency.Microseconds()) / 1000.0,
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		}
		if v, ok := c.Get(FileNameKey); ok {
			fields["file_name"] = v
		}
		if v, ok := c.Get(DocumentDigestKey); ok {
			fields["document_sha256"] = v
		}
		if v, ok := c.Get(FallbackKey); ok {
			fields["fallback"] = v
		}
		telemetry.Info("request.complete", fields)
	}
}
