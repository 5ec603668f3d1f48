package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/Sjking2025/resume-builder-pro/internal/shared/server/respond"
	"github.com/Sjking2025/resume-builder-pro/internal/shared/telemetry"
)

// Recovery turns a panic into a 500 envelope. The panic log names the upload
// being processed, if any, so a document that crashes a decoder can be found again.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			fields := map[string]any{
				"request_id": RequestIDFromContext(c),
				"error":      rec,
				"stack":      string(debug.Stack()),
				"path":       c.Request.URL.Path,
				"method":     c.Request.Method,
			}
			if v, ok := c.Get(FileNameKey); ok {
				fields["file_name"] = v
			}
			if v, ok := c.Get(DocumentDigestKey); ok {
				fields["document_sha256"] = v
			}
			telemetry.Error("panic", fields)
			respond.Error(c, http.StatusInternalServerError, "internal", "Unexpected server error", nil)
		}()
		c.Next()
	}
}
