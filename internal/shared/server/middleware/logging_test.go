package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Sjking2025/resume-builder-pro/internal/shared/telemetry"
)

func TestLoggingIncludesRequiredFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	telemetry.SetOutput(&buf)
	defer telemetry.SetOutput(os.Stdout)

	router := gin.New()
	router.Use(RequestID(), Logging())
	router.POST("/test", func(c *gin.Context) {
		c.Set(FileNameKey, "cv.pdf")
		c.Set(DocumentDigestKey, "abc123")
		c.Set(FallbackKey, false)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	req.Header.Set("X-Request-Id", "req-42")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	last := lines[len(lines)-1]
	var payload map[string]any
	if err := json.Unmarshal([]byte(last), &payload); err != nil {
		t.Fatalf("decode log json: %v", err)
	}

	required := []string{"request_id", "method", "path", "status", "duration_ms", "file_name", "document_sha256", "fallback"}
	for _, key := range required {
		if _, ok := payload[key]; !ok {
			t.Fatalf("missing log field: %s", key)
		}
	}
	if payload["msg"] != "request.complete" {
		t.Fatalf("unexpected msg: %v", payload["msg"])
	}
	if payload["request_id"] != "req-42" {
		t.Fatalf("unexpected request_id: %v", payload["request_id"])
	}
	if payload["file_name"] != "cv.pdf" {
		t.Fatalf("unexpected file_name: %v", payload["file_name"])
	}
}

func TestRequestIDGeneratedWhenMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestID())
	var seen string
	router.GET("/test", func(c *gin.Context) {
		seen = RequestIDFromContext(c)
		c.Status(http.StatusNoContent)
	})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/test", nil))

	header := resp.Header().Get("X-Request-Id")
	if header == "" || header != seen {
		t.Fatalf("expected generated request id in header and context, got header=%q ctx=%q", header, seen)
	}
	if len(header) != 36 {
		t.Fatalf("expected uuid request id, got %q", header)
	}
}
