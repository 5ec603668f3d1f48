package imports

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sjking2025/resume-builder-pro/internal/llm"
	"github.com/Sjking2025/resume-builder-pro/internal/shared/metrics"
	"github.com/Sjking2025/resume-builder-pro/internal/shared/server/middleware"
	"github.com/Sjking2025/resume-builder-pro/internal/shared/server/respond"
	"github.com/Sjking2025/resume-builder-pro/internal/shared/util"
)

// multipartOverhead leaves room for form boundaries and headers around the file.
const multipartOverhead = 1 << 20

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc            *Service
	MaxUploadBytes int64
	Provider       string
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxUploadBytes int64, provider string) *Handler {
	return &Handler{Svc: svc, MaxUploadBytes: maxUploadBytes, Provider: provider}
}

// RegisterRoutes attaches import routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/ai/import-resume", h.importResume)
}

type importResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    Record `json:"data"`
}

func (h *Handler) importResume(c *gin.Context) {
	metrics.IncImportStarted()

	if !h.Svc.Configured() {
		h.reject(c, http.StatusServiceUnavailable, ErrorCodeNotConfigured,
			fmt.Sprintf("AI service not configured. Set %s.", llm.APIKeyEnv(h.Provider)))
		return
	}

	limit := h.maxUploadBytes()
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit+multipartOverhead)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.reject(c, http.StatusRequestEntityTooLarge, ErrorCodeTooLarge, tooLargeMessage(limit))
			return
		}
		h.reject(c, http.StatusBadRequest, ErrorCodeValidation, "No PDF file uploaded")
		return
	}
	c.Set(middleware.FileNameKey, fileHeader.Filename)

	if !util.HasExtension(fileHeader.Filename, ".pdf") {
		h.reject(c, http.StatusBadRequest, ErrorCodeValidation, "Only PDF files are supported")
		return
	}
	if fileHeader.Size > limit {
		h.reject(c, http.StatusRequestEntityTooLarge, ErrorCodeTooLarge, tooLargeMessage(limit))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.reject(c, http.StatusBadRequest, ErrorCodeValidation, "unable to read file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, limit+1))
	if err != nil {
		h.reject(c, http.StatusBadRequest, ErrorCodeValidation, "unable to read file")
		return
	}
	if int64(len(data)) > limit {
		h.reject(c, http.StatusRequestEntityTooLarge, ErrorCodeTooLarge, tooLargeMessage(limit))
		return
	}
	c.Set(middleware.DocumentDigestKey, util.HashBytes(data))

	result, err := h.Svc.Import(c.Request.Context(), data)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotConfigured):
			h.reject(c, http.StatusServiceUnavailable, ErrorCodeNotConfigured,
				fmt.Sprintf("AI service not configured. Set %s.", llm.APIKeyEnv(h.Provider)))
		case errors.Is(err, ErrNoText):
			h.reject(c, http.StatusBadRequest, ErrorCodeNoText, "Could not extract text from PDF.")
		default:
			respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "Error parsing resume: "+err.Error(), nil)
		}
		return
	}

	c.Set(middleware.FallbackKey, result.Fallback)
	metrics.ObserveImportDurationMs(float64(result.Duration.Microseconds()) / 1000.0)
	metrics.IncImportCompleted()
	if result.Fallback {
		metrics.IncImportFallback()
	}

	respond.OK(c, importResponse{
		Success: true,
		Message: "Resume parsed successfully",
		Data:    result.Record,
	})
}

func (h *Handler) reject(c *gin.Context, status int, code, message string) {
	metrics.IncImportRejected()
	respond.Error(c, status, code, message, nil)
}

func (h *Handler) maxUploadBytes() int64 {
	if h.MaxUploadBytes > 0 {
		return h.MaxUploadBytes
	}
	return 10 << 20
}

func tooLargeMessage(limit int64) string {
	return fmt.Sprintf("File exceeds the %d byte upload limit", limit)
}
