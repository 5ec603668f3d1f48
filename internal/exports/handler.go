package exports

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Sjking2025/resume-builder-pro/internal/imports"
	"github.com/Sjking2025/resume-builder-pro/internal/shared/server/middleware"
	"github.com/Sjking2025/resume-builder-pro/internal/shared/server/respond"
	"github.com/Sjking2025/resume-builder-pro/internal/shared/util"
)

const defaultFileName = "resume.pdf"

// Handler serves PDF exports.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches export routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/pdf/export", h.export)
}

type exportRequest struct {
	HTML     string         `json:"html"`
	Filename string         `json:"filename"`
	Data     map[string]any `json:"data"`
}

func (h *Handler) export(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	if req.Data == nil {
		if strings.TrimSpace(req.HTML) == "" {
			respond.Error(c, http.StatusBadRequest, "validation_error", "HTML content required", nil)
			return
		}
		respond.JSON(c, http.StatusNotImplemented, gin.H{
			"message":    "PDF export available in local development only",
			"suggestion": "Use browser Print to PDF for now",
		})
		return
	}

	name := exportFileName(req.Filename)
	c.Set(middleware.FileNameKey, name)

	out, err := RenderPDF(imports.Normalize(req.Data))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to render pdf", nil)
		return
	}

	respond.Attachment(c, name, "application/pdf", out)
}

func exportFileName(raw string) string {
	name, err := util.SanitizeFileName(raw)
	if err != nil {
		return defaultFileName
	}
	if !util.HasExtension(name, ".pdf") {
		name += ".pdf"
	}
	return name
}
