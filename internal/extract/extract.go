package extract

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/Sjking2025/resume-builder-pro/internal/shared/telemetry"
)

// PageSeparator joins the text of consecutive pages.
const PageSeparator = "\n\n"

// Extractor turns raw PDF bytes into plain text.
// Library used: github.com/ledongthuc/pdf.
type Extractor struct{}

// Extract decodes data page by page. The boolean is false when the document
// could not be decoded at all; pages that yield no text are left out.
func (Extractor) Extract(ctx context.Context, data []byte) (string, bool) {
	if err := ctx.Err(); err != nil {
		return "", false
	}
	pages, err := Pages(data)
	if err != nil {
		telemetry.Error("extract.failed", map[string]any{
			"err":        err.Error(),
			"size_bytes": len(data),
		})
		return "", false
	}
	return JoinPages(pages), true
}

// Pages returns the text of every physical page in order. A page whose
// content cannot be read is returned as an empty string.
func Pages(data []byte) (pages []string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			pages = nil
			err = fmt.Errorf("pdf decode: %v", rec)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("pdf decode: %w", err)
	}

	total := reader.NumPage()
	pages = make([]string, 0, total)
	for i := 1; i <= total; i++ {
		pages = append(pages, pageText(reader, i))
	}
	return pages, nil
}

func pageText(reader *pdf.Reader, num int) string {
	page := reader.Page(num)
	if page.V.IsNull() {
		return ""
	}
	text, err := page.GetPlainText(nil)
	if err != nil {
		telemetry.Info("extract.page_skipped", map[string]any{
			"page": num,
			"err":  err.Error(),
		})
		return ""
	}
	return text
}

// JoinPages concatenates non-empty pages with PageSeparator, keeping page order.
func JoinPages(pages []string) string {
	kept := make([]string, 0, len(pages))
	for _, p := range pages {
		if p == "" {
			continue
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, PageSeparator)
}
