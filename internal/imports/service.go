package imports

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Sjking2025/resume-builder-pro/internal/extract"
	"github.com/Sjking2025/resume-builder-pro/internal/llm"
	"github.com/Sjking2025/resume-builder-pro/internal/shared/telemetry"
	"github.com/Sjking2025/resume-builder-pro/internal/shared/util"
)

// DefaultMinTextChars is the least amount of extracted text worth sending to the model.
const DefaultMinTextChars = 50

// TextExtractor converts a raw document into plain text. The boolean is false
// when nothing could be decoded.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte) (string, bool)
}

// Service runs the import pipeline: extract, prompt, generate, parse, normalize.
// It holds no per-request state and is safe for concurrent use. A nil
// Extractor decodes with extract.Extractor.
type Service struct {
	Extractor    TextExtractor
	Model        llm.Client
	MinTextChars int
}

// Result is the outcome of one import.
type Result struct {
	Record    Record
	Fallback  bool
	TextChars int
	Duration  time.Duration
}

// Configured reports whether a model capability is wired.
func (s *Service) Configured() bool {
	return s != nil && s.Model != nil
}

// Import turns a PDF into a canonical record. Only configuration and extraction
// problems are returned as errors; a failed model call yields the empty record
// with Fallback set.
func (s *Service) Import(ctx context.Context, data []byte) (Result, error) {
	start := time.Now()
	if !s.Configured() {
		return Result{}, ErrNotConfigured
	}

	text, ok := s.extractor().Extract(ctx, data)
	chars := utf8.RuneCountInString(strings.TrimSpace(text))
	if !ok || chars < s.minTextChars() {
		return Result{TextChars: chars}, ErrNoText
	}

	fields := map[string]any{
		"document_sha256": util.HashBytes(data),
		"size_bytes":      len(data),
		"text_chars":      chars,
	}

	raw, err := s.Model.Generate(ctx, llm.BuildImportPrompt(text))
	if err != nil {
		fields["err"] = err.Error()
		telemetry.Error("import.model_failed", fields)
		return Result{Record: EmptyRecord(), Fallback: true, TextChars: chars, Duration: time.Since(start)}, nil
	}

	rec := Normalize(ParseResponse(raw))
	fields["duration_ms"] = float64(time.Since(start).Microseconds()) / 1000.0
	telemetry.Info("import.completed", fields)
	return Result{Record: rec, TextChars: chars, Duration: time.Since(start)}, nil
}

func (s *Service) extractor() TextExtractor {
	if s.Extractor != nil {
		return s.Extractor
	}
	return extract.Extractor{}
}

func (s *Service) minTextChars() int {
	if s.MinTextChars > 0 {
		return s.MinTextChars
	}
	return DefaultMinTextChars
}
