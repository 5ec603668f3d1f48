package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Sjking2025/resume-builder-pro/internal/bootstrap"
	"github.com/Sjking2025/resume-builder-pro/internal/extract"
	"github.com/Sjking2025/resume-builder-pro/internal/imports"
	"github.com/Sjking2025/resume-builder-pro/internal/llm"
	"github.com/Sjking2025/resume-builder-pro/internal/shared/config"
	"github.com/Sjking2025/resume-builder-pro/internal/shared/storage/object"
	"github.com/Sjking2025/resume-builder-pro/internal/shared/util"
)

func main() {
	cfg := config.Load()

	resumePath := flag.String("resume", "", "Path to a resume PDF")
	storageKey := flag.String("key", "", "Object store key of a resume PDF (OBJECT_STORE selects local or s3)")
	format := flag.String("format", "json", "Output format: json, yaml or text")
	outPath := flag.String("out", "", "Path to write output (optional)")
	provider := flag.String("provider", cfg.LLMProvider, "LLM provider (gemini or openai)")
	model := flag.String("model", cfg.LLMModel, "LLM model")
	flag.Parse()

	ctx := context.Background()

	data, err := readDocument(ctx, cfg, *resumePath, *storageKey)
	if err != nil {
		exitErr(err.Error())
	}

	cfg.LLMProvider = *provider
	cfg.LLMModel = *model
	client, err := bootstrap.BuildModel(ctx, cfg.LLM())
	if err != nil {
		exitErr(err.Error())
	}

	svc := &imports.Service{
		Extractor:    extract.Extractor{},
		Model:        client,
		MinTextChars: cfg.MinTextChars,
	}
	res, err := svc.Import(ctx, data)
	if err != nil {
		if errors.Is(err, imports.ErrNotConfigured) {
			exitErr(fmt.Sprintf("import: %v (set %s)", err, llm.APIKeyEnv(*provider)))
		}
		exitErr(fmt.Sprintf("import: %v", err))
	}
	if res.Fallback {
		_, _ = fmt.Fprintln(os.Stderr, "warning: model call failed; printing the empty record")
	}

	out, err := formatRecord(res.Record, *format)
	if err != nil {
		exitErr(err.Error())
	}

	if *outPath != "" {
		if err := os.WriteFile(*outPath, out, 0o644); err != nil {
			exitErr(fmt.Sprintf("write output: %v", err))
		}
	}

	if _, err := os.Stdout.Write(out); err != nil {
		exitErr(fmt.Sprintf("write stdout: %v", err))
	}
	if len(out) == 0 || out[len(out)-1] != '\n' {
		_, _ = os.Stdout.Write([]byte("\n"))
	}
}

func readDocument(ctx context.Context, cfg config.Config, path, key string) ([]byte, error) {
	path = strings.TrimSpace(path)
	key = strings.TrimSpace(key)
	switch {
	case path != "" && key != "":
		return nil, fmt.Errorf("use either -resume or -key, not both")
	case path != "":
		if !util.HasExtension(path, ".pdf") {
			return nil, fmt.Errorf("only PDF files are supported: %s", path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read resume: %w", err)
		}
		return data, nil
	case key != "":
		store, err := bootstrap.BuildStore(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("object store: %w", err)
		}
		data, err := object.ReadAll(ctx, store, key, cfg.MaxUploadBytes)
		if err != nil {
			return nil, fmt.Errorf("read resume %s: %w", key, err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("resume path or key is required")
	}
}

func formatRecord(rec imports.Record, format string) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rec); err != nil {
			return nil, fmt.Errorf("format json: %w", err)
		}
		return buf.Bytes(), nil
	case "yaml":
		out, err := yaml.Marshal(rec)
		if err != nil {
			return nil, fmt.Errorf("format yaml: %w", err)
		}
		return out, nil
	case "text":
		return []byte(imports.PlainText(rec)), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func exitErr(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
