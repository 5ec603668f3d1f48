package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Sjking2025/resume-builder-pro/internal/llm"
)

func TestNewClientRequiresKey(t *testing.T) {
	if _, err := NewClient(context.Background(), llm.Config{Model: "gemini-2.5-flash"}); err == nil {
		t.Fatalf("expected error without api key")
	}
}

func TestGenerateReturnsCandidateText(t *testing.T) {
	var gotPath string
	var gotPrompt string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		gotPath = r.URL.Path
		var payload struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(payload.Contents) > 0 && len(payload.Contents[0].Parts) > 0 {
			gotPrompt = payload.Contents[0].Parts[0].Text
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"personalInfo\":{}}"}]}}],"usageMetadata":{"promptTokenCount":5,"candidatesTokenCount":2,"totalTokenCount":7}}`))
	}))
	defer server.Close()

	client, err := NewClient(context.Background(), llm.Config{APIKey: "k", Model: "gemini-2.5-flash", BaseURL: server.URL + "/"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	out, err := client.Generate(context.Background(), "resume prompt")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if out != `{"personalInfo":{}}` {
		t.Fatalf("unexpected output: %q", out)
	}
	if !strings.Contains(gotPath, "gemini-2.5-flash:generateContent") {
		t.Fatalf("unexpected request path: %s", gotPath)
	}
	if gotPrompt != "resume prompt" {
		t.Fatalf("unexpected prompt sent: %q", gotPrompt)
	}
}

func TestGenerateEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	client, err := NewClient(context.Background(), llm.Config{APIKey: "k", Model: "gemini-2.5-flash", BaseURL: server.URL + "/"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := client.Generate(context.Background(), "p"); !errors.Is(err, llm.ErrEmptyResponse) {
		t.Fatalf("expected ErrEmptyResponse, got %v", err)
	}
}

func TestGenerateAuthFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"API key not valid","status":"PERMISSION_DENIED"}}`))
	}))
	defer server.Close()

	client, err := NewClient(context.Background(), llm.Config{APIKey: "k", Model: "gemini-2.5-flash", BaseURL: server.URL + "/"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := client.Generate(context.Background(), "p"); err == nil {
		t.Fatalf("expected error for 403 response")
	}
}
