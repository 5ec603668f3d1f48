package imports_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Sjking2025/resume-builder-pro/internal/bootstrap"
	"github.com/Sjking2025/resume-builder-pro/internal/extract/pdftest"
	"github.com/Sjking2025/resume-builder-pro/internal/imports"
	"github.com/Sjking2025/resume-builder-pro/internal/llm"
	"github.com/Sjking2025/resume-builder-pro/internal/shared/config"
)

func testConfig() config.Config {
	return config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		Env:             "dev",
		LLMProvider:     llm.ProviderGemini,
		MaxUploadBytes:  1 << 20,
		MinTextChars:    imports.DefaultMinTextChars,
	}
}

func newRouter(t *testing.T, model llm.Client) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	app, err := bootstrap.Build(testConfig(), bootstrap.WithModel(model))
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func uploadRequest(t *testing.T, fileName string, data []byte) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if fileName != "" {
		fileWriter, err := writer.CreateFormFile("file", fileName)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fileWriter.Write(data); err != nil {
			t.Fatalf("write file: %v", err)
		}
	} else if err := writer.WriteField("note", "no file"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/ai/import-resume", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Detail string `json:"detail"`
}

func decodeError(t *testing.T, resp *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()
	var env errorEnvelope
	if err := json.Unmarshal(resp.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode error body: %v (%s)", err, resp.Body.String())
	}
	return env
}

func resumePDF(t *testing.T) []byte {
	return pdftest.Build(t, "Jane Doe, jane@example.com", "Senior backend engineer with ten years of experience building APIs.")
}

func TestImportResumeSuccess(t *testing.T) {
	model := llm.ClientFunc(func(ctx context.Context, prompt string) (string, error) {
		return "```json\n{\"personalInfo\":{\"fullName\":\"Jane Doe\"},\"skills\":{\"technical\":[\"Go\"]}}\n```", nil
	})
	router := newRouter(t, model)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, uploadRequest(t, "resume.pdf", resumePDF(t)))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var body struct {
		Success bool           `json:"success"`
		Message string         `json:"message"`
		Data    map[string]any `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success || body.Message != "Resume parsed successfully" {
		t.Fatalf("unexpected envelope: %+v", body)
	}
	personal := body.Data["personalInfo"].(map[string]any)
	if personal["fullName"] != "Jane Doe" || personal["email"] != "" {
		t.Fatalf("unexpected personalInfo: %v", personal)
	}
	for _, key := range []string{"education", "experience", "projects", "achievements"} {
		list, ok := body.Data[key].([]any)
		if !ok || len(list) != 0 {
			t.Fatalf("expected empty list for %s, got %#v", key, body.Data[key])
		}
	}
}

func TestImportResumeModelFailureReturnsEmptyRecord(t *testing.T) {
	model := llm.ClientFunc(func(ctx context.Context, prompt string) (string, error) {
		return "", errors.New("quota exceeded")
	})
	router := newRouter(t, model)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, uploadRequest(t, "resume.pdf", resumePDF(t)))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	want := `"data":{"personalInfo":{"fullName":"","email":"","phone":"","location":"","linkedin":"","github":"","portfolio":"","summary":""},"education":[],"experience":[],"projects":[],"skills":{"technical":[],"soft":[],"languages":[]},"achievements":[]}`
	if !strings.Contains(resp.Body.String(), want) {
		t.Fatalf("expected empty record, got %s", resp.Body.String())
	}
}

func TestImportResumeRejections(t *testing.T) {
	okModel := llm.ClientFunc(func(ctx context.Context, prompt string) (string, error) {
		t.Fatalf("model must not be called")
		return "", nil
	})

	tests := []struct {
		name       string
		model      llm.Client
		fileName   string
		data       []byte
		wantStatus int
		wantCode   string
		wantDetail string
	}{
		{
			name:       "not configured",
			model:      nil,
			fileName:   "resume.pdf",
			data:       []byte("%PDF-1.4"),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   imports.ErrorCodeNotConfigured,
			wantDetail: "AI service not configured. Set GOOGLE_API_KEY.",
		},
		{
			name:       "missing file",
			model:      okModel,
			wantStatus: http.StatusBadRequest,
			wantCode:   imports.ErrorCodeValidation,
			wantDetail: "No PDF file uploaded",
		},
		{
			name:       "wrong extension",
			model:      okModel,
			fileName:   "resume.docx",
			data:       []byte("hello"),
			wantStatus: http.StatusBadRequest,
			wantCode:   imports.ErrorCodeValidation,
			wantDetail: "Only PDF files are supported",
		},
		{
			name:       "too large",
			model:      okModel,
			fileName:   "RESUME.PDF",
			data:       bytes.Repeat([]byte("a"), (1<<20)+1),
			wantStatus: http.StatusRequestEntityTooLarge,
			wantCode:   imports.ErrorCodeTooLarge,
		},
		{
			name:       "unreadable pdf",
			model:      okModel,
			fileName:   "resume.pdf",
			data:       []byte("not a pdf at all"),
			wantStatus: http.StatusBadRequest,
			wantCode:   imports.ErrorCodeNoText,
			wantDetail: "Could not extract text from PDF.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(t, tt.model)
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, uploadRequest(t, tt.fileName, tt.data))

			if resp.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, resp.Code, resp.Body.String())
			}
			env := decodeError(t, resp)
			if env.Error.Code != tt.wantCode {
				t.Fatalf("expected code %q, got %q", tt.wantCode, env.Error.Code)
			}
			if env.Detail != env.Error.Message {
				t.Fatalf("detail %q does not mirror message %q", env.Detail, env.Error.Message)
			}
			if tt.wantDetail != "" && env.Detail != tt.wantDetail {
				t.Fatalf("expected detail %q, got %q", tt.wantDetail, env.Detail)
			}
		})
	}
}
