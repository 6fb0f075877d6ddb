package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prompt-ops/backend/internal/model"
)

type fakeExportService struct {
	lastImport model.ImportRequest
}

func (f *fakeExportService) ExportJSON(ctx context.Context, name string, includeMetrics bool) ([]byte, error) {
	return []byte(`{}`), nil
}

func (f *fakeExportService) ExportYAML(ctx context.Context, name string, includeMetrics bool) ([]byte, error) {
	return []byte(`{}`), nil
}

func (f *fakeExportService) ExportAllJSON(ctx context.Context, includeMetrics bool) ([]byte, error) {
	return []byte(`{}`), nil
}

func (f *fakeExportService) ExportAllYAML(ctx context.Context, includeMetrics bool) ([]byte, error) {
	return []byte(`{}`), nil
}

func (f *fakeExportService) Import(ctx context.Context, req model.ImportRequest) (*model.ImportResult, error) {
	f.lastImport = req
	return &model.ImportResult{PromptName: req.Data.PromptName, Imported: len(req.Data.Versions), Total: len(req.Data.Versions)}, nil
}

func newImportRouter(svc *fakeExportService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/v1/prompts/import", NewExportHandler(svc).Import)
	return r
}

func TestImportAcceptsJSONEnvelope(t *testing.T) {
	svc := &fakeExportService{}
	r := newImportRouter(svc)

	body := `{"data": {"prompt_name": "summarize", "versions": [{"version": "1.0.0"}]}, "overwrite": true}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/prompts/import", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if svc.lastImport.Data.PromptName != "summarize" || !svc.lastImport.Overwrite {
		t.Fatalf("import request = %+v", svc.lastImport)
	}
}

// export 엔드포인트가 만든 YAML 문서를 그대로 다시 올려도 import되어야 한다
func TestImportAcceptsRawYAMLExport(t *testing.T) {
	svc := &fakeExportService{}
	r := newImportRouter(svc)

	body := "prompt_name: summarize\nversions:\n  - version: 1.1.0\n  - version: 1.0.0\n"
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/prompts/import?overwrite=true&bump_type=patch", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/yaml")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if svc.lastImport.Data.PromptName != "summarize" || len(svc.lastImport.Data.Versions) != 2 {
		t.Fatalf("import request = %+v", svc.lastImport)
	}
	if !svc.lastImport.Overwrite || svc.lastImport.BumpType != "patch" {
		t.Fatalf("query options not applied: %+v", svc.lastImport)
	}
}

func TestImportAcceptsRawJSONExport(t *testing.T) {
	svc := &fakeExportService{}
	r := newImportRouter(svc)

	body := `{"prompt_name": "summarize", "versions": [{"version": "1.0.0"}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/prompts/import", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if svc.lastImport.Data.PromptName != "summarize" {
		t.Fatalf("import request = %+v", svc.lastImport)
	}
}

func TestImportRejectsGarbage(t *testing.T) {
	svc := &fakeExportService{}
	r := newImportRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/prompts/import", bytes.NewBufferString("{{{not an export"))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}