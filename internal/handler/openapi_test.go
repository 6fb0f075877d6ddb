package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestOpenAPIDocListsRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/openapi.json", OpenAPIDoc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var doc struct {
		Paths       map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage `json:"definitions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("document is not valid JSON: %v", err)
	}

	for _, path := range []string{
		"/api/v1/versions",
		"/api/v1/prompts/{name}/versions/{version}/metrics",
		"/api/v1/prompts/{name}/diff",
		"/api/v1/monitor/check",
		"/api/v1/prompts/import",
		"/api/v1/settings/webhooks/{id}",
	} {
		if _, ok := doc.Paths[path]; !ok {
			t.Errorf("document missing path %s", path)
		}
	}

	for _, def := range []string{"model.ErrorResponse", "model.PromptVersion", "diff.Result"} {
		if _, ok := doc.Definitions[def]; !ok {
			t.Errorf("document missing definition %s", def)
		}
	}
}
