package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prompt-ops/backend/internal/model"
	"github.com/prompt-ops/backend/internal/service"
)

// exportService - 서비스 인터페이스
type exportService interface {
	ExportJSON(ctx context.Context, name string, includeMetrics bool) ([]byte, error)
	ExportYAML(ctx context.Context, name string, includeMetrics bool) ([]byte, error)
	ExportAllJSON(ctx context.Context, includeMetrics bool) ([]byte, error)
	ExportAllYAML(ctx context.Context, includeMetrics bool) ([]byte, error)
	Import(ctx context.Context, req model.ImportRequest) (*model.ImportResult, error)
}

// ExportHandler - export/import 핸들러
type ExportHandler struct {
	svc exportService
}

func NewExportHandler(svc exportService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// Export godoc
// @Summary Export full version history of a prompt
// @Description format query param selects json (default) or yaml. metrics=true embeds per-version metric summaries.
// @Tags export
// @Produce json
// @Security BearerAuth
// @Param name path string true "Prompt name"
// @Param format query string false "json or yaml"
// @Param metrics query bool false "Include metric summaries"
// @Success 200 {object} model.PromptExport
// @Failure 404,500 {object} model.ErrorResponse
// @Router /api/v1/prompts/{name}/export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	name := c.Param("name")
	includeMetrics := c.Query("metrics") == "true"

	switch c.DefaultQuery("format", "json") {
	case "yaml":
		data, err := h.svc.ExportYAML(c.Request.Context(), name, includeMetrics)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.Data(http.StatusOK, "application/yaml; charset=utf-8", data)
	case "json":
		data, err := h.svc.ExportJSON(c.Request.Context(), name, includeMetrics)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", data)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "format must be json or yaml"})
	}
}

// ExportAll godoc
// @Summary Export version history of all tracked prompts
// @Description format query param selects json (default) or yaml. metrics=true embeds per-version metric summaries.
// @Tags export
// @Produce json
// @Security BearerAuth
// @Param format query string false "json or yaml"
// @Param metrics query bool false "Include metric summaries"
// @Success 200 {object} model.AllPromptsExport
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/export [get]
func (h *ExportHandler) ExportAll(c *gin.Context) {
	includeMetrics := c.Query("metrics") == "true"

	switch c.DefaultQuery("format", "json") {
	case "yaml":
		data, err := h.svc.ExportAllYAML(c.Request.Context(), includeMetrics)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.Data(http.StatusOK, "application/yaml; charset=utf-8", data)
	case "json":
		data, err := h.svc.ExportAllJSON(c.Request.Context(), includeMetrics)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", data)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "format must be json or yaml"})
	}
}

// Import godoc
// @Summary Import versions from an export
// @Description Body is either an ImportRequest envelope (JSON) or a raw export document as produced by the export endpoints (JSON or YAML). For a raw document, overwrite and bump_type come from query params. Existing versions are skipped unless overwrite is set.
// @Tags export
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ImportRequest true "Export payload and options"
// @Param overwrite query bool false "Overwrite existing versions (raw document body only)"
// @Param bump_type query string false "Renumber imported versions (raw document body only)"
// @Success 200 {object} model.ImportResult
// @Failure 400,500 {object} model.ErrorResponse
// @Router /api/v1/prompts/import [post]
func (h *ExportHandler) Import(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": err.Error()})
		return
	}

	// JSON 봉투가 아니면 body 전체를 export 문서(JSON 또는 YAML)로 해석
	var req model.ImportRequest
	if jsonErr := json.Unmarshal(body, &req); jsonErr != nil || req.Data.PromptName == "" {
		export, parseErr := service.ParseImport(body)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": parseErr.Error()})
			return
		}
		req = model.ImportRequest{
			Data:      *export,
			Overwrite: c.Query("overwrite") == "true",
			BumpType:  c.Query("bump_type"),
		}
	}

	result, err := h.svc.Import(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
