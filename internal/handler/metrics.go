package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prompt-ops/backend/internal/model"
)

// metricsService - 서비스 인터페이스
type metricsService interface {
	LogMetrics(ctx context.Context, name, version string, req model.LogMetricsRequest) (int64, error)
	GetMetrics(ctx context.Context, name, version string) ([]model.MetricRecord, error)
	GetSummary(ctx context.Context, name, version string) (*model.MetricSummary, error)
	Compare(ctx context.Context, name string, versions []string) (*model.VersionComparison, error)
}

// MetricsHandler - 메트릭 관련 핸들러
type MetricsHandler struct {
	svc metricsService
}

func NewMetricsHandler(svc metricsService) *MetricsHandler {
	return &MetricsHandler{svc: svc}
}

// LogMetrics godoc
// @Summary Log call metrics for a version
// @Description Cost is computed from model_name and token counts when cost_eur is omitted.
// @Tags metrics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Prompt name"
// @Param version path string true "Version string"
// @Param request body model.LogMetricsRequest true "Metric fields"
// @Success 201 {object} model.MetricLoggedResponse
// @Failure 400,404,500 {object} model.ErrorResponse
// @Router /api/v1/prompts/{name}/versions/{version}/metrics [post]
func (h *MetricsHandler) LogMetrics(c *gin.Context) {
	var req model.LogMetricsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": err.Error()})
		return
	}

	id, err := h.svc.LogMetrics(c.Request.Context(), c.Param("name"), c.Param("version"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.MetricLoggedResponse{Status: "success", MetricID: id})
}

// ListMetrics godoc
// @Summary List raw metrics of a version
// @Tags metrics
// @Produce json
// @Security BearerAuth
// @Param name path string true "Prompt name"
// @Param version path string true "Version string"
// @Success 200 {array} model.MetricRecord
// @Failure 404,500 {object} model.ErrorResponse
// @Router /api/v1/prompts/{name}/versions/{version}/metrics [get]
func (h *MetricsHandler) ListMetrics(c *gin.Context) {
	metrics, err := h.svc.GetMetrics(c.Request.Context(), c.Param("name"), c.Param("version"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// GetSummary godoc
// @Summary Get aggregated metrics of a version
// @Tags metrics
// @Produce json
// @Security BearerAuth
// @Param name path string true "Prompt name"
// @Param version path string true "Version string"
// @Success 200 {object} model.MetricSummary
// @Failure 404,500 {object} model.ErrorResponse
// @Router /api/v1/prompts/{name}/versions/{version}/metrics/summary [get]
func (h *MetricsHandler) GetSummary(c *gin.Context) {
	summary, err := h.svc.GetSummary(c.Request.Context(), c.Param("name"), c.Param("version"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Compare godoc
// @Summary Compare metric summaries across versions
// @Description Compares the versions given in the repeated "version" query param, or all versions when omitted.
// @Tags metrics
// @Produce json
// @Security BearerAuth
// @Param name path string true "Prompt name"
// @Param version query []string false "Versions to compare"
// @Success 200 {object} model.VersionComparison
// @Failure 404,500 {object} model.ErrorResponse
// @Router /api/v1/prompts/{name}/compare [get]
func (h *MetricsHandler) Compare(c *gin.Context) {
	comparison, err := h.svc.Compare(c.Request.Context(), c.Param("name"), c.QueryArray("version"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, comparison)
}
