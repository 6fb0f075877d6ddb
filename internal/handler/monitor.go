package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prompt-ops/backend/internal/model"
)

// monitorService - 서비스 인터페이스
type monitorService interface {
	CheckRegression(ctx context.Context, req model.CheckRegressionRequest) ([]model.RegressionAlert, error)
}

// abTestService - 서비스 인터페이스
type abTestService interface {
	Run(ctx context.Context, name, versionA, versionB, metricName string) (*model.ABTestResult, error)
}

// MonitorHandler - 회귀 감지 / A/B 테스트 핸들러
type MonitorHandler struct {
	monitor monitorService
	abTest  abTestService
}

func NewMonitorHandler(monitor monitorService, abTest abTestService) *MonitorHandler {
	return &MonitorHandler{monitor: monitor, abTest: abTest}
}

// CheckRegression godoc
// @Summary Check for metric regressions between two versions
// @Description Compares aggregated metrics and emits alerts for crossed thresholds. Registered notifiers (Slack, webhooks) fire per alert.
// @Tags monitor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CheckRegressionRequest true "Versions and optional thresholds"
// @Success 200 {object} model.CheckRegressionResponse
// @Failure 400,404,500 {object} model.ErrorResponse
// @Router /api/v1/monitor/check [post]
func (h *MonitorHandler) CheckRegression(c *gin.Context) {
	var req model.CheckRegressionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": err.Error()})
		return
	}

	alerts, err := h.monitor.CheckRegression(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.CheckRegressionResponse{Status: "success", Alerts: alerts})
}

// ABTest godoc
// @Summary Compare a single metric between two versions
// @Description Sample-count-based confidence heuristic, not a statistical significance test.
// @Tags monitor
// @Produce json
// @Security BearerAuth
// @Param name path string true "Prompt name"
// @Param a query string true "Version A"
// @Param b query string true "Version B"
// @Param metric query string true "Metric name (cost, latency, quality, accuracy, tokens)"
// @Success 200 {object} model.ABTestResult
// @Failure 400,404,500 {object} model.ErrorResponse
// @Router /api/v1/prompts/{name}/abtest [get]
func (h *MonitorHandler) ABTest(c *gin.Context) {
	versionA := c.Query("a")
	versionB := c.Query("b")
	metric := c.Query("metric")
	if versionA == "" || versionB == "" || metric == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "a, b and metric query params are required"})
		return
	}

	result, err := h.abTest.Run(c.Request.Context(), c.Param("name"), versionA, versionB, metric)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
