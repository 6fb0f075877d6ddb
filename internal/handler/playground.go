package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prompt-ops/backend/internal/model"
)

// playgroundService - 서비스 인터페이스
type playgroundService interface {
	Run(ctx context.Context, req model.PlaygroundRequest) (*model.PlaygroundResponse, error)
}

// PlaygroundHandler - 버전 테스트 실행 핸들러
type PlaygroundHandler struct {
	svc playgroundService
}

func NewPlaygroundHandler(svc playgroundService) *PlaygroundHandler {
	return &PlaygroundHandler{svc: svc}
}

// Run godoc
// @Summary Run a stored version against the model
// @Description Substitutes {variable} placeholders in the user prompt. record=true logs the result as metrics.
// @Tags playground
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.PlaygroundRequest true "Run parameters"
// @Success 200 {object} model.PlaygroundResponse
// @Failure 400,404,500 {object} model.ErrorResponse
// @Router /api/v1/playground/run [post]
func (h *PlaygroundHandler) Run(c *gin.Context) {
	var req model.PlaygroundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": err.Error()})
		return
	}

	resp, err := h.svc.Run(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
