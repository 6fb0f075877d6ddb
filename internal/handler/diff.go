package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prompt-ops/backend/internal/diff"
)

// diffService - 서비스 인터페이스
type diffService interface {
	Compare(ctx context.Context, name, oldVersion, newVersion string) (*diff.Result, error)
}

// DiffHandler - 버전 비교 핸들러
type DiffHandler struct {
	svc diffService
}

func NewDiffHandler(svc diffService) *DiffHandler {
	return &DiffHandler{svc: svc}
}

// Diff godoc
// @Summary Diff two versions of a prompt
// @Description Token-level comparison of system/user prompts with similarity scores and tagged segments.
// @Tags versions
// @Produce json
// @Security BearerAuth
// @Param name path string true "Prompt name"
// @Param from query string true "Old version"
// @Param to query string true "New version"
// @Success 200 {object} diff.Result
// @Failure 400,404,500 {object} model.ErrorResponse
// @Router /api/v1/prompts/{name}/diff [get]
func (h *DiffHandler) Diff(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "from and to query params are required"})
		return
	}

	result, err := h.svc.Compare(c.Request.Context(), c.Param("name"), from, to)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
