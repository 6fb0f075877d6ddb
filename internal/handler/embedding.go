package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prompt-ops/backend/internal/model"
)

// similarSearchService - 서비스 인터페이스
type similarSearchService interface {
	SearchSimilar(ctx context.Context, query string, limit int) ([]model.SimilarVersion, error)
}

// EmbeddingHandler - 유사 버전 검색 핸들러
type EmbeddingHandler struct {
	svc similarSearchService
}

func NewEmbeddingHandler(svc similarSearchService) *EmbeddingHandler {
	return &EmbeddingHandler{svc: svc}
}

// SearchSimilar godoc
// @Summary Search versions similar to a query text
// @Description Embeds the query and returns the nearest stored versions by vector distance.
// @Tags search
// @Produce json
// @Security BearerAuth
// @Param q query string true "Query text"
// @Param limit query int false "Max results (default 10)"
// @Success 200 {object} model.SimilarVersionsResponse
// @Failure 400,500 {object} model.ErrorResponse
// @Router /api/v1/search/similar [get]
func (h *EmbeddingHandler) SearchSimilar(c *gin.Context) {
	query := c.Query("q")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	results, err := h.svc.SearchSimilar(c.Request.Context(), query, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.SimilarVersionsResponse{Status: "success", Results: results})
}
