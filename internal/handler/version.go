package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prompt-ops/backend/internal/model"
)

// versionService - 서비스 인터페이스
type versionService interface {
	SaveVersion(ctx context.Context, req model.SaveVersionRequest) (*model.PromptVersion, error)
	GetVersion(ctx context.Context, name, version string) (*model.PromptVersion, error)
	ListVersions(ctx context.Context, name string) ([]model.VersionListItem, error)
	ListPrompts(ctx context.Context) ([]string, error)
	DeleteVersion(ctx context.Context, name, version string) error
	Rollback(ctx context.Context, name, toVersion string) (*model.PromptVersion, error)
	Annotate(ctx context.Context, name, version string, req model.AnnotationRequest) (int64, error)
	GetAnnotations(ctx context.Context, name, version string) ([]model.Annotation, error)
}

// VersionHandler - 프롬프트 버전 관련 핸들러
type VersionHandler struct {
	svc versionService
}

func NewVersionHandler(svc versionService) *VersionHandler {
	return &VersionHandler{svc: svc}
}

// ListPrompts godoc
// @Summary List tracked prompt names
// @Tags prompts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.PromptListResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/prompts [get]
func (h *VersionHandler) ListPrompts(c *gin.Context) {
	prompts, err := h.svc.ListPrompts(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.PromptListResponse{Prompts: prompts})
}

// SaveVersion godoc
// @Summary Save a new prompt version
// @Description Version is taken from the request or computed from bump_type/pre_label against the latest version.
// @Tags versions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.SaveVersionRequest true "Version contents"
// @Success 201 {object} model.VersionSavedResponse
// @Failure 400,409,500 {object} model.ErrorResponse
// @Router /api/v1/versions [post]
func (h *VersionHandler) SaveVersion(c *gin.Context) {
	var req model.SaveVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": err.Error()})
		return
	}

	v, err := h.svc.SaveVersion(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.VersionSavedResponse{
		Status:    "success",
		Message:   "버전이 저장되었습니다.",
		Name:      v.Name,
		Version:   v.Version,
		VersionID: v.ID,
	})
}

// ListVersions godoc
// @Summary List versions of a prompt
// @Tags versions
// @Produce json
// @Security BearerAuth
// @Param name path string true "Prompt name"
// @Success 200 {array} model.VersionListItem
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/prompts/{name}/versions [get]
func (h *VersionHandler) ListVersions(c *gin.Context) {
	versions, err := h.svc.ListVersions(c.Request.Context(), c.Param("name"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, versions)
}

// GetVersion godoc
// @Summary Get a prompt version
// @Description Use "latest" as the version to fetch the most recent one.
// @Tags versions
// @Produce json
// @Security BearerAuth
// @Param name path string true "Prompt name"
// @Param version path string true "Version string or latest"
// @Success 200 {object} model.VersionDetailEnvelope
// @Failure 404,500 {object} model.ErrorResponse
// @Router /api/v1/prompts/{name}/versions/{version} [get]
func (h *VersionHandler) GetVersion(c *gin.Context) {
	v, err := h.svc.GetVersion(c.Request.Context(), c.Param("name"), c.Param("version"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.VersionDetailEnvelope{Status: "success", Data: v})
}

// DeleteVersion godoc
// @Summary Delete a prompt version
// @Description Deletes the version with its metrics and annotations.
// @Tags versions
// @Produce json
// @Security BearerAuth
// @Param name path string true "Prompt name"
// @Param version path string true "Version string"
// @Success 200 {object} model.VersionDeletedResponse
// @Failure 404,500 {object} model.ErrorResponse
// @Router /api/v1/prompts/{name}/versions/{version} [delete]
func (h *VersionHandler) DeleteVersion(c *gin.Context) {
	version := c.Param("version")
	if err := h.svc.DeleteVersion(c.Request.Context(), c.Param("name"), version); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.VersionDeletedResponse{
		Status:  "success",
		Message: "버전이 삭제되었습니다.",
		Version: version,
	})
}

// Rollback godoc
// @Summary Roll back to an earlier version
// @Description Creates a new patch version with the contents of the target version.
// @Tags versions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Prompt name"
// @Param request body model.RollbackRequest true "Target version"
// @Success 201 {object} model.VersionSavedResponse
// @Failure 400,404,500 {object} model.ErrorResponse
// @Router /api/v1/prompts/{name}/rollback [post]
func (h *VersionHandler) Rollback(c *gin.Context) {
	var req model.RollbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": err.Error()})
		return
	}

	v, err := h.svc.Rollback(c.Request.Context(), c.Param("name"), req.ToVersion)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.VersionSavedResponse{
		Status:    "success",
		Message:   "롤백 버전이 생성되었습니다.",
		Name:      v.Name,
		Version:   v.Version,
		VersionID: v.ID,
	})
}

// Annotate godoc
// @Summary Add an annotation to a version
// @Tags versions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Prompt name"
// @Param version path string true "Version string"
// @Param request body model.AnnotationRequest true "Annotation"
// @Success 201 {object} model.StatusResponse
// @Failure 400,404,500 {object} model.ErrorResponse
// @Router /api/v1/prompts/{name}/versions/{version}/annotations [post]
func (h *VersionHandler) Annotate(c *gin.Context) {
	var req model.AnnotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": err.Error()})
		return
	}

	if _, err := h.svc.Annotate(c.Request.Context(), c.Param("name"), c.Param("version"), req); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.StatusResponse{Status: "success"})
}

// ListAnnotations godoc
// @Summary List annotations of a version
// @Tags versions
// @Produce json
// @Security BearerAuth
// @Param name path string true "Prompt name"
// @Param version path string true "Version string"
// @Success 200 {array} model.Annotation
// @Failure 404,500 {object} model.ErrorResponse
// @Router /api/v1/prompts/{name}/versions/{version}/annotations [get]
func (h *VersionHandler) ListAnnotations(c *gin.Context) {
	annotations, err := h.svc.GetAnnotations(c.Request.Context(), c.Param("name"), c.Param("version"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, annotations)
}
