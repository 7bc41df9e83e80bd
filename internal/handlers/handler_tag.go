package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mindnote-app/mindnote_backend/internal/apperrors"
	portssvc "github.com/mindnote-app/mindnote_backend/internal/core/ports/services"
	"github.com/mindnote-app/mindnote_backend/internal/dto"
	"github.com/mindnote-app/mindnote_backend/internal/middleware"
)

// tagHandler handles HTTP requests for the user's global tag set.
type tagHandler struct {
	tagSvc portssvc.TagSvcFacade
}

func newTagHandler(tagSvc portssvc.TagSvcFacade) *tagHandler {
	return &tagHandler{tagSvc: tagSvc}
}

// registerTagRoutes wires the tag endpoints into the authenticated group.
func registerTagRoutes(rg *gin.RouterGroup, tagSvc portssvc.TagSvcFacade) {
	h := newTagHandler(tagSvc)
	tags := rg.Group("/tags")
	{
		tags.GET("", h.getTags)
		tags.PUT("", h.replaceTags)
		tags.DELETE("/:tag", h.deleteTag)
	}
}

// getTags godoc
// @Summary Get the tag set
// @Description Returns the caller's saved global tag set, empty when none was saved.
// @Tags tags
// @Produce json
// @Success 200 {object} dto.TagSetResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to load tags"
// @Router /tags [get]
func (h *tagHandler) getTags(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	tags, err := h.tagSvc.GetTags(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to load tags", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load tags"})
		return
	}

	c.JSON(http.StatusOK, dto.TagSetResponse{Tags: tags})
}

// replaceTags godoc
// @Summary Replace the tag set
// @Description Overwrites the caller's global tag set with the given list.
// @Tags tags
// @Accept json
// @Produce json
// @Param tags body dto.ReplaceTagSetRequest true "Tag set"
// @Success 200 {object} dto.TagSetResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to save tags"
// @Router /tags [put]
func (h *tagHandler) replaceTags(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ReplaceTagSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	tags, err := h.tagSvc.ReplaceTags(c.Request.Context(), userID, req.Tags)
	if err != nil {
		logger.Error("Failed to save tags", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save tags"})
		return
	}

	c.JSON(http.StatusOK, dto.TagSetResponse{Tags: tags})
}

// deleteTag godoc
// @Summary Delete a tag everywhere
// @Description Removes the tag from the tag set and strips it from every entry carrying it. Reports how many entries were modified.
// @Tags tags
// @Produce json
// @Param tag path string true "Tag"
// @Success 200 {object} dto.DeleteTagResponse
// @Failure 400 {object} map[string]string "Invalid tag"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to delete tag"
// @Router /tags/{tag} [delete]
func (h *tagHandler) deleteTag(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	tag := c.Param("tag")
	modified, err := h.tagSvc.DeleteTagEverywhere(c.Request.Context(), userID, tag)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to delete tag", slog.String("error", err.Error()), slog.String("tag", tag))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tag"})
		return
	}

	c.JSON(http.StatusOK, dto.DeleteTagResponse{Tag: tag, EntriesModified: modified})
}
