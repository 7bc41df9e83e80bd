package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/mindnote-app/mindnote_backend/internal/core/ports/services"
	"github.com/mindnote-app/mindnote_backend/internal/dto"
	"github.com/mindnote-app/mindnote_backend/internal/middleware"
)

// statsHandler handles HTTP requests for profile statistics.
type statsHandler struct {
	statsSvc portssvc.StatsSvcFacade
}

func newStatsHandler(statsSvc portssvc.StatsSvcFacade) *statsHandler {
	return &statsHandler{statsSvc: statsSvc}
}

// registerStatsRoutes wires the stats endpoint into the authenticated group.
func registerStatsRoutes(rg *gin.RouterGroup, statsSvc portssvc.StatsSvcFacade) {
	h := newStatsHandler(statsSvc)
	rg.GET("/stats", h.getStats)
}

// getStats godoc
// @Summary Get journal statistics
// @Description Returns entry count, current consecutive-day streak and last entry date, all computed from one read.
// @Tags stats
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute stats"
// @Router /stats [get]
func (h *statsHandler) getStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	stats, err := h.statsSvc.GetStats(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to compute stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStatsResponse(stats))
}
