package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/report"
	"github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/service"
	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	service *service.DashboardService
}

func NewDashboardHandler(service *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

func (h *DashboardHandler) GetStats(c *gin.Context) {
	period := strings.TrimSpace(c.DefaultQuery("period", report.PeriodMonth))

	stats, err := h.service.GetStats(c.Request.Context(), period)
	if err != nil {
		if errors.Is(err, report.ErrLoadInFlight) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "stats load already in progress"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch dashboard stats", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}
