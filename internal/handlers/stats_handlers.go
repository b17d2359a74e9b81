package handlers

import (
	"net/http"

	"prodorder/internal/common"
	"prodorder/internal/services"

	"github.com/labstack/echo/v4"
)

// StatsHandlers handles the statistics summary endpoint
type StatsHandlers struct {
	statsService services.StatsServiceInterface
}

// NewStatsHandlers creates a new stats handlers instance
func NewStatsHandlers(statsService services.StatsServiceInterface) *StatsHandlers {
	return &StatsHandlers{statsService: statsService}
}

// GetStats handles GET /api/stats
func (h *StatsHandlers) GetStats(c echo.Context) error {
	ctx := c.Request().Context()

	summary, err := h.statsService.Summary(ctx)
	if err != nil {
		return common.SendServerError(c, "Failed to compute statistics: "+err.Error())
	}

	return c.JSON(http.StatusOK, summary)
}
