package handlers

import (
	"net/http"

	"nola/internal/repo"

	"github.com/labstack/echo/v4"
)

// SalesHandler handles sale volume endpoints
type SalesHandler struct {
	analyticsRepo *repo.AnalyticsRepository
}

// NewSalesHandler creates a new sales handler
func NewSalesHandler(analyticsRepo *repo.AnalyticsRepository) *SalesHandler {
	return &SalesHandler{analyticsRepo: analyticsRepo}
}

// GetHourly godoc
// @Summary Get hourly order volume
// @Description Get completed-order counts per hour of day
// @Tags sales
// @Produce json
// @Success 200 {array} models.HourlyEntry
// @Failure 500 {object} map[string]string
// @Router /sales/hourly [get]
func (h *SalesHandler) GetHourly(c echo.Context) error {
	entries, err := h.analyticsRepo.HourlyVolume()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to get hourly volume"})
	}

	return c.JSON(http.StatusOK, entries)
}
