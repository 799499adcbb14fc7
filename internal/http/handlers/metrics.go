package handlers

import (
	"net/http"
	"time"

	"nola/internal/repo"
	"nola/pkg/models"

	"github.com/labstack/echo/v4"
)

// generalMetricsWindowDays is the lookback for the general metrics block
const generalMetricsWindowDays = 180

// MetricsHandler handles the dashboard metrics endpoints
type MetricsHandler struct {
	analyticsRepo *repo.AnalyticsRepository
	now           func() time.Time
}

// NewMetricsHandler creates a new metrics handler
func NewMetricsHandler(analyticsRepo *repo.AnalyticsRepository) *MetricsHandler {
	return &MetricsHandler{
		analyticsRepo: analyticsRepo,
		now:           time.Now,
	}
}

// GetGeneral godoc
// @Summary Get general metrics
// @Description Get total revenue, sale count and average ticket for the last 6 months
// @Tags metrics
// @Produce json
// @Success 200 {object} models.MetricSnapshot
// @Failure 500 {object} map[string]string
// @Router /metrics/general [get]
func (h *MetricsHandler) GetGeneral(c echo.Context) error {
	start := h.now().AddDate(0, 0, -generalMetricsWindowDays)

	snapshot, err := h.analyticsRepo.GeneralMetrics(start)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to get general metrics"})
	}

	return c.JSON(http.StatusOK, snapshot)
}

// revenuePeriodQuery binds and validates the revenue_period query string
type revenuePeriodQuery struct {
	Period string `query:"period" validate:"omitempty,oneof=7d 30d month 6m"`
}

// GetRevenuePeriod godoc
// @Summary Get revenue by weekday
// @Description Get completed-sale revenue grouped by weekday within the selected period
// @Tags metrics
// @Produce json
// @Param period query string false "Period (7d, 30d, month, 6m)" default(7d)
// @Success 200 {array} models.RevenuePoint
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /metrics/revenue_period [get]
func (h *MetricsHandler) GetRevenuePeriod(c echo.Context) error {
	var q revenuePeriodQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid query parameters"})
	}
	if err := c.Validate(&q); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid period"})
	}

	period := models.Period(q.Period)
	if q.Period == "" {
		period = models.Period7Days
	}

	points, err := h.analyticsRepo.RevenueByWeekday(h.periodStart(period))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to get revenue by period"})
	}

	return c.JSON(http.StatusOK, points)
}

// periodStart translates a period code into the window's start instant
func (h *MetricsHandler) periodStart(period models.Period) time.Time {
	now := h.now()
	switch period {
	case models.Period30Days:
		return now.AddDate(0, 0, -30)
	case models.PeriodMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case models.Period6Months:
		return now.AddDate(0, 0, -180)
	default:
		return now.AddDate(0, 0, -7)
	}
}
