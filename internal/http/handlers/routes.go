package handlers

import (
	"nola/internal/app"

	"github.com/labstack/echo/v4"
)

// SetupRoutes sets up all API routes
func SetupRoutes(api *echo.Group, services *app.Services) {
	metricsHandler := NewMetricsHandler(services.AnalyticsRepo)
	metrics := api.Group("/metrics")
	metrics.GET("/general", metricsHandler.GetGeneral)
	metrics.GET("/revenue_period", metricsHandler.GetRevenuePeriod)

	productsHandler := NewProductsHandler(services.AnalyticsRepo)
	api.GET("/products/top", productsHandler.GetTop)

	salesHandler := NewSalesHandler(services.AnalyticsRepo)
	api.GET("/sales/hourly", salesHandler.GetHourly)
}
