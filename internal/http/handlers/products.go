package handlers

import (
	"net/http"

	"nola/internal/repo"

	"github.com/labstack/echo/v4"
)

// topProductsLimit bounds the top-products table
const topProductsLimit = 5

// ProductsHandler handles product ranking endpoints
type ProductsHandler struct {
	analyticsRepo *repo.AnalyticsRepository
}

// NewProductsHandler creates a new products handler
func NewProductsHandler(analyticsRepo *repo.AnalyticsRepository) *ProductsHandler {
	return &ProductsHandler{analyticsRepo: analyticsRepo}
}

// GetTop godoc
// @Summary Get top products
// @Description Get the five best-selling products ranked by revenue
// @Tags products
// @Produce json
// @Success 200 {array} models.ProductEntry
// @Failure 500 {object} map[string]string
// @Router /products/top [get]
func (h *ProductsHandler) GetTop(c echo.Context) error {
	entries, err := h.analyticsRepo.TopProducts(topProductsLimit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to get top products"})
	}

	return c.JSON(http.StatusOK, entries)
}
