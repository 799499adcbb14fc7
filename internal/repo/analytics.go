package repo

import (
	"fmt"
	"time"

	"nola/pkg/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AnalyticsRepository handles the aggregate queries behind the dashboard
type AnalyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

type generalMetricsRow struct {
	TotalRevenue decimal.Decimal
	TotalSales   int64
	AvgTicket    decimal.Decimal
}

// GeneralMetrics returns total revenue, sale count and average ticket for
// completed sales since start.
func (r *AnalyticsRepository) GeneralMetrics(start time.Time) (*models.MetricSnapshot, error) {
	var row generalMetricsRow
	err := r.db.Raw(`
		SELECT
			COALESCE(SUM(total_amount), 0)::numeric AS total_revenue,
			COUNT(id) AS total_sales,
			COALESCE(AVG(total_amount), 0)::numeric AS avg_ticket
		FROM sales
		WHERE sale_status_desc = ? AND created_at >= ?
	`, models.SaleStatusCompleted, start).Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("general metrics query: %w", err)
	}

	return &models.MetricSnapshot{
		TotalRevenue: row.TotalRevenue.IntPart(),
		TotalSales:   row.TotalSales,
		AvgTicket:    row.AvgTicket.InexactFloat64(),
	}, nil
}

type weekdayRevenueRow struct {
	DayName      string
	DayOrder     int
	TotalRevenue decimal.Decimal
}

// RevenueByWeekday returns completed-sale revenue grouped by weekday since
// start. Day names are uppercase three-letter codes (MON..SUN); rows come
// back in ISO day order but consumers must not depend on that.
func (r *AnalyticsRepository) RevenueByWeekday(start time.Time) ([]models.RevenuePoint, error) {
	var rows []weekdayRevenueRow
	err := r.db.Raw(`
		SELECT
			TRIM(TO_CHAR(created_at, 'DY')) AS day_name,
			TO_CHAR(created_at, 'ID')::int AS day_order,
			SUM(total_amount)::numeric AS total_revenue
		FROM sales
		WHERE sale_status_desc = ? AND created_at >= ?
		GROUP BY 1, 2
		ORDER BY day_order
	`, models.SaleStatusCompleted, start).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("weekday revenue query: %w", err)
	}

	points := make([]models.RevenuePoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, models.RevenuePoint{
			Name:    row.DayName,
			Revenue: row.TotalRevenue.IntPart(),
		})
	}
	return points, nil
}

type topProductRow struct {
	Name          string
	TotalQuantity decimal.Decimal
	TotalRevenue  decimal.Decimal
}

// TopProducts returns the best-selling products by revenue, at most limit
func (r *AnalyticsRepository) TopProducts(limit int) ([]models.ProductEntry, error) {
	var rows []topProductRow
	err := r.db.Raw(`
		SELECT
			p.name,
			SUM(ps.quantity)::numeric AS total_quantity,
			SUM(ps.total_price)::numeric AS total_revenue
		FROM product_sales ps
		JOIN products p ON ps.product_id = p.id
		JOIN sales s ON ps.sale_id = s.id
		WHERE s.sale_status_desc = ?
		GROUP BY 1
		ORDER BY total_revenue DESC
		LIMIT ?
	`, models.SaleStatusCompleted, limit).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("top products query: %w", err)
	}

	entries := make([]models.ProductEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, models.ProductEntry{
			Name:    row.Name,
			Sales:   row.TotalQuantity.IntPart(),
			Revenue: row.TotalRevenue.IntPart(),
		})
	}
	return entries, nil
}

type hourlyVolumeRow struct {
	Hour   int
	Orders int64
}

// HourlyVolume returns completed-order counts per hour of day. Only hours
// with at least one order produce a row.
func (r *AnalyticsRepository) HourlyVolume() ([]models.HourlyEntry, error) {
	var rows []hourlyVolumeRow
	err := r.db.Raw(`
		SELECT
			EXTRACT(HOUR FROM created_at)::int AS hour,
			COUNT(id) AS orders
		FROM sales
		WHERE sale_status_desc = ?
		GROUP BY 1
		ORDER BY 1
	`, models.SaleStatusCompleted).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("hourly volume query: %w", err)
	}

	entries := make([]models.HourlyEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, models.HourlyEntry{
			Hour:   row.Hour,
			Orders: row.Orders,
		})
	}
	return entries, nil
}
