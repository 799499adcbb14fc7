package models

// Wire types shared by the analytics API and the dashboard client. Field
// names follow the dashboard's chart bindings, so the Portuguese keys are
// part of the contract.

// MetricSnapshot represents the general metrics card block
type MetricSnapshot struct {
	TotalRevenue int64   `json:"totalRevenue"`
	TotalSales   int64   `json:"totalSales"`
	AvgTicket    float64 `json:"avgTicket"`
}

// RevenuePoint represents revenue for one weekday bucket. Name carries an
// uppercase three-letter day code (MON..SUN) on the wire; display
// translation is the client's job.
type RevenuePoint struct {
	Name    string `json:"name"`
	Revenue int64  `json:"Faturamento (R$)"`
}

// ProductEntry represents one row of the top-products table
type ProductEntry struct {
	Name    string `json:"name"`
	Sales   int64  `json:"Vendas"`
	Revenue int64  `json:"Faturamento"`
}

// HourlyEntry represents order volume for one hour-of-day bucket (0-23)
type HourlyEntry struct {
	Hour   int   `json:"hour"`
	Orders int64 `json:"Pedidos"`
}

// Period selects the revenue_period window
type Period string

const (
	Period7Days   Period = "7d"
	Period30Days  Period = "30d"
	PeriodMonth   Period = "month"
	Period6Months Period = "6m"
)

// Valid reports whether p is one of the four supported windows
func (p Period) Valid() bool {
	switch p {
	case Period7Days, Period30Days, PeriodMonth, Period6Months:
		return true
	}
	return false
}
