package dashboard

import (
	"fmt"
	"sort"

	"nola/pkg/models"
)

// PeakHourEmpty is returned by PeakHour when there is no hourly data
const PeakHourEmpty = "N/A"

// dayNamesPT maps backend day codes to pt-BR display names
var dayNamesPT = map[string]string{
	"MON": "Seg",
	"TUE": "Ter",
	"WED": "Qua",
	"THU": "Qui",
	"FRI": "Sex",
	"SAT": "Sáb",
	"SUN": "Dom",
}

// dayRank orders translated day names Monday-first. Unknown names sort
// after Sunday.
var dayRank = map[string]int{
	"Seg": 1,
	"Ter": 2,
	"Qua": 3,
	"Qui": 4,
	"Sex": 5,
	"Sáb": 6,
	"Dom": 7,
}

const unknownDayRank = 8

func rankOf(name string) int {
	if rank, ok := dayRank[name]; ok {
		return rank
	}
	return unknownDayRank
}

// OrderedRevenue translates each point's day code to its pt-BR name and
// sorts the result Monday-first. Unmapped codes pass through unchanged and
// sort last. The input slice is not modified; re-applying to an already
// ordered result is a no-op.
func OrderedRevenue(points []models.RevenuePoint) []models.RevenuePoint {
	out := make([]models.RevenuePoint, len(points))
	copy(out, points)

	for i := range out {
		if name, ok := dayNamesPT[out[i].Name]; ok {
			out[i].Name = name
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return rankOf(out[i].Name) < rankOf(out[j].Name)
	})

	return out
}

// PeakHour returns the hour bucket with the most orders, formatted as
// zero-padded "HH:00". Ties keep the first entry in input order; empty
// input yields PeakHourEmpty.
func PeakHour(entries []models.HourlyEntry) string {
	if len(entries) == 0 {
		return PeakHourEmpty
	}

	best := entries[0]
	for _, e := range entries[1:] {
		if e.Orders > best.Orders {
			best = e
		}
	}

	return fmt.Sprintf("%02d:00", best.Hour)
}
