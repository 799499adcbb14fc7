package dashboard

import (
	"sort"

	"nola/pkg/models"
)

// Column identifies a sortable column of the top-products table
type Column string

const (
	ColumnName    Column = "name"
	ColumnSales   Column = "Vendas"
	ColumnRevenue Column = "Faturamento"
)

// SortDirection is the direction of a column sort
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// TableSort holds the top-products table's sort state
type TableSort struct {
	Key       Column
	Direction SortDirection
}

// DefaultTableSort is the initial table state: revenue, highest first
func DefaultTableSort() TableSort {
	return TableSort{Key: ColumnRevenue, Direction: SortDesc}
}

// Click applies a header click: the active column toggles direction, a new
// column becomes active ascending.
func (s *TableSort) Click(col Column) {
	if s.Key == col {
		if s.Direction == SortAsc {
			s.Direction = SortDesc
		} else {
			s.Direction = SortAsc
		}
		return
	}
	s.Key = col
	s.Direction = SortAsc
}

// Apply returns entries sorted by the current key and direction. The input
// slice is left untouched.
func (s TableSort) Apply(entries []models.ProductEntry) []models.ProductEntry {
	out := make([]models.ProductEntry, len(entries))
	copy(out, entries)

	less := func(i, j int) bool {
		switch s.Key {
		case ColumnName:
			return out[i].Name < out[j].Name
		case ColumnSales:
			return out[i].Sales < out[j].Sales
		default:
			return out[i].Revenue < out[j].Revenue
		}
	}

	if s.Direction == SortDesc {
		sort.Slice(out, func(i, j int) bool { return less(j, i) })
	} else {
		sort.Slice(out, less)
	}

	return out
}
