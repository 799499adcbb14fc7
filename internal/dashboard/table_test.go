package dashboard

import (
	"reflect"
	"testing"

	"nola/pkg/models"
)

func testEntries() []models.ProductEntry {
	return []models.ProductEntry{
		{Name: "X-Burger", Sales: 120, Revenue: 3400},
		{Name: "Batata Frita", Sales: 300, Revenue: 5400},
		{Name: "Milkshake", Sales: 80, Revenue: 1350},
	}
}

func TestDefaultTableSort(t *testing.T) {
	s := DefaultTableSort()
	if s.Key != ColumnRevenue || s.Direction != SortDesc {
		t.Errorf("default sort = %+v, expected revenue descending", s)
	}

	got := s.Apply(testEntries())
	if got[0].Name != "Batata Frita" || got[2].Name != "Milkshake" {
		t.Errorf("unexpected order: %+v", got)
	}
}

func TestClickTogglesActiveColumn(t *testing.T) {
	s := DefaultTableSort()

	s.Click(ColumnRevenue)
	if s.Direction != SortAsc {
		t.Errorf("first click on active column should flip to ascending, got %+v", s)
	}

	s.Click(ColumnRevenue)
	if s.Direction != SortDesc {
		t.Errorf("second click should flip back to descending, got %+v", s)
	}
}

func TestClickNewColumnResetsAscending(t *testing.T) {
	s := DefaultTableSort()

	s.Click(ColumnSales)
	if s.Key != ColumnSales || s.Direction != SortAsc {
		t.Errorf("clicking a new column should reset to ascending, got %+v", s)
	}

	got := s.Apply(testEntries())
	if got[0].Sales != 80 || got[2].Sales != 300 {
		t.Errorf("unexpected order after sales ascending: %+v", got)
	}
}

func TestNameSortIsLexicographic(t *testing.T) {
	s := TableSort{Key: ColumnName, Direction: SortAsc}

	got := s.Apply(testEntries())
	if got[0].Name != "Batata Frita" || got[1].Name != "Milkshake" || got[2].Name != "X-Burger" {
		t.Errorf("unexpected lexicographic order: %+v", got)
	}
}

func TestDoubleToggleRestoresOrder(t *testing.T) {
	s := TableSort{Key: ColumnSales, Direction: SortAsc}
	first := s.Apply(testEntries())

	s.Click(ColumnSales)
	s.Click(ColumnSales)
	second := s.Apply(testEntries())

	if !reflect.DeepEqual(first, second) {
		t.Errorf("two toggles did not restore the order: %+v vs %+v", first, second)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	entries := testEntries()
	original := testEntries()

	TableSort{Key: ColumnName, Direction: SortAsc}.Apply(entries)

	if !reflect.DeepEqual(entries, original) {
		t.Errorf("Apply mutated its input: %+v", entries)
	}
}
