package familytable

import (
	"sort"

	"github.com/phanipv-web/Whole-genome-analysis/internal/familytable/model"
)

// Transform prepares a loaded table for display. The rows are sorted by
// ascending count and labeled. The table is modified in place and returned.
//
// Bars are drawn bottom to top in row order, so ascending order puts the
// largest family at the top of the chart.
func Transform(table *model.Table) *model.Table {
	SortByCount(table.Rows)
	AddLabels(table.Rows)
	return table
}

// SortByCount sorts rows by ascending count. Rows with equal counts keep
// their relative order.
func SortByCount(rows []*model.Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Count < rows[j].Count
	})
}

// AddLabels sets the Label of every row, see Label.
func AddLabels(rows []*model.Row) {
	for _, row := range rows {
		row.Label = Label(row.Family, row.CatalyticType)
	}
}

// Label returns the display label for a family, for example "S1 (serine)".
func Label(family, catalyticType string) string {
	return family + " (" + catalyticType + ")"
}
