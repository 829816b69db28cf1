package model

import "sort"

// Table represents a loaded family table. For text files Name is the path of
// the file. For workbooks it is path:worksheet so that errors and display
// output can point at the worksheet the rows came from.
//
// Rows are kept in the order they were read until the table is transformed.
// After a transform the rows are sorted by ascending count and every row has
// a Label.
type Table struct {
	Name string
	Rows []*Row
}

func NewTable(name string) *Table {
	return &Table{Name: name}
}

func (t *Table) AddRow(row *Row) {
	t.Rows = append(t.Rows, row)
}

// Families returns the distinct family names in the table in lexicographic
// order.
func (t *Table) Families() []string {
	seen := make(map[string]bool)
	var families []string
	for _, row := range t.Rows {
		if !seen[row.Family] {
			seen[row.Family] = true
			families = append(families, row.Family)
		}
	}

	sort.Strings(families)
	return families
}
