package model

import "fmt"

// Row is a single data row from a family table. Family is the MEROPS family
// code, CatalyticType its catalytic type and Count the number of proteins
// assigned to the family. Label is not read from the table, it is derived
// after loading (see familytable.AddLabels).
type Row struct {
	Family        string
	CatalyticType string
	Count         int
	Label         string

	// Line is the 1 based line (or worksheet row) the row was read from.
	Line int
}

func NewRow(family, catalyticType string, count, line int) *Row {
	return &Row{
		Family:        family,
		CatalyticType: catalyticType,
		Count:         count,
		Line:          line,
	}
}

func (r *Row) String() string {
	return fmt.Sprintf("%s (%s): %d", r.Family, r.CatalyticType, r.Count)
}
