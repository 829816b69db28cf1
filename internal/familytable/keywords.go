package familytable

/*
 * keywords maps header cells to the column they identify. Header cells are
 * normalized before lookup, so "Catalytic_type", "catalytic type" and
 * "CATALYTIC-TYPE" all identify the catalytic type column.
 */

import (
	"strings"
)

// Header names that identify the family column
var FamilyKeywords = map[string]bool{
	"family": true,
}

// Header names that identify the catalytic type column
var CatalyticTypeKeywords = map[string]bool{
	"catalytic_type": true,
}

// Header names that identify the count column
var CountKeywords = map[string]bool{
	"count": true,
}

// byteOrderMark is stripped from the first header cell. Tables exported from
// spreadsheet programs frequently start with one.
const byteOrderMark = "\ufeff"

// normalizeHeader lower cases the cell and turns spaces and dashes into
// underscores.
func normalizeHeader(cell string) string {
	cell = strings.TrimPrefix(cell, byteOrderMark)
	cell = strings.ToLower(strings.TrimSpace(cell))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(cell)
}

// columnTypeFromHeader returns the type of column the header cell identifies.
// Cells that don't match any keyword are ignored.
func columnTypeFromHeader(cell string) ColumnType {
	header := normalizeHeader(cell)

	switch {
	case FamilyKeywords[header]:
		return FamilyColumn
	case CatalyticTypeKeywords[header]:
		return CatalyticTypeColumn
	case CountKeywords[header]:
		return CountColumn
	default:
		return IgnoreColumn
	}
}

// isBlankRow returns true if every cell in the row is empty after trimming.
func isBlankRow(cells []string) bool {
	for _, cell := range cells {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}
