package familytable

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type cellConverter struct{}

func newCellConverter() *cellConverter {
	return &cellConverter{}
}

// cellToCount converts a count cell into an int. Workbooks sometimes store
// whole numbers as floats ("120.0"), so a float without a fractional part is
// accepted as well.
func (c *cellConverter) cellToCount(cell string) (int, error) {
	cell = strings.TrimSpace(cell)

	if n, err := strconv.Atoi(cell); err == nil {
		return n, nil
	}

	f, err := strconv.ParseFloat(cell, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, errors.Errorf("'%s' is not an integer count", cell)
	}

	return int(f), nil
}

// cellAt returns the trimmed cell at index, or "" when the row is shorter
// than the header.
func cellAt(cells []string, index int) string {
	if index < 0 || index >= len(cells) {
		return ""
	}

	return strings.TrimSpace(cells[index])
}
