package processor

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/phanipv-web/Whole-genome-analysis/internal/familytable/model"
	"github.com/phanipv-web/Whole-genome-analysis/internal/palette"
)

// Displayer prints a family table and its color assignment as text instead
// of drawing it.
type Displayer struct {
	Palette palette.Palette
	out     io.Writer
}

func NewDisplayer(p palette.Palette, out io.Writer) *Displayer {
	if out == nil {
		out = os.Stdout
	}

	return &Displayer{Palette: p, out: out}
}

func (d *Displayer) Apply(table *model.Table) error {
	assignment := d.Palette.Assign(table.Families())
	d.printRows(table, assignment)
	d.printLegend(assignment)
	return nil
}

// printRows prints the rows top to bottom as they appear in the chart, that
// is in reverse row order.
func (d *Displayer) printRows(table *model.Table, assignment *palette.Assignment) {
	fmt.Fprintf(d.out, "Table %s (%d rows)\n", table.Name, len(table.Rows))

	width := 0
	for _, row := range table.Rows {
		if len(row.Label) > width {
			width = len(row.Label)
		}
	}

	for i := len(table.Rows) - 1; i >= 0; i-- {
		row := table.Rows[i]
		c, _ := assignment.Color(row.Family)
		fmt.Fprintf(d.out, "%s%-*s %8d  %s\n", spaces(4), width, row.Label, row.Count, palette.Hex(c))
	}
}

func (d *Displayer) printLegend(assignment *palette.Assignment) {
	fmt.Fprintf(d.out, "%sLegend:\n", spaces(4))
	for _, entry := range assignment.Entries() {
		fmt.Fprintf(d.out, "%s%s %s\n", spaces(6), entry.Color, entry.Family)
	}
}

func spaces(count int) string {
	return strings.Repeat(" ", count)
}
