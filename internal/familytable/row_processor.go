package familytable

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/phanipv-web/Whole-genome-analysis/internal/familytable/model"
	"github.com/pkg/errors"
)

// rowProcessor handles processing of each row of a family table
type rowProcessor struct {
	// table is the table the rows are loaded into
	table *model.Table

	// columns is built while processing the header row. It maps each
	// required column type to its (0 based) position in the row.
	columns map[ColumnType]int

	converter *cellConverter
}

func newRowProcessor(tableName string) *rowProcessor {
	return &rowProcessor{
		table:     model.NewTable(tableName),
		columns:   make(map[ColumnType]int),
		converter: newCellConverter(),
	}
}

// processHeaderRow locates the required columns. Columns that aren't required
// are ignored. When a required column appears more than once the first one is
// used. Every missing column is reported, not just the first.
func (r *rowProcessor) processHeaderRow(cells []string) error {
	for index, cell := range cells {
		colType := columnTypeFromHeader(cell)
		if colType == IgnoreColumn {
			continue
		}

		if _, ok := r.columns[colType]; !ok {
			r.columns[colType] = index
		}
	}

	var missing *multierror.Error
	for _, required := range RequiredColumns {
		if _, ok := r.columns[required.Type]; !ok {
			e := fmt.Errorf("table '%s' is missing required column '%s'", r.table.Name, required.Name)
			missing = multierror.Append(missing, e)
		}
	}

	return missing.ErrorOrNil()
}

// processDataRow turns a data row into a model.Row and adds it to the table.
// Rows where every cell is blank are skipped.
func (r *rowProcessor) processDataRow(cells []string, line int) error {
	if isBlankRow(cells) {
		return nil
	}

	countCell := cellAt(cells, r.columns[CountColumn])
	count, err := r.converter.cellToCount(countCell)
	if err != nil {
		return errors.Wrapf(err, "table '%s' line %d", r.table.Name, line)
	}

	row := model.NewRow(
		cellAt(cells, r.columns[FamilyColumn]),
		cellAt(cells, r.columns[CatalyticTypeColumn]),
		count,
		line)
	r.table.AddRow(row)

	return nil
}
