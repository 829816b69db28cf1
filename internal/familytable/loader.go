package familytable

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/hashicorp/go-multierror"
	"github.com/phanipv-web/Whole-genome-analysis/internal/familytable/model"
	"github.com/pkg/errors"
)

// Loader loads one or more family tables. HeaderRow is the number of rows to
// skip before the header row.
type Loader struct {
	HeaderRow int
	Paths     []string
}

func NewLoader(headerRow int, paths []string) *Loader {
	return &Loader{
		HeaderRow: headerRow,
		Paths:     paths,
	}
}

// Load loads every path in the loader. A failing table doesn't stop the
// remaining tables from being loaded; all the failures are returned together
// in a multierror so they can be reported back to the user at once.
func (l *Loader) Load() ([]*model.Table, error) {
	var (
		tables    []*model.Table
		savedErrs *multierror.Error
	)

	for _, path := range l.Paths {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}

		table, err := LoadFile(path, l.HeaderRow)
		if err != nil {
			savedErrs = multierror.Append(savedErrs, err)
			continue
		}
		tables = append(tables, table)
	}

	return tables, savedErrs.ErrorOrNil()
}

// LoadFile will load the given family table. Files ending in .xlsx are read as
// Excel workbooks (the first worksheet is used), everything else is read as
// tab separated text. Either way the table must have the following format:
//   The header row contains at least the columns
//     |Family|Catalytic_type|Count|
//   in any order and possibly mixed with other columns, which are ignored.
// Example:
//     |Family|Catalytic_type|Count|Clan|
//     |S1    |serine        |120  |PA  |
//     |C1    |cysteine      |45   |CA  |
//
// Rows are returned in the order they appear in the file.
func LoadFile(path string, headerRow int) (*model.Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return loadWorkbook(path, headerRow)
	}

	return loadDelimited(path, headerRow)
}

func loadDelimited(path string, headerRow int) (*model.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open family table %s", path)
	}
	defer f.Close()

	return readDelimited(f, path, headerRow)
}

// readDelimited reads a tab separated table from r. name is used to identify
// the table in errors.
func readDelimited(r io.Reader, name string, headerRow int) (*model.Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rowProcessor := newRowProcessor(name)

	// skip specified rows to header
	for i := 0; i < headerRow; i++ {
		if _, err := reader.Read(); err != nil {
			break
		}
	}

	header, err := reader.Read()
	switch {
	case err == io.EOF:
		// An empty file has no header so every required column is missing.
		return nil, rowProcessor.processHeaderRow(nil)
	case err != nil:
		return nil, errors.Wrapf(err, "unable to read header of %s", name)
	}

	if err := rowProcessor.processHeaderRow(header); err != nil {
		return nil, err
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, errors.Wrapf(err, "unable to read %s", name)
		}

		line, _ := reader.FieldPos(0)
		if err := rowProcessor.processDataRow(record, line); err != nil {
			return nil, err
		}
	}

	return rowProcessor.table, nil
}

// loadWorkbook loads the first worksheet of an excel workbook. The rows follow
// the same layout as a tab separated table. The table is named path:worksheet.
func loadWorkbook(path string, headerRow int) (*model.Table, error) {
	xlsx, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open workbook %s", path)
	}

	worksheetName := firstWorksheet(xlsx.GetSheetMap())
	if worksheetName == "" {
		return nil, fmt.Errorf("workbook %s has no worksheets", path)
	}

	rows, err := xlsx.Rows(worksheetName)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read worksheet %s in %s", worksheetName, path)
	}

	rowProcessor := newRowProcessor(fmt.Sprintf("%s:%s", path, worksheetName))
	row := 0

	// skip specified rows to header
	for i := 0; i < headerRow; i++ {
		rows.Next()
		row++
	}

	// First row is the header row that identifies the columns. We process this first
	// outside of the loop that processes each of the family rows.
	var header []string
	if rows.Next() {
		row++
		header = rows.Columns()
	}

	if err := rowProcessor.processHeaderRow(header); err != nil {
		return nil, err
	}

	for rows.Next() {
		row++
		if err := rowProcessor.processDataRow(rows.Columns(), row); err != nil {
			return nil, err
		}
	}

	return rowProcessor.table, nil
}

// firstWorksheet returns the name of the worksheet with the lowest index.
func firstWorksheet(sheets map[int]string) string {
	var indexes []int
	for index := range sheets {
		indexes = append(indexes, index)
	}

	if len(indexes) == 0 {
		return ""
	}

	sort.Ints(indexes)
	return sheets[indexes[0]]
}
