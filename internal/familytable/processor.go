package familytable

import (
	"io"

	"github.com/phanipv-web/Whole-genome-analysis/internal/familytable/model"
	"github.com/phanipv-web/Whole-genome-analysis/internal/familytable/processor"
	"github.com/phanipv-web/Whole-genome-analysis/internal/palette"
	"go.uber.org/zap"
)

// Processor consumes a transformed table.
type Processor interface {
	Apply(table *model.Table) error
}

func Display(p palette.Palette, out io.Writer) Processor {
	return processor.NewDisplayer(p, out)
}

func Plot(style processor.Style, p palette.Palette, outputs []string, out io.Writer, log *zap.Logger) Processor {
	return processor.NewPlotter(style, p, outputs, out, log)
}

// Run loads the table at path, transforms it and hands it to every processor
// in order. It stops at the first error.
func Run(path string, headerRow int, processors ...Processor) (*model.Table, error) {
	table, err := LoadFile(path, headerRow)
	if err != nil {
		return nil, err
	}

	Transform(table)

	for _, p := range processors {
		if err := p.Apply(table); err != nil {
			return table, err
		}
	}

	return table, nil
}
