package processor

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/phanipv-web/Whole-genome-analysis/internal/familytable/model"
	"github.com/phanipv-web/Whole-genome-analysis/internal/palette"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Plotter draws a transformed family table as a horizontal bar chart and
// writes it to every path in Outputs. The output format is chosen by the
// path's extension: .png, .pdf or .svg.
type Plotter struct {
	Style   Style
	Palette palette.Palette
	Outputs []string

	// out receives a "Wrote: <path>" line for every file written.
	out io.Writer
	log *zap.Logger
}

// LegendEntry is one family in the chart legend.
type LegendEntry struct {
	Family string
	Color  color.RGBA
}

func NewPlotter(style Style, p palette.Palette, outputs []string, out io.Writer, log *zap.Logger) *Plotter {
	if log == nil {
		log = zap.NewNop()
	}

	if out == nil {
		out = io.Discard
	}

	return &Plotter{
		Style:   style,
		Palette: p,
		Outputs: outputs,
		out:     out,
		log:     log,
	}
}

// Apply draws the table and saves it. The table must already be transformed,
// bars are drawn in row order from the bottom of the chart to the top.
func (p *Plotter) Apply(table *model.Table) error {
	// Make sure every output can be written before spending time drawing.
	for _, path := range p.Outputs {
		if _, err := formatOf(path); err != nil {
			return err
		}
	}

	assignment := p.Palette.Assign(table.Families())

	for _, path := range p.Outputs {
		style := p.styleFor(path)
		chart, err := p.draw(table, assignment, style)
		if err != nil {
			return err
		}

		if err := p.save(chart, path, style); err != nil {
			return err
		}
		fmt.Fprintf(p.out, "Wrote: %s\n", path)
	}

	return nil
}

// styleFor returns the style used for the output at path. The PDF canvas can
// only resolve the regular face of the bundled fonts, so PDFs are drawn at
// normal weight.
func (p *Plotter) styleFor(path string) Style {
	style := p.Style
	if format, _ := formatOf(path); format == "pdf" && style.FontWeight() != xfont.WeightNormal {
		p.log.Debug("pdf output uses normal font weight",
			zap.String("path", path),
			zap.String("weight", style.Weight))
		style.Weight = "normal"
	}

	return style
}

// Legend returns the legend entries for the table: every distinct family
// once, in lexicographic order, with its assigned color.
func (p *Plotter) Legend(table *model.Table) []LegendEntry {
	return legendEntries(p.Palette.Assign(table.Families()))
}

func legendEntries(assignment *palette.Assignment) []LegendEntry {
	entries := make([]LegendEntry, 0, assignment.Len())
	for _, family := range assignment.Families() {
		c, _ := assignment.Color(family)
		entries = append(entries, LegendEntry{Family: family, Color: c})
	}

	return entries
}

// Draw builds the chart for the table using the given color assignment. Each
// row becomes its own bar so that every bar can carry its family's color.
func (p *Plotter) Draw(table *model.Table, assignment *palette.Assignment) (*plot.Plot, error) {
	return p.draw(table, assignment, p.Style)
}

func (p *Plotter) draw(table *model.Table, assignment *palette.Assignment, style Style) (*plot.Plot, error) {
	chart := plot.New()
	style.apply(chart)
	chart.X.Min = 0

	barWidth := style.BarWidth(len(table.Rows))
	labels := make([]string, 0, len(table.Rows))

	for i, row := range table.Rows {
		bar, err := plotter.NewBarChart(plotter.Values{float64(row.Count)}, barWidth)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to create bar for %s", row.Label)
		}

		c, ok := assignment.Color(row.Family)
		if !ok {
			return nil, fmt.Errorf("family '%s' has no assigned color", row.Family)
		}

		bar.Horizontal = true
		bar.XMin = float64(i)
		bar.Color = c
		bar.LineStyle.Width = 0
		chart.Add(bar)

		labels = append(labels, row.Label)
	}

	if len(labels) != 0 {
		chart.NominalY(labels...)
	} else {
		// No rows: an empty chart with fixed axes and no y ticks.
		chart.Y.Tick.Marker = plot.ConstantTicks(nil)
		chart.Y.Min, chart.Y.Max = 0, 1
		chart.X.Max = 1
	}

	entries := legendEntries(assignment)
	if len(entries) != 0 && style.LegendTitle != "" {
		chart.Legend.Add(style.LegendTitle)
	}

	for _, entry := range entries {
		chart.Legend.Add(entry.Family, swatch{color: entry.Color})
	}

	p.log.Debug("drew family chart",
		zap.String("table", table.Name),
		zap.Int("bars", len(table.Rows)),
		zap.Int("families", len(entries)))

	return chart, nil
}

func (p *Plotter) save(chart *plot.Plot, path string, style Style) error {
	canvas, err := canvasFor(path, style)
	if err != nil {
		return err
	}

	chart.Draw(draw.New(canvas))

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "unable to create %s", path)
	}

	if _, err := canvas.WriteTo(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "unable to write %s", path)
	}

	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "unable to write %s", path)
	}

	p.log.Debug("saved family chart", zap.String("path", path))
	return nil
}

// formatOf returns the output format named by the path's extension.
func formatOf(path string) (string, error) {
	switch format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); format {
	case "png", "pdf", "svg":
		return format, nil
	default:
		return "", fmt.Errorf("unsupported output format for %s, use .png, .pdf or .svg", path)
	}
}

// canvasFor returns an empty canvas for the format named by the path's
// extension.
func canvasFor(path string, style Style) (vg.CanvasWriterTo, error) {
	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}

	width, height := style.Size()

	switch format {
	case "png":
		dpi := style.DPI
		if dpi <= 0 {
			dpi = vgimg.DefaultDPI
		}
		c := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(dpi))
		return vgimg.PngCanvas{Canvas: c}, nil
	case "pdf":
		return vgpdf.New(width, height), nil
	default:
		return vgsvg.New(width, height), nil
	}
}

// swatch is the legend thumbnail for a family, a box filled with its color.
type swatch struct {
	color color.Color
}

func (s swatch) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(s.color, c.ClipPolygonY(pts))
}
