package processor

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phanipv-web/Whole-genome-analysis/internal/familytable/model"
	"github.com/phanipv-web/Whole-genome-analysis/internal/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot/vg"
)

// testStyle keeps raster output small. The font weight stays at the default.
func testStyle() Style {
	style := DefaultStyle()
	style.DPI = 10
	return style
}

// scenarioTable is already transformed: sorted by count and labeled.
func scenarioTable() *model.Table {
	table := model.NewTable("scenario")
	for _, row := range []*model.Row{
		{Family: "C1", CatalyticType: "cysteine", Count: 45, Label: "C1 (cysteine)"},
		{Family: "M1", CatalyticType: "metallo", Count: 80, Label: "M1 (metallo)"},
		{Family: "S1", CatalyticType: "serine", Count: 120, Label: "S1 (serine)"},
		{Family: "S1", CatalyticType: "serine", Count: 130, Label: "S1 (serine)"},
	} {
		table.AddRow(row)
	}
	return table
}

func TestPlotterWritesEveryOutput(t *testing.T) {
	dir := t.TempDir()
	outputs := []string{
		filepath.Join(dir, "chart.png"),
		filepath.Join(dir, "chart.pdf"),
		filepath.Join(dir, "chart.svg"),
	}

	var out bytes.Buffer
	plotter := NewPlotter(testStyle(), palette.Tab20, outputs, &out, nil)
	require.NoError(t, plotter.Apply(scenarioTable()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	for i, path := range outputs {
		assert.Equal(t, "Wrote: "+path, lines[i])
	}

	f, err := os.Open(outputs[0])
	require.NoError(t, err)
	defer f.Close()
	config, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 100, config.Width)
	assert.Equal(t, 70, config.Height)

	pdf, err := os.ReadFile(outputs[1])
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))

	svg, err := os.ReadFile(outputs[2])
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}

func TestPlotterPNGIsReproducible(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.png")
	second := filepath.Join(dir, "second.png")

	require.NoError(t, NewPlotter(testStyle(), palette.Tab20, []string{first}, nil, nil).Apply(scenarioTable()))
	require.NoError(t, NewPlotter(testStyle(), palette.Tab20, []string{second}, nil, nil).Apply(scenarioTable()))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPlotterWritesPDFAtEveryWeight(t *testing.T) {
	for _, weight := range []string{"normal", "bold", "black"} {
		t.Run(weight, func(t *testing.T) {
			style := testStyle()
			style.Weight = weight
			path := filepath.Join(t.TempDir(), "chart.pdf")

			plotter := NewPlotter(style, palette.Tab20, []string{path}, nil, nil)
			require.NoError(t, plotter.Apply(scenarioTable()))
			assert.FileExists(t, path)

			// Only the pdf is drawn at normal weight.
			assert.Equal(t, "normal", plotter.styleFor(path).Weight)
			assert.Equal(t, weight, plotter.styleFor("chart.png").Weight)
		})
	}
}

func TestPlotterEmptyTable(t *testing.T) {
	dir := t.TempDir()
	outputs := []string{
		filepath.Join(dir, "empty.png"),
		filepath.Join(dir, "empty.pdf"),
		filepath.Join(dir, "empty.svg"),
	}

	var out bytes.Buffer
	plotter := NewPlotter(testStyle(), palette.Tab20, outputs, &out, nil)
	require.NoError(t, plotter.Apply(model.NewTable("empty")))

	for _, path := range outputs {
		assert.FileExists(t, path)
	}
	assert.Equal(t, 3, strings.Count(out.String(), "Wrote: "))
	assert.Empty(t, plotter.Legend(model.NewTable("empty")))

	chart, err := plotter.Draw(model.NewTable("empty"), palette.Tab20.Assign(nil))
	require.NoError(t, err)
	assert.Empty(t, chart.Y.Tick.Marker.Ticks(chart.Y.Min, chart.Y.Max))
}

func TestPlotterMissingOutputDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "chart.pdf")

	var out bytes.Buffer
	err := NewPlotter(testStyle(), palette.Tab20, []string{path}, &out, nil).Apply(scenarioTable())
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
	assert.Empty(t, out.String())
}

func TestPlotterUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	pngPath := filepath.Join(dir, "chart.png")
	outputs := []string{pngPath, filepath.Join(dir, "chart.gif")}

	err := NewPlotter(testStyle(), palette.Tab20, outputs, nil, nil).Apply(scenarioTable())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chart.gif")
	assert.NoFileExists(t, pngPath, "nothing is written when an output is invalid")
}

func TestPlotterLegend(t *testing.T) {
	plotter := NewPlotter(testStyle(), palette.Tab20, nil, nil, nil)

	entries := plotter.Legend(scenarioTable())
	require.Len(t, entries, 3)
	for i, family := range []string{"C1", "M1", "S1"} {
		assert.Equal(t, family, entries[i].Family)
		assert.Equal(t, palette.Tab20.At(i), entries[i].Color)
	}
}

func TestDrawRequiresAssignedColors(t *testing.T) {
	plotter := NewPlotter(testStyle(), palette.Tab20, nil, nil, nil)

	_, err := plotter.Draw(scenarioTable(), palette.Tab20.Assign([]string{"C1"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "M1")

	chart, err := plotter.Draw(scenarioTable(), palette.Tab20.Assign(scenarioTable().Families()))
	require.NoError(t, err)
	assert.Equal(t, "MEROPS peptidase family composition (Top 25)", chart.Title.Text)
	assert.Equal(t, "Number of proteins", chart.X.Label.Text)
	assert.Equal(t, "MEROPS family (catalytic type)", chart.Y.Label.Text)
	assert.Equal(t, 0.0, chart.X.Min)
	assert.Equal(t, 130.0, chart.X.Max)
}

func TestStyle(t *testing.T) {
	style := DefaultStyle()

	width, height := style.Size()
	assert.Equal(t, 10*vg.Inch, width)
	assert.Equal(t, 7*vg.Inch, height)

	assert.Equal(t, xfont.WeightBold, style.FontWeight())
	style.Weight = "Black"
	assert.Equal(t, xfont.WeightBlack, style.FontWeight())
	style.Weight = "heavy-ish"
	assert.Equal(t, xfont.WeightNormal, style.FontWeight())

	assert.Equal(t, vg.Points(8), style.Font(style.LegendSize).Size)
	assert.Equal(t, vg.Points(10), style.Font(0).Size)

	assert.Equal(t, vg.Length(0), style.BarWidth(0))
	assert.True(t, style.BarWidth(25) < style.BarWidth(3))
}
