// Package palette assigns categorical colors to family names. Assignment is
// deterministic: a family's color depends only on its position among the
// distinct family names sorted lexicographically, never on row order or
// counts.
package palette

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Palette is an ordered list of colors. Colors are handed out in order and
// reused from the start once the palette is exhausted.
type Palette []color.RGBA

// tab20Hex is the 20 color categorical palette used for family charts.
var tab20Hex = []string{
	"#1f77b4", "#aec7e8", "#ff7f0e", "#ffbb78", "#2ca02c",
	"#98df8a", "#d62728", "#ff9896", "#9467bd", "#c5b0d5",
	"#8c564b", "#c49c94", "#e377c2", "#f7b6d2", "#7f7f7f",
	"#c7c7c7", "#bcbd22", "#dbdb8d", "#17becf", "#9edae5",
}

// Tab20 is the default palette.
var Tab20 = mustNew(tab20Hex...)

// named lists the palettes that can be selected by name.
var named = map[string]Palette{
	"tab20": Tab20,
}

// New creates a palette from hex color strings of the form #rrggbb.
func New(hexes ...string) (Palette, error) {
	if len(hexes) == 0 {
		return nil, errors.New("a palette needs at least one color")
	}

	p := make(Palette, 0, len(hexes))
	for _, hex := range hexes {
		hex = strings.TrimSpace(hex)
		if !strings.HasPrefix(hex, "#") {
			hex = "#" + hex
		}

		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid palette color '%s'", hex)
		}

		r, g, b := c.RGB255()
		p = append(p, color.RGBA{R: r, G: g, B: b, A: 0xff})
	}

	return p, nil
}

func mustNew(hexes ...string) Palette {
	p, err := New(hexes...)
	if err != nil {
		panic(err)
	}

	return p
}

// ByName returns a known palette. A name that isn't known is treated as a
// comma separated list of hex colors, so "tab20" and "#ff0000,#00ff00" are
// both valid.
func ByName(name string) (Palette, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Tab20, nil
	}

	if p, ok := named[strings.ToLower(name)]; ok {
		return p, nil
	}

	if !strings.Contains(name, "#") && !strings.Contains(name, ",") {
		return nil, fmt.Errorf("unknown palette '%s'", name)
	}

	return New(strings.Split(name, ",")...)
}

// Len returns the number of colors before the palette cycles.
func (p Palette) Len() int {
	return len(p)
}

// At returns the color for the given rank, cycling through the palette. An
// empty palette falls back to Tab20.
func (p Palette) At(i int) color.RGBA {
	if len(p) == 0 {
		return Tab20.At(i)
	}
	return p[i%len(p)]
}

// Assign builds the color assignment for the given families. Duplicates are
// ignored and the input order doesn't matter.
func (p Palette) Assign(families []string) *Assignment {
	seen := make(map[string]bool)
	var distinct []string
	for _, family := range families {
		if !seen[family] {
			seen[family] = true
			distinct = append(distinct, family)
		}
	}
	sort.Strings(distinct)

	a := &Assignment{
		families: distinct,
		colors:   make(map[string]color.RGBA, len(distinct)),
	}

	for i, family := range distinct {
		a.colors[family] = p.At(i)
	}

	return a
}
