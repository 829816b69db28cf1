package palette

import (
	"fmt"
	"image/color"
	"io"

	"gopkg.in/yaml.v2"
)

// Assignment maps each family to its color.
type Assignment struct {
	// families is sorted and has no duplicates
	families []string
	colors   map[string]color.RGBA
}

// Entry is a single family and its color as a #rrggbb string.
type Entry struct {
	Family string `yaml:"family"`
	Color  string `yaml:"color"`
}

// Families returns the assigned families in assignment order.
func (a *Assignment) Families() []string {
	families := make([]string, len(a.families))
	copy(families, a.families)
	return families
}

// Len returns the number of families that have a color.
func (a *Assignment) Len() int {
	return len(a.families)
}

// Color returns the color of a family. ok is false if the family wasn't part
// of the assignment.
func (a *Assignment) Color(family string) (c color.RGBA, ok bool) {
	c, ok = a.colors[family]
	return c, ok
}

// Entries returns the assignment as a list ordered like Families.
func (a *Assignment) Entries() []Entry {
	entries := make([]Entry, 0, len(a.families))
	for _, family := range a.families {
		entries = append(entries, Entry{Family: family, Color: Hex(a.colors[family])})
	}

	return entries
}

// WriteYAML writes the assignment to w as a YAML list of family/color pairs.
func (a *Assignment) WriteYAML(w io.Writer) error {
	out, err := yaml.Marshal(struct {
		Families []Entry `yaml:"families"`
	}{Families: a.Entries()})
	if err != nil {
		return err
	}

	_, err = w.Write(out)
	return err
}

// Hex formats a color as #rrggbb.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
