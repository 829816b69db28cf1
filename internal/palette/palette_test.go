package palette

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestTab20(t *testing.T) {
	require.Equal(t, 20, Tab20.Len())
	assert.Equal(t, "#1f77b4", Hex(Tab20.At(0)))
	assert.Equal(t, "#9edae5", Hex(Tab20.At(19)))

	seen := make(map[string]bool)
	for i := 0; i < Tab20.Len(); i++ {
		seen[Hex(Tab20.At(i))] = true
	}
	assert.Len(t, seen, 20, "tab20 colors must be distinct")
}

func TestAssignScenario(t *testing.T) {
	a := Tab20.Assign([]string{"S1", "C1", "M1"})

	require.Equal(t, []string{"C1", "M1", "S1"}, a.Families())
	for i, family := range a.Families() {
		c, ok := a.Color(family)
		require.True(t, ok)
		assert.Equal(t, Tab20.At(i), c, family)
	}

	_, ok := a.Color("S8")
	assert.False(t, ok)
}

func TestAssignIgnoresOrderAndDuplicates(t *testing.T) {
	first := Tab20.Assign([]string{"S1", "C1", "M1", "S1"})
	second := Tab20.Assign([]string{"M1", "M1", "S1", "C1"})

	assert.Equal(t, 3, first.Len())
	assert.Equal(t, first.Entries(), second.Entries())
}

func TestAssignCyclesPastPaletteSize(t *testing.T) {
	var families []string
	for i := 0; i < 45; i++ {
		families = append(families, fmt.Sprintf("F%02d", i))
	}

	a := Tab20.Assign(families)
	require.Equal(t, 45, a.Len())

	for i := 0; i+Tab20.Len() < 45; i++ {
		c1, _ := a.Color(families[i])
		c2, _ := a.Color(families[i+Tab20.Len()])
		assert.Equal(t, c1, c2, "%s and %s", families[i], families[i+Tab20.Len()])
	}

	c0, _ := a.Color("F00")
	c1, _ := a.Color("F01")
	assert.NotEqual(t, c0, c1)
}

func TestAssignEmpty(t *testing.T) {
	a := Tab20.Assign(nil)
	assert.Equal(t, 0, a.Len())
	assert.Empty(t, a.Entries())
}

func TestNew(t *testing.T) {
	p, err := New("#ff0000", "00ff00", " #0000FF ")
	require.NoError(t, err)
	require.Equal(t, 3, p.Len())
	assert.Equal(t, "#ff0000", Hex(p.At(0)))
	assert.Equal(t, "#00ff00", Hex(p.At(1)))
	assert.Equal(t, "#0000ff", Hex(p.At(2)))
	assert.Equal(t, "#ff0000", Hex(p.At(3)))

	_, err = New()
	assert.Error(t, err)

	_, err = New("#ff0000", "#nothex")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "#nothex")
}

func TestByName(t *testing.T) {
	p, err := ByName("tab20")
	require.NoError(t, err)
	assert.Equal(t, Tab20, p)

	p, err = ByName("")
	require.NoError(t, err)
	assert.Equal(t, Tab20, p)

	p, err = ByName("#112233,#445566")
	require.NoError(t, err)
	assert.Equal(t, 2, p.Len())

	_, err = ByName("viridis")
	assert.Error(t, err)
}

func TestWriteYAML(t *testing.T) {
	a := Tab20.Assign([]string{"S1", "C1"})

	var buf bytes.Buffer
	require.NoError(t, a.WriteYAML(&buf))

	var doc struct {
		Families []Entry `yaml:"families"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, []Entry{
		{Family: "C1", Color: "#1f77b4"},
		{Family: "S1", Color: "#aec7e8"},
	}, doc.Families)
}
