package processor

import (
	"strings"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
)

// Style holds every presentation setting of a family chart. Nothing is read
// from global plotting state; two plotters with different styles can be used
// side by side.
type Style struct {
	// Typeface and Variant select the font, for example Liberation/Sans.
	// A face that isn't available falls back to the plot default.
	Typeface string `mapstructure:"typeface"`
	Variant  string `mapstructure:"variant"`

	// Weight is one of thin, light, normal, medium, semibold, bold,
	// extrabold or black.
	Weight string `mapstructure:"weight"`

	FontSize   float64 `mapstructure:"font_size"`
	TitleSize  float64 `mapstructure:"title_size"`
	LabelSize  float64 `mapstructure:"label_size"`
	TickSize   float64 `mapstructure:"tick_size"`
	LegendSize float64 `mapstructure:"legend_size"`

	// Width and Height of the figure in inches.
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`

	// DPI is only used for raster output.
	DPI int `mapstructure:"dpi"`

	Title       string `mapstructure:"title"`
	XLabel      string `mapstructure:"xlabel"`
	YLabel      string `mapstructure:"ylabel"`
	LegendTitle string `mapstructure:"legend_title"`

	// LegendTop and LegendLeft place the legend. Both false is the lower
	// right corner.
	LegendTop  bool `mapstructure:"legend_top"`
	LegendLeft bool `mapstructure:"legend_left"`

	// BarFraction is the share of each row's slot covered by its bar.
	BarFraction float64 `mapstructure:"bar_fraction"`
}

func DefaultStyle() Style {
	return Style{
		Typeface:    "Liberation",
		Variant:     "Sans",
		Weight:      "bold",
		FontSize:    10,
		TitleSize:   10,
		LabelSize:   10,
		TickSize:    10,
		LegendSize:  8,
		Width:       10,
		Height:      7,
		DPI:         1000,
		Title:       "MEROPS peptidase family composition (Top 25)",
		XLabel:      "Number of proteins",
		YLabel:      "MEROPS family (catalytic type)",
		LegendTitle: "MEROPS family",
		BarFraction: 0.8,
	}
}

var weights = map[string]xfont.Weight{
	"thin":      xfont.WeightThin,
	"light":     xfont.WeightLight,
	"normal":    xfont.WeightNormal,
	"regular":   xfont.WeightNormal,
	"medium":    xfont.WeightMedium,
	"semibold":  xfont.WeightSemiBold,
	"bold":      xfont.WeightBold,
	"extrabold": xfont.WeightExtraBold,
	"black":     xfont.WeightBlack,
}

// FontWeight returns the weight named by Weight. Unknown names are normal.
func (s Style) FontWeight() xfont.Weight {
	if w, ok := weights[strings.ToLower(strings.TrimSpace(s.Weight))]; ok {
		return w
	}

	return xfont.WeightNormal
}

// Font returns the style's font at the given size in points. A size of 0
// uses FontSize.
func (s Style) Font(size float64) font.Font {
	if size <= 0 {
		size = s.FontSize
	}

	return font.Font{
		Typeface: font.Typeface(s.Typeface),
		Variant:  font.Variant(s.Variant),
		Weight:   s.FontWeight(),
		Size:     vg.Points(size),
	}
}

// Size returns the figure size.
func (s Style) Size() (width, height vg.Length) {
	return vg.Length(s.Width) * vg.Inch, vg.Length(s.Height) * vg.Inch
}

// BarWidth returns the thickness of each bar when n bars share the figure.
func (s Style) BarWidth(n int) vg.Length {
	if n <= 0 {
		return 0
	}

	fraction := s.BarFraction
	if fraction <= 0 || fraction > 1 {
		fraction = 0.8
	}

	// Roughly an inch is taken up by the title and the x axis.
	_, height := s.Size()
	area := height - vg.Inch
	if area <= 0 {
		area = height
	}

	return vg.Length(fraction) * area / vg.Length(n)
}

// apply sets the text of the plot and the fonts of every text element.
func (s Style) apply(p *plot.Plot) {
	p.Title.Text = s.Title
	p.Title.TextStyle.Font = s.Font(s.TitleSize)

	p.X.Label.Text = s.XLabel
	p.X.Label.TextStyle.Font = s.Font(s.LabelSize)
	p.X.Tick.Label.Font = s.Font(s.TickSize)

	p.Y.Label.Text = s.YLabel
	p.Y.Label.TextStyle.Font = s.Font(s.LabelSize)
	p.Y.Tick.Label.Font = s.Font(s.TickSize)

	p.Legend.TextStyle.Font = s.Font(s.LegendSize)
	p.Legend.Top = s.LegendTop
	p.Legend.Left = s.LegendLeft
}
