package rotkin

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Theme collects the styling of figures. Lengths and font sizes are in
// points, figure dimensions in inches.
type Theme struct {
	FontTypeface string `yaml:"font_typeface"`
	FontVariant  string `yaml:"font_variant"`

	TitleSize     float64 `yaml:"title_size"`
	LabelSize     float64 `yaml:"label_size"`
	LegendSize    float64 `yaml:"legend_size"`
	TickLabelSize float64 `yaml:"tick_label_size"`

	AxisLineWidth   float64 `yaml:"axis_line_width"`
	LineWidth       float64 `yaml:"line_width"`
	TickWidth       float64 `yaml:"tick_width"`
	MajorTickLength float64 `yaml:"major_tick_length"`
	TickPad         float64 `yaml:"tick_pad"`
	MinorTicks      bool    `yaml:"minor_ticks"`
	Grid            bool    `yaml:"grid"`

	PointRadius float64 `yaml:"point_radius"`
	Alpha       float64 `yaml:"alpha"`

	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Format string  `yaml:"format"`
}

// DefaultTheme uses large serif fonts and minor ticks for legible
// figures in papers.
var DefaultTheme = Theme{
	FontTypeface: "Liberation",
	FontVariant:  "Serif",

	TitleSize:     18,
	LabelSize:     30,
	LegendSize:    25,
	TickLabelSize: 20,

	AxisLineWidth:   1.5,
	LineWidth:       2,
	TickWidth:       1,
	MajorTickLength: 10,
	TickPad:         10,
	MinorTicks:      true,

	PointRadius: 3,
	Alpha:       0.5,

	Width:  10,
	Height: 10,
	Format: "eps",
}

// LoadTheme reads a YAML theme from path. Settings missing in the file
// keep their DefaultTheme value; unknown settings are an error.
func LoadTheme(path string) (Theme, error) {
	theme := DefaultTheme
	data, err := os.ReadFile(path)
	if err != nil {
		return theme, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&theme); err != nil && !errors.Is(err, io.EOF) {
		return theme, fmt.Errorf("%s: %w", path, err)
	}
	if theme.Width <= 0 || theme.Height <= 0 {
		return theme, fmt.Errorf("%s: figure size %gx%g must be positive", path, theme.Width, theme.Height)
	}
	return theme, nil
}
