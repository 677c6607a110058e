// Package geom draws the figures of rotkin with gonum/plot: scatter plots,
// grouped box plots and histograms, all styled by a rotkin.Theme.
package geom

import (
	"fmt"
	"image/color"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/rotkin"
)

// NewFigure sets up an empty plot styled by theme.
func NewFigure(theme rotkin.Theme, title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	Apply(p, theme)
	return p
}

// Apply styles p according to theme.
func Apply(p *plot.Plot, theme rotkin.Theme) {
	fnt := font.Font{
		Typeface: font.Typeface(theme.FontTypeface),
		Variant:  font.Variant(theme.FontVariant),
	}
	setFont := func(s *text.Style, size float64) {
		s.Font = fnt
		s.Font.Size = vg.Points(size)
	}

	setFont(&p.Title.TextStyle, theme.TitleSize)
	setFont(&p.Legend.TextStyle, theme.LegendSize)
	for _, axis := range []*plot.Axis{&p.X, &p.Y} {
		setFont(&axis.Label.TextStyle, theme.LabelSize)
		setFont(&axis.Tick.Label, theme.TickLabelSize)
		axis.Label.Padding = vg.Points(theme.TickPad)
		axis.LineStyle.Width = vg.Points(theme.AxisLineWidth)
		axis.Tick.LineStyle.Width = vg.Points(theme.TickWidth)
		axis.Tick.Length = vg.Points(theme.MajorTickLength)
		if !theme.MinorTicks {
			axis.Tick.Marker = majorTicks{axis.Tick.Marker}
		}
	}
	if theme.Grid {
		p.Add(plotter.NewGrid())
	}
}

// majorTicks drops the unlabeled minor ticks of its Ticker.
type majorTicks struct {
	plot.Ticker
}

func (m majorTicks) Ticks(min, max float64) []plot.Tick {
	var major []plot.Tick
	for _, t := range m.Ticker.Ticks(min, max) {
		if !t.IsMinor() {
			major = append(major, t)
		}
	}
	return major
}

// Save writes p to path in theme's size. Without extension in path the
// theme's format is used.
func Save(p *plot.Plot, theme rotkin.Theme, path string) (string, error) {
	if filepath.Ext(path) == "" {
		path += "." + theme.Format
	}
	w, h := vg.Length(theme.Width)*vg.Inch, vg.Length(theme.Height)*vg.Inch
	if err := p.Save(w, h, path); err != nil {
		return path, fmt.Errorf("saving %s: %w", path, err)
	}
	return path, nil
}

// palette returns n colors: the given ones or gonum's default colors if
// none are given.
func palette(colors []color.Color, n int) ([]color.Color, error) {
	if len(colors) == 0 {
		p := make([]color.Color, n)
		for i := range p {
			p[i] = plotutil.Color(i)
		}
		return p, nil
	}
	if len(colors) < n {
		return nil, fmt.Errorf("palette has %d colors, need %d", len(colors), n)
	}
	return colors, nil
}

// swatch is a filled legend entry.
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

// levels returns order if given, else the levels of field in df.
func levels(df *rotkin.DataFrame, field string, order []string) ([]string, error) {
	if len(order) > 0 {
		return order, nil
	}
	return rotkin.Levels(df, field)
}

// numeric returns the float data of field or an error for String fields.
func numeric(df *rotkin.DataFrame, field string) ([]float64, error) {
	f, err := df.Col(field)
	if err != nil {
		return nil, err
	}
	if f.Type == rotkin.String {
		return nil, fmt.Errorf("%s: field %s is not numeric", df.Name, field)
	}
	return f.Data, nil
}

// addLabels adds count labels at xys to p.
func addLabels(p *plot.Plot, xys plotter.XYs, texts []string, c color.Color, size float64) error {
	if len(xys) == 0 {
		return nil
	}
	l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return err
	}
	for i := range l.TextStyle {
		l.TextStyle[i].Color = c
		l.TextStyle[i].Font.Size = vg.Points(size)
		l.TextStyle[i].XAlign = draw.XCenter
	}
	p.Add(l)
	return nil
}
