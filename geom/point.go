package geom

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/rotkin"
)

// ScatterOptions selects the data of a scatter plot.
type ScatterOptions struct {
	X, Y string
	Hue  string // Optional; points are colored by level.

	HueOrder []string
	Palette  []color.Color
	Title    string
}

// Scatter draws Y against X. Rows with a missing coordinate are skipped.
func Scatter(df *rotkin.DataFrame, opts ScatterOptions, theme rotkin.Theme) (*plot.Plot, error) {
	x, err := numeric(df, opts.X)
	if err != nil {
		return nil, err
	}
	y, err := numeric(df, opts.Y)
	if err != nil {
		return nil, err
	}
	hueLevels := []string{""}
	var hf rotkin.Field
	if opts.Hue != "" {
		if hf, err = df.Col(opts.Hue); err != nil {
			return nil, err
		}
		if hueLevels, err = levels(df, opts.Hue, opts.HueOrder); err != nil {
			return nil, err
		}
	}
	colors, err := palette(opts.Palette, len(hueLevels))
	if err != nil {
		return nil, err
	}

	p := NewFigure(theme, opts.Title, opts.X, opts.Y)
	for j, hl := range hueLevels {
		var xys plotter.XYs
		for r := 0; r < df.N; r++ {
			if opts.Hue != "" && hf.Value(r) != hl {
				continue
			}
			if math.IsNaN(x[r]) || math.IsNaN(y[r]) {
				continue
			}
			xys = append(xys, plotter.XY{X: x[r], Y: y[r]})
		}
		if len(xys) == 0 {
			continue
		}
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, fmt.Errorf("scatter %s: %w", hl, err)
		}
		s.GlyphStyle.Color = rotkin.SetAlpha(colors[j], theme.Alpha)
		s.GlyphStyle.Radius = vg.Points(theme.PointRadius)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(s)
		if opts.Hue != "" {
			p.Legend.Add(hl, s)
		}
	}
	p.Legend.Top = true
	return p, nil
}

// MassPeriodFile is the file name of the period-mass figure.
const MassPeriodFile = "figure1.png"

// MassPeriod plots rotation period against stellar mass on a logarithmic
// period axis. The mass axis runs from 1.3 down to 0.1 solar masses and
// periods are limited to 200 days. Stars outside these limits, and
// non-positive periods, are skipped.
func MassPeriod(df *rotkin.DataFrame, theme rotkin.Theme) (*plot.Plot, error) {
	mass, err := numeric(df, rotkin.MassField)
	if err != nil {
		return nil, err
	}
	period, err := numeric(df, rotkin.PeriodField)
	if err != nil {
		return nil, err
	}

	var xys plotter.XYs
	for r := 0; r < df.N; r++ {
		if !(period[r] > 0 && period[r] <= 200) || !(mass[r] >= 0.1 && mass[r] <= 1.3) {
			continue
		}
		xys = append(xys, plotter.XY{X: mass[r], Y: period[r]})
	}
	if len(xys) == 0 {
		return nil, fmt.Errorf("%s: no stars within the plotted range", df.Name)
	}

	theme.MinorTicks = true
	p := NewFigure(theme, "Period vs. Mass", "Mass (Msol)", "Period (days)")
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle.Color = rotkin.BuiltinColors["mediumslateblue"]
	s.GlyphStyle.Radius = vg.Points(0.5)
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(s)

	p.X.Min, p.X.Max = 0.1, 1.3
	p.X.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Max = 200
	return p, nil
}
