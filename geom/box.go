package geom

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/rotkin"
	"github.com/vdobler/rotkin/stat"
)

// BoxPlotOptions selects the data of a grouped box plot.
type BoxPlotOptions struct {
	X, Y string // X is discrete, Y numeric.
	Hue  string // Optional second grouping.

	// XOrder and HueOrder fix the order of the groups. Empty means
	// order of appearance.
	XOrder, HueOrder []string

	Palette []color.Color
	Title   string
}

// Box is one drawn box.
type Box struct {
	X, Hue  string
	Loc     float64 // Position on the x axis.
	Summary stat.BoxPlotData
}

// BoxPlot draws one box per X level, split into side by side boxes per
// Hue level. Groups without data are left out.
func BoxPlot(df *rotkin.DataFrame, opts BoxPlotOptions, theme rotkin.Theme) (*plot.Plot, []Box, error) {
	xf, err := df.Col(opts.X)
	if err != nil {
		return nil, nil, err
	}
	y, err := numeric(df, opts.Y)
	if err != nil {
		return nil, nil, err
	}
	xLevels, err := levels(df, opts.X, opts.XOrder)
	if err != nil {
		return nil, nil, err
	}
	hueLevels := []string{""}
	var hf rotkin.Field
	if opts.Hue != "" {
		if hf, err = df.Col(opts.Hue); err != nil {
			return nil, nil, err
		}
		if hueLevels, err = levels(df, opts.Hue, opts.HueOrder); err != nil {
			return nil, nil, err
		}
	}
	colors, err := palette(opts.Palette, len(hueLevels))
	if err != nil {
		return nil, nil, err
	}

	p := NewFigure(theme, opts.Title, opts.X, opts.Y)
	nh := float64(len(hueLevels))
	slot := 0.8 / nh
	width := vg.Length(theme.Width) * vg.Inch * 0.6 / vg.Length(float64(len(xLevels))*nh)

	var boxes []Box
	for i, xl := range xLevels {
		for j, hl := range hueLevels {
			var values plotter.Values
			for r := 0; r < df.N; r++ {
				if xf.Value(r) != xl || math.IsNaN(y[r]) {
					continue
				}
				if opts.Hue != "" && hf.Value(r) != hl {
					continue
				}
				values = append(values, y[r])
			}
			if len(values) == 0 {
				continue
			}
			loc := float64(i) - 0.4 + slot*(float64(j)+0.5)
			b, err := plotter.NewBoxPlot(width, loc, values)
			if err != nil {
				return nil, nil, fmt.Errorf("box %s/%s: %w", xl, hl, err)
			}
			b.FillColor = colors[j]
			b.BoxStyle.Width = vg.Points(theme.LineWidth)
			p.Add(b)
			boxes = append(boxes, Box{X: xl, Hue: hl, Loc: loc, Summary: stat.BoxPlot(values, 1.5)})
		}
	}
	if opts.Hue != "" {
		for j, hl := range hueLevels {
			p.Legend.Add(hl, swatch{colors[j]})
		}
		p.Legend.Top = true
	}
	p.NominalX(xLevels...)
	return p, boxes, nil
}

// AddBoxCounts writes the number of values of each box onto its upper
// quartile.
func AddBoxCounts(p *plot.Plot, boxes []Box, theme rotkin.Theme) error {
	xys := make(plotter.XYs, len(boxes))
	texts := make([]string, len(boxes))
	for i, b := range boxes {
		xys[i].X = b.Loc
		xys[i].Y = b.Summary.Upper
		texts[i] = strconv.Itoa(b.Summary.N)
	}
	return addLabels(p, xys, texts, color.White, theme.TickLabelSize*0.75)
}
