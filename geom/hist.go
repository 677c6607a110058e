package geom

import (
	"image/color"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/rotkin"
	"github.com/vdobler/rotkin/stat"
)

// HistogramOptions selects the data of a histogram.
type HistogramOptions struct {
	X   string
	Hue string // Optional; one overlaid histogram per level.

	HueOrder []string
	Palette  []color.Color

	// Bins is the number of bins, zero picks it automatically.
	Bins int
	// Min and Max restrict the binned range if Min < Max.
	Min, Max float64

	Title string
}

// Layer is one histogram of a figure.
type Layer struct {
	Hue  string
	Bins []stat.BinnedData
}

// Histogram draws a histogram of field X, one per Hue level if Hue is
// set. All layers share the same bins. The counts are returned.
func Histogram(df *rotkin.DataFrame, opts HistogramOptions, theme rotkin.Theme) (*plot.Plot, []Layer, error) {
	x, err := numeric(df, opts.X)
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

	// Fix the bins from all data so layers line up.
	all := stat.Bin(x, &stat.BinOptions{Bins: opts.Bins, Min: opts.Min, Max: opts.Max})
	binOpts := &stat.BinOptions{Bins: len(all), Min: all[0].Lo, Max: all[len(all)-1].Hi}

	p := NewFigure(theme, opts.Title, opts.X, "count")
	var layers []Layer
	for j, hl := range hueLevels {
		data := x
		if opts.Hue != "" {
			data = nil
			for r := 0; r < df.N; r++ {
				if hf.Value(r) == hl {
					data = append(data, x[r])
				}
			}
		}
		bins := stat.Bin(data, binOpts)
		h := &plotter.Histogram{
			Bins:      make([]plotter.HistogramBin, len(bins)),
			Width:     bins[0].Hi - bins[0].Lo,
			FillColor: rotkin.SetAlpha(colors[j], theme.Alpha),
			LineStyle: plotter.DefaultLineStyle,
		}
		h.LineStyle.Width = vg.Points(theme.LineWidth) / 2
		for i, b := range bins {
			h.Bins[i] = plotter.HistogramBin{Min: b.Lo, Max: b.Hi, Weight: float64(b.Count)}
		}
		p.Add(h)
		if opts.Hue != "" {
			p.Legend.Add(hl, h)
		}
		layers = append(layers, Layer{Hue: hl, Bins: bins})
	}
	p.Legend.Top = true
	if !theme.Grid {
		p.Add(plotter.NewGrid())
	}
	return p, layers, nil
}

// AddHistCounts writes the count of every non-empty bin above its bar.
func AddHistCounts(p *plot.Plot, layers []Layer, theme rotkin.Theme) error {
	var xys plotter.XYs
	var texts []string
	for _, l := range layers {
		for _, b := range l.Bins {
			if b.Count == 0 {
				continue
			}
			xys = append(xys, plotter.XY{X: b.X, Y: float64(b.Count)})
			texts = append(texts, strconv.FormatInt(b.Count, 10))
		}
	}
	return addLabels(p, xys, texts, color.Black, theme.TickLabelSize*0.75)
}
