package stat

import "sort"

// BoxPlotData are the components of one box and whisker.
type BoxPlotData struct {
	N            int
	YMin, YMax   float64 // extreme values
	Lower, Upper float64 // first and third quartile
	Middle       float64 // median
	Low, High    float64 // whisker ends
	Outliers     []float64
}

// BoxPlot calculates components of a box and whisker plot. Whiskers
// reach to the most extreme values within coef times the inter quartile
// range; everything beyond is an outlier. The data is not modified.
func BoxPlot(data []float64, coef float64) BoxPlotData {
	n := len(data)
	if n == 0 {
		return BoxPlotData{}
	}
	d := append([]float64(nil), data...)
	sort.Float64s(d)

	var b BoxPlotData
	b.N = n
	b.YMin, b.YMax = d[0], d[n-1]
	if n%2 == 1 {
		b.Middle = d[(n-1)/2]
	} else {
		b.Middle = (d[n/2] + d[n/2-1]) / 2
	}
	b.Lower, b.Upper = d[n/4], d[3*n/4]

	iqr := b.Upper - b.Lower
	lo, hi := b.Lower-coef*iqr, b.Upper+coef*iqr
	b.Low, b.High = b.YMax, b.YMin
	for _, y := range d {
		if y >= lo && y < b.Low {
			b.Low = y
		}
		if y <= hi && y > b.High {
			b.High = y
		}
		if y < lo || y > hi {
			b.Outliers = append(b.Outliers, y)
		}
	}
	return b
}
