// Package stat provides the numeric summaries used on catalog columns.
package stat

import (
	"math"
	"strconv"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/stat"
)

// Mean is the arithmetic mean of x.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return stat.Mean(x, nil)
}

// StdDev is the sample standard deviation (n-1 denominator) of x.
// It is NaN for fewer than two values.
func StdDev(x []float64) float64 {
	if len(x) < 2 {
		return math.NaN()
	}
	return stat.StdDev(x, nil)
}

// Round rounds x to places decimals. The exact binary value of x is
// rounded, so 2.675 becomes 2.67; exact halves go to even.
func Round(x float64, places int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	if err != nil {
		return math.NaN()
	}
	return r
}

// Summary describes the distribution of a sample.
type Summary struct {
	N               int
	Mean, StdDev    float64
	Min, Q1, Median float64
	Q3, Max         float64
}

// Describe summarizes x. NaNs are ignored.
func Describe(x []float64) Summary {
	var s stats.Sample
	for _, v := range x {
		if !math.IsNaN(v) {
			s.Xs = append(s.Xs, v)
		}
	}
	if len(s.Xs) == 0 {
		nan := math.NaN()
		return Summary{Mean: nan, StdDev: nan, Min: nan, Q1: nan, Median: nan, Q3: nan, Max: nan}
	}
	s.Sort()
	min, max := s.Bounds()
	return Summary{
		N:      len(s.Xs),
		Mean:   s.Mean(),
		StdDev: s.StdDev(),
		Min:    min,
		Q1:     s.Quantile(0.25),
		Median: s.Quantile(0.5),
		Q3:     s.Quantile(0.75),
		Max:    max,
	}
}
