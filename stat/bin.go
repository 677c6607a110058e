package stat

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// BinnedData is one bin of a histogram.
type BinnedData struct {
	X        float64 // center of the bin
	Lo, Hi   float64 // bin edges
	Count    int64
	Density  float64 // Count / width / total
	NCount   float64 // Count / max Count
	NDensity float64 // Density / max Density
}

// BinOptions controls Bin. The zero value means automatic bin count
// over the full data range.
type BinOptions struct {
	// Bins is the number of equally wide bins. Zero selects the count
	// automatically from the Sturges and Freedman-Diaconis rules.
	Bins int

	// Min and Max restrict the range; used if Min < Max. Values outside
	// are not counted.
	Min, Max float64
}

// Bin groups data into bins and counts occurences in these bins.
// A nil options will use the default Options. All bins are half-open
// [Lo,Hi) except the last one which includes Hi. NaNs are ignored.
func Bin(data []float64, options *BinOptions) []BinnedData {
	if options == nil {
		options = &BinOptions{}
	}

	lo, hi := options.Min, options.Max
	if !(lo < hi) {
		lo, hi = math.Inf(+1), math.Inf(-1)
		for _, x := range data {
			if math.IsNaN(x) {
				continue
			}
			lo = math.Min(lo, x)
			hi = math.Max(hi, x)
		}
		if math.IsInf(lo, 0) {
			lo, hi = 0, 1
		}
	}
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}

	values := make([]float64, 0, len(data))
	for _, x := range data {
		if x >= lo && x <= hi {
			values = append(values, x)
		}
	}

	numBins := options.Bins
	if numBins <= 0 {
		numBins = autoBins(values, lo, hi)
	}
	binWidth := (hi - lo) / float64(numBins)

	x2bin := func(x float64) int {
		if x == hi {
			return numBins - 1
		}
		b := int((x - lo) / binWidth)
		if b >= numBins {
			b = numBins - 1
		}
		return b
	}

	counts := make([]int64, numBins)
	maxcount := int64(0)
	for _, x := range values {
		bin := x2bin(x)
		counts[bin]++
		if counts[bin] > maxcount {
			maxcount = counts[bin]
		}
	}

	result := make([]BinnedData, numBins)
	maxDensity := 0.0
	for bin, count := range counts {
		b := &result[bin]
		b.Lo = lo + float64(bin)*binWidth
		b.Hi = lo + float64(bin+1)*binWidth
		b.X = (b.Lo + b.Hi) / 2
		b.Count = count
		if len(values) > 0 {
			b.Density = float64(count) / binWidth / float64(len(values))
		}
		if maxcount > 0 {
			b.NCount = float64(count) / float64(maxcount)
		}
		maxDensity = math.Max(maxDensity, b.Density)
	}
	if maxDensity > 0 {
		for i := range result {
			result[i].NDensity = result[i].Density / maxDensity
		}
	}
	return result
}

// Counts returns just the counts of bins.
func Counts(bins []BinnedData) []int64 {
	counts := make([]int64, len(bins))
	for i, b := range bins {
		counts[i] = b.Count
	}
	return counts
}

// autoBins picks the number of bins the way numpy's "auto" does: the
// smaller width of the Sturges and the Freedman-Diaconis estimate.
func autoBins(values []float64, lo, hi float64) int {
	n := float64(len(values))
	if n < 2 {
		return 1
	}
	width := (hi - lo) / (math.Log2(n) + 1)

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	iqr := stat.Quantile(0.75, stat.Empirical, sorted, nil) -
		stat.Quantile(0.25, stat.Empirical, sorted, nil)
	if fd := 2 * iqr * math.Pow(n, -1.0/3); fd > 0 && fd < width {
		width = fd
	}
	return int(math.Ceil((hi - lo) / width))
}
