package rotkin

import (
	"fmt"
	"math"
	"sort"

	"github.com/vdobler/rotkin/stat"
)

// Field names used by the velocity dispersion aggregation.
const (
	MetallicityField = "mh_xgboost"
	VzField          = "vz"
	ProtField        = "Prot"
)

// Output fields of VzDispersion.
const (
	SampleSizeField = "samplesize"
	VzDispField     = "vzdisp"
	MeanProtField   = "meanprot"
)

// VzDispersion computes per metallicity bin the number of stars, the sample
// standard deviation of the vertical velocity vz and the mean rotation
// period Prot, both rounded to 3 decimals.
//
// If x is non-empty the stars are additionally split by the labels xLabels
// of field x; the result then starts with field x and is ordered by x label
// first and metallicity label second. Bins with fewer than two stars are
// omitted.
func VzDispersion(df *DataFrame, mhLabels []string, x string, xLabels []string) (*DataFrame, error) {
	mh, err := df.Col(MetallicityField)
	if err != nil {
		return nil, err
	}
	vz, err := df.Col(VzField)
	if err != nil {
		return nil, err
	}
	prot, err := df.Col(ProtField)
	if err != nil {
		return nil, err
	}
	for name, f := range map[string]Field{VzField: vz, ProtField: prot} {
		if f.Type == String {
			return nil, fmt.Errorf("%s: field %s is not numeric", df.Name, name)
		}
	}
	var xf Field
	if x != "" {
		if xf, err = df.Col(x); err != nil {
			return nil, err
		}
	} else {
		xLabels = []string{""}
	}

	var xbins, mhbins []string
	var sizes, vzdisps, means []float64
	for _, xbin := range xLabels {
		for _, mhbin := range mhLabels {
			var vzs, prots []float64
			for i := 0; i < df.N; i++ {
				if mh.Value(i) != mhbin {
					continue
				}
				if x != "" && xf.Value(i) != xbin {
					continue
				}
				vzs = append(vzs, vz.Data[i])
				prots = append(prots, prot.Data[i])
			}
			if len(vzs) < 2 {
				continue
			}
			xbins = append(xbins, xbin)
			mhbins = append(mhbins, mhbin)
			sizes = append(sizes, float64(len(vzs)))
			vzdisps = append(vzdisps, stat.Round(stat.StdDev(vzs), 3))
			means = append(means, stat.Round(stat.Mean(prots), 3))
		}
	}

	result := NewDataFrame(fmt.Sprintf("vz dispersion of %s", df.Name), nil)
	if x != "" {
		result.Add(x, NewStringField(xbins, result.Pool))
	}
	result.Add(MetallicityField, NewStringField(mhbins, result.Pool))
	size := NewFloatField(sizes)
	size.Type = Int
	result.Add(SampleSizeField, size)
	result.Add(VzDispField, NewFloatField(vzdisps))
	result.Add(MeanProtField, NewFloatField(means))
	return result, nil
}

// BinCounts counts the rows of df per label of field bin, and per
// combination of subbin and bin labels if subbin is non-empty. Only
// combinations present in df are reported; they are sorted by label.
// Rows with a missing label are not counted.
func BinCounts(df *DataFrame, bin, subbin string) (*DataFrame, error) {
	fields := []string{bin}
	if subbin != "" {
		fields = []string{subbin, bin}
	}
	cols := make([]Field, len(fields))
	for j, name := range fields {
		f, err := df.Col(name)
		if err != nil {
			return nil, err
		}
		cols[j] = f
	}

	type group struct {
		key    []float64
		labels []string
		count  int
	}
	groups := map[string]*group{}
	var order []*group
rows:
	for i := 0; i < df.N; i++ {
		key := make([]float64, len(cols))
		labels := make([]string, len(cols))
		for j, f := range cols {
			if math.IsNaN(f.Data[i]) {
				continue rows
			}
			key[j] = f.Data[i]
			labels[j] = f.Value(i)
		}
		id := fmt.Sprint(labels)
		g, ok := groups[id]
		if !ok {
			g = &group{key: key, labels: labels}
			groups[id] = g
			order = append(order, g)
		}
		g.count++
	}

	// Numeric labels sort by value, string labels by text.
	sort.SliceStable(order, func(a, b int) bool {
		for j, f := range cols {
			ka, kb := order[a].key[j], order[b].key[j]
			if ka == kb {
				continue
			}
			if f.Type == String {
				return order[a].labels[j] < order[b].labels[j]
			}
			return ka < kb
		}
		return false
	})

	result := NewDataFrame(fmt.Sprintf("bin counts of %s", df.Name), nil)
	for j, name := range fields {
		f := NewField(len(order), cols[j].Type, result.Pool)
		for i, g := range order {
			if cols[j].Type == String {
				f.Data[i] = float64(result.Pool.Add(g.labels[j]))
			} else {
				f.Data[i] = g.key[j]
			}
		}
		if err := result.Add(name, f); err != nil {
			return nil, err
		}
	}
	counts := NewField(len(order), Int, result.Pool)
	for i, g := range order {
		counts.Data[i] = float64(g.count)
	}
	result.Add("counts", counts)
	return result, nil
}
