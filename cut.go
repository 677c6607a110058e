package rotkin

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrBadBins is returned for unusable bin boundaries or labels.
var ErrBadBins = errors.New("bad bins")

// CutSpec describes how to bin one continuous field: Boundaries b0 < b1 <
// ... < bn delimit the n intervals [b0,b1], (b1,b2], ..., (bn-1,bn] which
// are labeled Labels[0] ... Labels[n-1].
type CutSpec struct {
	Field      string
	Boundaries []float64
	Labels     []string
}

// Check reports whether s describes a valid binning.
func (s CutSpec) Check() error {
	if len(s.Boundaries) < 2 {
		return fmt.Errorf("%w: field %s needs at least 2 boundaries", ErrBadBins, s.Field)
	}
	if len(s.Labels) != len(s.Boundaries)-1 {
		return fmt.Errorf("%w: field %s has %d labels for %d boundaries",
			ErrBadBins, s.Field, len(s.Labels), len(s.Boundaries))
	}
	for i := 1; i < len(s.Boundaries); i++ {
		if !(s.Boundaries[i] > s.Boundaries[i-1]) {
			return fmt.Errorf("%w: boundaries of field %s must increase strictly", ErrBadBins, s.Field)
		}
	}
	return nil
}

// Bin returns the index of the interval containing x or -1 if x is NaN
// or outside [b0,bn].
func (s CutSpec) Bin(x float64) int {
	b := s.Boundaries
	if math.IsNaN(x) || x < b[0] || x > b[len(b)-1] {
		return -1
	}
	if x == b[0] {
		return 0
	}
	// Smallest j with b[j] >= x; x lies in (b[j-1], b[j]].
	return sort.SearchFloat64s(b, x) - 1
}

// Cut replaces each field named in specs by its binned version. The raw
// field is removed and the String field of labels is appended after the
// remaining fields. Values outside the boundaries get a missing label.
// The input frame is not modified.
func Cut(df *DataFrame, specs ...CutSpec) (*DataFrame, error) {
	result := df.Copy()
	for _, s := range specs {
		if err := s.Check(); err != nil {
			return nil, err
		}
		f, err := result.Col(s.Field)
		if err != nil {
			return nil, err
		}
		if f.Type == String {
			return nil, fmt.Errorf("%w: field %s is not numeric", ErrBadBins, s.Field)
		}

		labels := make([]int, len(s.Labels))
		for i, l := range s.Labels {
			labels[i] = result.Pool.Add(l)
		}
		binned := NewField(result.N, String, result.Pool)
		for i, x := range f.Data {
			if b := s.Bin(x); b >= 0 {
				binned.Data[i] = float64(labels[b])
			} else {
				binned.Data[i] = math.NaN()
			}
		}
		result.Drop(s.Field)
		if err := result.Add(s.Field, binned); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// ReadBinned reads the table at path and bins it according to specs.
func ReadBinned(path string, specs ...CutSpec) (*DataFrame, error) {
	df, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Cut(df, specs...)
}
