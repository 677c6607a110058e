package rotkin

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestCutSpecBin(t *testing.T) {
	s := CutSpec{Field: "Age", Boundaries: []float64{0, 1, 5, 10}, Labels: []string{"a", "b", "c"}}
	for _, tc := range []struct {
		x    float64
		want int
	}{
		{0, 0}, // lowest boundary is inclusive
		{0.5, 0},
		{1, 0},
		{1.0001, 1},
		{5, 1},
		{7, 2},
		{10, 2},
		{-0.1, -1},
		{10.1, -1},
		{math.NaN(), -1},
	} {
		if got := s.Bin(tc.x); got != tc.want {
			t.Errorf("Bin(%g) = %d, want %d", tc.x, got, tc.want)
		}
	}
}

func TestCutSpecCheck(t *testing.T) {
	for i, s := range []CutSpec{
		{Field: "a", Boundaries: []float64{0, 1}, Labels: []string{"x", "y"}},
		{Field: "a", Boundaries: []float64{0}, Labels: nil},
		{Field: "a", Boundaries: []float64{0, 2, 1}, Labels: []string{"x", "y"}},
		{Field: "a", Boundaries: []float64{0, 1, 1}, Labels: []string{"x", "y"}},
	} {
		if err := s.Check(); !errors.Is(err, ErrBadBins) {
			t.Errorf("%d: got %v, want ErrBadBins", i, err)
		}
	}
}

func TestCut(t *testing.T) {
	df := readString(t, "stars", "KIC,Age,Mass,name\n1,0,0.8,a\n2,2.5,1.2,b\n3,11,0.5,c\n4,10,,d\n")
	age := CutSpec{Field: "Age", Boundaries: []float64{0, 2.5, 10}, Labels: []string{"young", "old"}}
	mass := CutSpec{Field: "Mass", Boundaries: []float64{0.5, 1, 1.5}, Labels: []string{"low", "high"}}

	binned, err := Cut(df, age)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	want := "KIC,Mass,name,Age\n1,0.8,a,young\n2,1.2,b,young\n3,0.5,c,\n4,,d,old\n"
	if got := csvString(t, binned); got != want {
		t.Errorf("Got\n%s\nwant\n%s", got, want)
	}
	if df.Has("Age") && df.Columns["Age"].Type == String {
		t.Errorf("Input modified")
	}

	binned, err = Cut(df, age, mass)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	want = "KIC,name,Age,Mass\n1,a,young,low\n2,b,young,high\n3,c,,low\n4,d,old,\n"
	if got := csvString(t, binned); got != want {
		t.Errorf("Got\n%s\nwant\n%s", got, want)
	}

	// Every binned value carries one of the labels or is missing.
	labels := NewStringSetFrom(append(age.Labels, ""))
	for i := 0; i < binned.N; i++ {
		if !labels.Contains(binned.Columns["Age"].Value(i)) {
			t.Errorf("Row %d has label %q", i, binned.Columns["Age"].Value(i))
		}
	}
}

func TestCutErrors(t *testing.T) {
	df := readString(t, "stars", "Age,name\n1,a\n")
	_, err := Cut(df, CutSpec{Field: "Age", Boundaries: []float64{0, 1, 2}, Labels: []string{"x"}})
	if !errors.Is(err, ErrBadBins) {
		t.Errorf("Got %v, want ErrBadBins", err)
	}
	_, err = Cut(df, CutSpec{Field: "name", Boundaries: []float64{0, 1}, Labels: []string{"x"}})
	if !errors.Is(err, ErrBadBins) {
		t.Errorf("Got %v, want ErrBadBins for text field", err)
	}
	_, err = Cut(df, CutSpec{Field: "Mass", Boundaries: []float64{0, 1}, Labels: []string{"x"}})
	if !errors.Is(err, ErrNoSuchField) {
		t.Errorf("Got %v, want ErrNoSuchField", err)
	}
}

func TestReadBinnedMissingFile(t *testing.T) {
	_, err := ReadBinned("/nonexistent/stars.csv", CutSpec{})
	if err == nil || !strings.Contains(err.Error(), "stars.csv") {
		t.Errorf("Got %v", err)
	}
}
