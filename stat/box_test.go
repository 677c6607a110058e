package stat

import "testing"

func TestBoxPlot(t *testing.T) {
	data := []float64{9, 1, 2, 3, 4, 5, 6, 7, 8, 100}
	b := BoxPlot(data, 1.5)
	if b.N != 10 || b.YMin != 1 || b.YMax != 100 {
		t.Errorf("Got %+v", b)
	}
	if b.Middle != 5.5 {
		t.Errorf("Got median %g, want 5.5", b.Middle)
	}
	if b.Lower != 3 || b.Upper != 8 {
		t.Errorf("Got quartiles %g %g, want 3 8", b.Lower, b.Upper)
	}
	if b.Low != 1 || b.High != 9 {
		t.Errorf("Got whiskers %g %g, want 1 9", b.Low, b.High)
	}
	if len(b.Outliers) != 1 || b.Outliers[0] != 100 {
		t.Errorf("Got outliers %v", b.Outliers)
	}
	if data[0] != 9 {
		t.Errorf("Input modified")
	}
}

func TestBoxPlotSmall(t *testing.T) {
	if b := BoxPlot(nil, 1.5); b.N != 0 {
		t.Errorf("Got %+v", b)
	}
	b := BoxPlot([]float64{4}, 1.5)
	if b.Middle != 4 || b.Low != 4 || b.High != 4 || len(b.Outliers) != 0 {
		t.Errorf("Got %+v", b)
	}
}
