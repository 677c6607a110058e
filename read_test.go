package rotkin

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	in := "KIC,Prot,mh_xgboost,\n1,12.5,poor,a\n2,,rich,b\n3,NaN,,c\n"
	df, err := ReadCSV(strings.NewReader(in), "test.csv")
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if df.N != 3 {
		t.Errorf("Got %d rows, want 3", df.N)
	}
	if got := strings.Join(df.FieldNames(), "|"); got != "KIC|Prot|mh_xgboost|Unnamed: 3" {
		t.Errorf("Got fields %s", got)
	}
	for name, want := range map[string]FieldType{"KIC": Int, "Prot": Float, "mh_xgboost": String} {
		if got := df.Columns[name].Type; got != want {
			t.Errorf("Field %s has type %s, want %s", name, got, want)
		}
	}
	prot := df.Columns["Prot"]
	if prot.Data[0] != 12.5 || !math.IsNaN(prot.Data[1]) || !math.IsNaN(prot.Data[2]) {
		t.Errorf("Got Prot %v", prot.Data)
	}
	if v := df.Columns["mh_xgboost"].Value(2); v != "" {
		t.Errorf("Got %q for missing label", v)
	}
}

func TestReadCSVBadRow(t *testing.T) {
	in := "a,b\n1,2\n3,4,5\n"
	_, err := ReadCSV(strings.NewReader(in), "bad.csv")
	if err == nil {
		t.Fatalf("Missing error")
	}
	if msg := err.Error(); !strings.Contains(msg, "bad.csv") || !strings.Contains(msg, "line 3") {
		t.Errorf("Error %q lacks file or line", msg)
	}
}

func TestReadCSVHeaderOnly(t *testing.T) {
	df, err := ReadCSV(strings.NewReader("a,b\n"), "empty.csv")
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if df.N != 0 || len(df.FieldNames()) != 2 {
		t.Errorf("Got %d rows, fields %v", df.N, df.FieldNames())
	}
}

func TestReadWhitespace(t *testing.T) {
	in := "KIC  Teff   Age\n\n1 5000 3.5\n2\t5500  4.1\n"
	df, err := ReadWhitespace(strings.NewReader(in), "legacy", true)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if df.N != 2 || df.Columns["Age"].Data[1] != 4.1 {
		t.Errorf("Bad table")
	}

	df, err = ReadWhitespace(strings.NewReader("7 x 0.5\n8 y 0.6\n"), "noheader", false)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if got := strings.Join(df.FieldNames(), ","); got != "0,1,2" {
		t.Errorf("Got fields %s", got)
	}
	if df.Columns["1"].Type != String || df.Columns["0"].Type != Int {
		t.Errorf("Wrong types")
	}

	_, err = ReadWhitespace(strings.NewReader("1 2 3\n4 5\n"), "short", false)
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("Got %v, want error on line 2", err)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Errorf("Missing error for missing file")
	}
}

func TestWriteCSV(t *testing.T) {
	df := stars(t)
	var sb strings.Builder
	if err := df.WriteCSV(&sb); err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	want := "KIC,Prot,mh\n101,12.5,poor\n102,30,rich\n103,,poor\n104,8,\n105,21,solar\n"
	if got := sb.String(); got != want {
		t.Errorf("Got\n%s\nwant\n%s", got, want)
	}
}

func TestCSVFileRoundTrip(t *testing.T) {
	df := stars(t)
	path := filepath.Join(t.TempDir(), "stars.csv")
	if err := WriteFile(df, path); err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	back, err := ReadFile(path)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	checkSameFrame(t, df, back)
}

func TestXLSXRoundTrip(t *testing.T) {
	df := stars(t)
	path := filepath.Join(t.TempDir(), "stars.xlsx")
	if err := WriteFile(df, path); err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	back, err := ReadFile(path)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	checkSameFrame(t, df, back)
}

func checkSameFrame(t *testing.T, want, got *DataFrame) {
	t.Helper()
	if got.N != want.N {
		t.Fatalf("Got %d rows, want %d", got.N, want.N)
	}
	if g, w := strings.Join(got.FieldNames(), ","), strings.Join(want.FieldNames(), ","); g != w {
		t.Fatalf("Got fields %s, want %s", g, w)
	}
	for _, name := range want.FieldNames() {
		for i := 0; i < want.N; i++ {
			if g, w := got.Columns[name].Value(i), want.Columns[name].Value(i); g != w {
				t.Errorf("%s[%d]: got %q, want %q", name, i, g, w)
			}
		}
	}
}

func TestWriteColumns(t *testing.T) {
	df := stars(t)
	var sb strings.Builder
	if err := WriteColumns(&sb, df, "Prot", "KIC"); err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if !strings.HasPrefix(sb.String(), "12.5\t101\n30\t102\n") {
		t.Errorf("Got %q", sb.String())
	}
	if err := WriteColumns(&sb, df, "nope"); err == nil {
		t.Errorf("Missing error for unknown field")
	}
}

func TestAddTeffFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colors.csv")
	if err := os.WriteFile(path, []byte("KIC,bp_rp,teff\n1,0,1\n2,1,2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := AddTeffFile(path); err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	df, err := ReadFile(path)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if got := strings.Join(df.FieldNames(), ","); got != "KIC,bp_rp,teff" {
		t.Errorf("Got fields %s", got)
	}
	if got := df.Columns["teff"].Data[1]; math.Abs(got-BpRpToTeff(1)) > 1e-6 {
		t.Errorf("Got teff %g, want %g", got, BpRpToTeff(1))
	}
}

func TestAddTeffWhitespaceFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stars.txt")
	if err := os.WriteFile(path, []byte("KIC  bp_rp\n1    0\n2    1\n3    NaN\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := AddTeffFile(path); err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	df, err := ReadFile(path)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if got := strings.Join(df.FieldNames(), ","); got != "KIC,bp_rp,teff" {
		t.Fatalf("Got fields %s", got)
	}
	teff := df.Columns["teff"]
	if got := teff.Data[1]; math.Abs(got-BpRpToTeff(1)) > 1e-6 {
		t.Errorf("Got teff %g, want %g", got, BpRpToTeff(1))
	}
	if !math.IsNaN(teff.Data[2]) {
		t.Errorf("Got teff %g for missing colour", teff.Data[2])
	}
}

func TestWriteWhitespace(t *testing.T) {
	df := readString(t, "stars", "KIC,mh,Prot\n1,low,\n2,high,3.5\n")
	var sb strings.Builder
	if err := df.WriteWhitespace(&sb); err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if got, want := sb.String(), "KIC\tmh\tProt\n1\tlow\tNaN\n2\thigh\t3.5\n"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}

	spaced := readString(t, "spaced", "KIC,name\n1,alpha Cen\n")
	if err := spaced.WriteWhitespace(&sb); err == nil {
		t.Errorf("Missing error for value with blank")
	}
}
