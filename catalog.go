package rotkin

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Catalog field names.
const (
	KICField    = "KIC"
	AgeField    = "Age"
	PeriodField = "Period"
	MassField   = "Mass"
)

// ColumnMap assigns field names to zero based column positions of a
// header-less table.
type ColumnMap map[string]int

// McQuillanColumns locates KIC and rotation period in the abridged
// McQuillan et al. (2014) table.
var McQuillanColumns = ColumnMap{KICField: 0, PeriodField: 4}

// OriginalDataColumns locates mass and rotation period in the full
// McQuillan et al. (2014) data file.
var OriginalDataColumns = ColumnMap{MassField: 3, PeriodField: 4}

// Fields returns the field names of m ordered by position.
func (m ColumnMap) Fields() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return m[names[i]] < m[names[j]] })
	return names
}

// Check validates m against a table of width columns.
func (m ColumnMap) Check(width int) error {
	used := map[int]string{}
	for name, pos := range m {
		if pos < 0 || pos >= width {
			return fmt.Errorf("column %d for %s out of range, table has %d columns", pos, name, width)
		}
		if other, ok := used[pos]; ok {
			return fmt.Errorf("column %d mapped to both %s and %s", pos, other, name)
		}
		used[pos] = name
	}
	return nil
}

// Project keeps the columns of the header-less frame df named in m and
// renames them, e.g. field "4" becomes "Period".
func (m ColumnMap) Project(df *DataFrame) (*DataFrame, error) {
	if err := m.Check(len(df.names)); err != nil {
		return nil, fmt.Errorf("%s: %w", df.Name, err)
	}
	result := NewDataFrame(df.Name, df.Pool)
	for _, name := range m.Fields() {
		f, err := df.Col(strconv.Itoa(m[name]))
		if err != nil {
			return nil, err
		}
		if err := result.Add(name, f.Copy()); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// ReadLegacy reads the KIC and Age fields of the abridged legacy age
// catalog, a white space delimited table with header.
func ReadLegacy(path string) (*DataFrame, error) {
	df, err := ReadWhitespaceFile(path, true)
	if err != nil {
		return nil, err
	}
	result := NewDataFrame(df.Name, df.Pool)
	for _, name := range []string{KICField, AgeField} {
		f, err := df.Col(name)
		if err != nil {
			return nil, err
		}
		result.Add(name, f)
	}
	return result, nil
}

// ReadMcQuillan reads KIC and Period from the header-less abridged
// McQuillan table.
func ReadMcQuillan(path string) (*DataFrame, error) {
	df, err := ReadWhitespaceFile(path, false)
	if err != nil {
		return nil, err
	}
	return McQuillanColumns.Project(df)
}

// AgePeriod joins rotation periods from mcquillanPath with ages from
// legacyPath on KIC. The result has the fields KIC, Period and Age.
func AgePeriod(legacyPath, mcquillanPath string) (*DataFrame, error) {
	legacy, err := ReadLegacy(legacyPath)
	if err != nil {
		return nil, err
	}
	mcq, err := ReadMcQuillan(mcquillanPath)
	if err != nil {
		return nil, err
	}
	return Merge(mcq, legacy, KICField, KICField)
}

// Export copies the columns named in m from the white space separated
// rows of r to w as tab separated lines, in column order. Tokens are
// copied verbatim. Every row must be wide enough; an empty line is a
// malformed row.
func Export(r io.Reader, w io.Writer, name string, m ColumnMap) (int, error) {
	fields := m.Fields()
	maxPos := 0
	for _, f := range fields {
		if m[f] > maxPos {
			maxPos = m[f]
		}
	}

	bw := bufio.NewWriter(w)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	n := 0
	for line := 1; scanner.Scan(); line++ {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) <= maxPos {
			return n, fmt.Errorf("%s: line %d: got %d fields, need %d", name, line, len(tokens), maxPos+1)
		}
		for j, f := range fields {
			if j > 0 {
				bw.WriteByte('\t')
			}
			bw.WriteString(tokens[m[f]])
		}
		bw.WriteByte('\n')
		n++
	}
	if err := scanner.Err(); err != nil {
		return n, fmt.Errorf("%s: %w", name, err)
	}
	return n, bw.Flush()
}

// ExportFile runs Export with OriginalDataColumns from src to dst.
func ExportFile(src, dst string) (int, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return 0, err
	}
	n, err := Export(in, out, src, OriginalDataColumns)
	if err != nil {
		out.Close()
		return n, err
	}
	return n, out.Close()
}

// ReadMassPeriod reads the two column file written by ExportFile.
func ReadMassPeriod(path string) (*DataFrame, error) {
	df, err := ReadWhitespaceFile(path, false)
	if err != nil {
		return nil, err
	}
	m := ColumnMap{MassField: 0, PeriodField: 1}
	result, err := m.Project(df)
	if err != nil {
		return nil, err
	}
	for _, name := range []string{MassField, PeriodField} {
		if result.Columns[name].Type == String {
			return nil, fmt.Errorf("%s: field %s is not numeric", path, name)
		}
	}
	return result, nil
}
