package rotkin

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"
)

// nanValues are the cell contents read as missing values.
var nanValues = []string{"", "NaN", "nan", "NA", "N/A"}

// ReadFile reads a table from path. Files ending in .xlsx are read as
// spreadsheets, .txt and .dat files as whitespace delimited text with a
// header line and everything else as CSV.
func ReadFile(path string) (*DataFrame, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return ReadXLSX(path)
	case ".txt", ".dat":
		return ReadWhitespaceFile(path, true)
	}
	return ReadCSVFile(path)
}

// ReadCSVFile reads the comma separated file at path. The first line
// holds the field names.
func ReadCSVFile(path string) (*DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f, path)
}

// ReadCSV reads comma separated data with a header line from r. All rows
// must have as many cells as the header.
func ReadCSV(r io.Reader, name string) (*DataFrame, error) {
	cr := csv.NewReader(bufio.NewReader(r))
	cr.FieldsPerRecord = 0
	records, err := cr.ReadAll()
	if err != nil {
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			return nil, fmt.Errorf("%s: line %d: %w", name, pe.Line, pe.Err)
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return FromRecords(name, records, true)
}

// ReadWhitespaceFile reads the whitespace delimited file at path.
func ReadWhitespaceFile(path string, header bool) (*DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadWhitespace(f, path, header)
}

// ReadWhitespace reads a table whose cells are separated by runs of white
// space. Without a header the fields are named by their position "0", "1",...
// Empty lines are skipped; every other line must have the same number of
// cells as the first one.
func ReadWhitespace(r io.Reader, name string, header bool) (*DataFrame, error) {
	records, err := readTokens(r, name, -1)
	if err != nil {
		return nil, err
	}
	if !header && len(records) > 0 {
		names := make([]string, len(records[0]))
		for i := range names {
			names[i] = strconv.Itoa(i)
		}
		records = append([][]string{names}, records...)
	}
	return FromRecords(name, records, true)
}

// readTokens splits every non-empty line of r on white space. A width of
// -1 takes the token count of the first line as the required width.
func readTokens(r io.Reader, name string, width int) ([][]string, error) {
	var records [][]string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for line := 1; scanner.Scan(); line++ {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}
		if width == -1 {
			width = len(tokens)
		}
		if len(tokens) != width {
			return nil, fmt.Errorf("%s: line %d: got %d fields, want %d",
				name, line, len(tokens), width)
		}
		records = append(records, tokens)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return records, nil
}

// ReadXLSX reads the first sheet of the spreadsheet at path. The first row
// holds the field names.
func ReadXLSX(path string) (*DataFrame, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(rows) > 0 {
		// GetRows trims trailing empty cells.
		width := len(rows[0])
		for i, row := range rows {
			if len(row) > width {
				return nil, fmt.Errorf("%s: row %d: got %d cells, want %d", path, i+1, len(row), width)
			}
			for len(row) < width {
				row = append(row, "")
			}
			rows[i] = row
		}
	}
	return FromRecords(path, rows, true)
}

// FromRecords builds a data frame from string records. Column types are
// detected: integer columns become Int, other numeric columns Float and
// everything else String. Without header the fields are named "X0", "X1",...
func FromRecords(name string, records [][]string, header bool) (*DataFrame, error) {
	df := NewDataFrame(name, nil)
	if len(records) == 0 || (header && len(records) == 1 && len(records[0]) == 0) {
		return df, nil
	}
	if header {
		records[0] = fixNames(records[0])
		if len(records) == 1 {
			for _, col := range records[0] {
				df.Add(col, NewField(0, String, df.Pool))
			}
			return df, nil
		}
	}

	gdf := dataframe.LoadRecords(records,
		dataframe.HasHeader(header),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nanValues),
	)
	if gdf.Err != nil {
		return nil, fmt.Errorf("%s: %w", name, gdf.Err)
	}

	for _, col := range gdf.Names() {
		s := gdf.Col(col)
		missing := s.IsNaN()
		var f Field
		switch s.Type() {
		case series.Int:
			f = NewField(s.Len(), Int, df.Pool)
			copy(f.Data, s.Float())
		case series.Float:
			f = NewField(s.Len(), Float, df.Pool)
			copy(f.Data, s.Float())
		default:
			values := s.Records()
			for i := range values {
				if missing[i] {
					values[i] = ""
				}
			}
			f = NewStringField(values, df.Pool)
		}
		for i, m := range missing {
			if m {
				f.Data[i] = math.NaN()
			}
		}
		if err := df.Add(col, f); err != nil {
			return nil, err
		}
	}
	return df, nil
}

// fixNames names empty header cells like pandas does ("Unnamed: 3") and
// makes duplicates unique by appending ".1", ".2", ...
func fixNames(names []string) []string {
	fixed := make([]string, len(names))
	seen := NewStringSet()
	for i, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			n = fmt.Sprintf("Unnamed: %d", i)
		}
		base := n
		for k := 1; seen.Contains(n); k++ {
			n = fmt.Sprintf("%s.%d", base, k)
		}
		seen.Add(n)
		fixed[i] = n
	}
	return fixed
}
