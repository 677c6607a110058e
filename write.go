package rotkin

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// WriteFile writes df to path in the format ReadFile expects for the
// extension of path: a spreadsheet for .xlsx, white space separated text
// for .txt and .dat and CSV otherwise.
func WriteFile(df *DataFrame, path string) error {
	write := df.WriteCSV
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return df.WriteXLSX(path)
	case ".txt", ".dat":
		write = df.WriteWhitespace
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

// WriteCSV writes df with a header line to w. Missing values are written
// as empty cells.
func (df *DataFrame) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(df.names); err != nil {
		return err
	}
	record := make([]string, len(df.names))
	for i := 0; i < df.N; i++ {
		for j, name := range df.names {
			record[j] = df.Columns[name].Value(i)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteWhitespace writes df with a header line to w, cells separated by
// tabs. Missing values are written as NaN. Names and values containing
// white space cannot be read back and are an error.
func (df *DataFrame) WriteWhitespace(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for j, name := range df.names {
		if name == "" || strings.ContainsAny(name, " \t\r\n") {
			return fmt.Errorf("field name %q not writable as white space separated text", name)
		}
		if j > 0 {
			bw.WriteByte('\t')
		}
		bw.WriteString(name)
	}
	bw.WriteByte('\n')
	for i := 0; i < df.N; i++ {
		for j, name := range df.names {
			f := df.Columns[name]
			v := f.Value(i)
			if math.IsNaN(f.Data[i]) {
				v = "NaN"
			} else if strings.ContainsAny(v, " \t\r\n") {
				return fmt.Errorf("row %d: value %q of field %s contains white space", i+1, v, name)
			}
			if j > 0 {
				bw.WriteByte('\t')
			}
			bw.WriteString(v)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteXLSX writes df to the first sheet of a new spreadsheet at path.
func (df *DataFrame) WriteXLSX(path string) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	header := make([]interface{}, len(df.names))
	for j, name := range df.names {
		header[j] = name
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	row := make([]interface{}, len(df.names))
	for i := 0; i < df.N; i++ {
		for j, name := range df.names {
			field := df.Columns[name]
			x := field.Data[i]
			switch {
			case math.IsNaN(x):
				row[j] = nil
			case field.Type == Int:
				row[j] = int64(x)
			case field.Type == String:
				row[j] = field.Value(i)
			default:
				row[j] = x
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

// WriteColumns writes the given fields of df tab separated and without
// header to w.
func WriteColumns(w io.Writer, df *DataFrame, fields ...string) error {
	cols := make([]Field, len(fields))
	for j, name := range fields {
		f, err := df.Col(name)
		if err != nil {
			return err
		}
		cols[j] = f
	}
	bw := bufio.NewWriter(w)
	for i := 0; i < df.N; i++ {
		for j, f := range cols {
			if j > 0 {
				bw.WriteByte('\t')
			}
			bw.WriteString(f.Value(i))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
