package rotkin

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"
)

// ErrNoSuchField is returned when a data frame lacks a requested column.
var ErrNoSuchField = errors.New("no such field")

// DataFrame is a table of equally long columns. Column order is kept.
type DataFrame struct {
	// Name describes where the data came from, e.g. a file name.
	Name string

	// N is the number of rows.
	N int

	// Columns maps field names to their data.
	Columns map[string]Field

	// Pool holds the strings of all String fields in this frame.
	Pool *StringPool

	names []string
}

// NewDataFrame sets up an empty data frame. A nil pool allocates a new one.
func NewDataFrame(name string, pool *StringPool) *DataFrame {
	if pool == nil {
		pool = NewStringPool()
	}
	return &DataFrame{
		Name:    name,
		Columns: make(map[string]Field),
		Pool:    pool,
	}
}

// Add appends field f under name. The first field fixes N.
func (df *DataFrame) Add(name string, f Field) error {
	if _, ok := df.Columns[name]; ok {
		return fmt.Errorf("%s: duplicate field %q", df.Name, name)
	}
	if len(df.names) == 0 && df.N == 0 {
		df.N = len(f.Data)
	} else if len(f.Data) != df.N {
		return fmt.Errorf("%s: field %q has %d rows, want %d", df.Name, name, len(f.Data), df.N)
	}
	if f.Type == String && f.Pool != df.Pool {
		f = f.intern(df.Pool)
	}
	df.Columns[name] = f
	df.names = append(df.names, name)
	return nil
}

// Has reports whether df contains field.
func (df *DataFrame) Has(field string) bool {
	_, ok := df.Columns[field]
	return ok
}

// Col returns the named field.
func (df *DataFrame) Col(field string) (Field, error) {
	f, ok := df.Columns[field]
	if !ok {
		return Field{}, fmt.Errorf("%s: %w %q", df.Name, ErrNoSuchField, field)
	}
	return f, nil
}

// FieldNames returns the field names in column order.
func (df *DataFrame) FieldNames() []string {
	names := make([]string, len(df.names))
	copy(names, df.names)
	return names
}

// Rename the field old to new. Renaming a non-existing field is a no-op.
func (df *DataFrame) Rename(old, new string) {
	if old == new {
		return
	}
	f, ok := df.Columns[old]
	if !ok {
		return
	}
	delete(df.Columns, old)
	df.Columns[new] = f
	for i, n := range df.names {
		if n == old {
			df.names[i] = new
		}
	}
}

// Drop removes the given fields from df.
func (df *DataFrame) Drop(fields ...string) {
	for _, field := range fields {
		if _, ok := df.Columns[field]; !ok {
			continue
		}
		delete(df.Columns, field)
		for i, n := range df.names {
			if n == field {
				df.names = append(df.names[:i], df.names[i+1:]...)
				break
			}
		}
	}
}

// Copy makes a deep copy of df. The string pool is shared.
func (df *DataFrame) Copy() *DataFrame {
	n := NewDataFrame(df.Name, df.Pool)
	n.N = df.N
	for _, name := range df.names {
		n.Columns[name] = df.Columns[name].Copy()
		n.names = append(n.names, name)
	}
	return n
}

// Select returns a new data frame consisting of the given rows of df in
// the given order. Rows may repeat.
func (df *DataFrame) Select(rows []int) *DataFrame {
	result := NewDataFrame(df.Name, df.Pool)
	result.N = len(rows)
	for _, name := range df.names {
		result.Columns[name] = df.Columns[name].take(rows, df.Pool)
		result.names = append(result.names, name)
	}
	return result
}

// Append adds all rows of other to df. Both must have the same fields.
func (df *DataFrame) Append(other *DataFrame) error {
	if !same(df.names, other.names) {
		return fmt.Errorf("cannot append %s to %s: fields differ", other.Name, df.Name)
	}
	for _, name := range df.names {
		f := df.Columns[name]
		o := other.Columns[name]
		if o.Type == String && o.Pool != df.Pool {
			o = o.intern(df.Pool)
		}
		f.Data = append(f.Data, o.Data...)
		df.Columns[name] = f
	}
	df.N += other.N
	return nil
}

// Print writes df as an aligned text table to w.
func (df *DataFrame) Print(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 2, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "\t%s\t\n", strings.Join(df.names, "\t"))
	for i := 0; i < df.N; i++ {
		fmt.Fprintf(tw, "%d", i)
		for _, name := range df.names {
			fmt.Fprintf(tw, "\t%s", df.Columns[name].Value(i))
		}
		fmt.Fprint(tw, "\t\n")
	}
	return tw.Flush()
}

// Filter extracts all rows from df where field==value. Value is compared
// by its textual representation, so 3, 3.0 and "3" select the same rows.
func Filter(df *DataFrame, field string, value interface{}) (*DataFrame, error) {
	f, err := df.Col(field)
	if err != nil {
		return nil, err
	}
	want := formatValue(value)
	rows := []int{}
	for i := 0; i < df.N; i++ {
		if f.Value(i) == want {
			rows = append(rows, i)
		}
	}
	result := df.Select(rows)
	result.Name = fmt.Sprintf("%s[%s==%s]", df.Name, field, want)
	return result, nil
}

// Levels returns the distinct textual values of field in df in order
// of first appearance. Missing values are skipped.
func Levels(df *DataFrame, field string) ([]string, error) {
	f, err := df.Col(field)
	if err != nil {
		return nil, err
	}
	seen := NewStringSet()
	levels := []string{}
	for i := 0; i < df.N; i++ {
		if math.IsNaN(f.Data[i]) {
			continue
		}
		v := f.Value(i)
		if seen.Contains(v) {
			continue
		}
		seen.Add(v)
		levels = append(levels, v)
	}
	return levels, nil
}

// Partition splits df into one data frame per level of field.
func Partition(df *DataFrame, field string, levels []string) ([]*DataFrame, error) {
	parts := make([]*DataFrame, len(levels))
	for i, level := range levels {
		part, err := Filter(df, field, level)
		if err != nil {
			return nil, err
		}
		parts[i] = part
	}
	return parts, nil
}

func formatValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return formatFloat(v)
	case float32:
		return formatFloat(float64(v))
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprint(v)
	}
}

func formatFloat(x float64) string {
	if math.IsNaN(x) {
		return ""
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}

func contains(s []string, t string) bool {
	for _, ss := range s {
		if t == ss {
			return true
		}
	}
	return false
}

func same(s []string, t []string) bool {
	if len(s) != len(t) {
		return false
	}
	for _, x := range s {
		if !contains(t, x) {
			return false
		}
	}
	return true
}

// -------------------------------------------------------------------------
// Fields

// FieldType represents the basic type of a field.
type FieldType uint

const (
	Int FieldType = iota
	Float
	String
)

func (t FieldType) String() string {
	switch t {
	case Int:
		return "Int"
	case Float:
		return "Float"
	case String:
		return "String"
	}
	return "???"
}

// Field is one column of a data frame. All values are stored as float64;
// String fields store indices into Pool. NaN marks a missing value.
type Field struct {
	Type FieldType
	Data []float64
	Pool *StringPool
}

// NewField allocates a field of n zero values.
func NewField(n int, t FieldType, pool *StringPool) Field {
	return Field{
		Type: t,
		Data: make([]float64, n),
		Pool: pool,
	}
}

// NewStringField builds a String field from s. Empty strings are missing.
// A nil pool allocates a new one.
func NewStringField(s []string, pool *StringPool) Field {
	if pool == nil {
		pool = NewStringPool()
	}
	f := NewField(len(s), String, pool)
	for i, v := range s {
		if v == "" {
			f.Data[i] = math.NaN()
			continue
		}
		f.Data[i] = float64(pool.Add(v))
	}
	return f
}

// NewFloatField builds a Float field from x.
func NewFloatField(x []float64) Field {
	f := NewField(len(x), Float, nil)
	copy(f.Data, x)
	return f
}

// String formats the raw value x of f.
func (f Field) String(x float64) string {
	if math.IsNaN(x) {
		return ""
	}
	switch f.Type {
	case Int:
		return strconv.FormatInt(int64(x), 10)
	case String:
		return f.Pool.Get(int(x))
	}
	return formatFloat(x)
}

// Value returns the textual value of row i.
func (f Field) Value(i int) string {
	return f.String(f.Data[i])
}

// Copy returns a deep copy of f.
func (f Field) Copy() Field {
	c := Field{Type: f.Type, Pool: f.Pool, Data: make([]float64, len(f.Data))}
	copy(c.Data, f.Data)
	return c
}

// Levels returns the distinct non-missing raw values of f.
func (f Field) Levels() FloatSet {
	levels := NewFloatSet()
	for _, x := range f.Data {
		if !math.IsNaN(x) {
			levels.Add(x)
		}
	}
	return levels
}

// MinMax returns the minimum and maximum of f and their indices.
// The indices are -1 if f contains no usable value.
func (f Field) MinMax() (min, max float64, mini, maxi int) {
	min, max = math.Inf(+1), math.Inf(-1)
	mini, maxi = -1, -1
	for i, x := range f.Data {
		if math.IsNaN(x) {
			continue
		}
		if x < min {
			min, mini = x, i
		}
		if x > max {
			max, maxi = x, i
		}
	}
	return min, max, mini, maxi
}

// take copies the given rows of f, re-interning strings into pool.
func (f Field) take(rows []int, pool *StringPool) Field {
	t := NewField(len(rows), f.Type, pool)
	for j, i := range rows {
		t.Data[j] = f.Data[i]
	}
	if f.Type == String && f.Pool != pool {
		t.Pool = f.Pool
		t = t.intern(pool)
	}
	return t
}

// intern moves the strings of a String field into pool.
func (f Field) intern(pool *StringPool) Field {
	t := NewField(len(f.Data), String, pool)
	for i, x := range f.Data {
		if math.IsNaN(x) {
			t.Data[i] = x
			continue
		}
		t.Data[i] = float64(pool.Add(f.Pool.Get(int(x))))
	}
	return t
}
