package rotkin

import (
	"fmt"
	"sort"
	"strings"
)

// -------------------------------------------------------------------------
// Float Set

// FloatSet is a set of float64 values.
type FloatSet map[float64]struct{}

func NewFloatSet() FloatSet {
	return make(FloatSet)
}

func (s FloatSet) String() string {
	parts := make([]string, 0, len(s))
	for _, x := range s.Elements() {
		parts = append(parts, fmt.Sprintf("%g", x))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Add adds x to s.
func (s FloatSet) Add(x float64) { s[x] = struct{}{} }

// Contains reports membership of x in s.
func (s FloatSet) Contains(x float64) bool {
	_, ok := s[x]
	return ok
}

// Elements returns the members of s in ascending order.
func (s FloatSet) Elements() []float64 {
	elems := make([]float64, 0, len(s))
	for x := range s {
		elems = append(elems, x)
	}
	sort.Float64s(elems)
	return elems
}

// -------------------------------------------------------------------------
// String Set

// StringSet is a set of string values, e.g. the keys of a join column.
type StringSet map[string]struct{}

func NewStringSet() StringSet {
	return make(StringSet)
}

func NewStringSetFrom(init []string) StringSet {
	s := NewStringSet()
	for _, v := range init {
		s.Add(v)
	}
	return s
}

// Add adds x to s.
func (s StringSet) Add(x string) { s[x] = struct{}{} }

// Contains reports membership of x in s.
func (s StringSet) Contains(x string) bool {
	_, ok := s[x]
	return ok
}

// Remove removes all elements of t from s. (Set difference)
func (s StringSet) Remove(t StringSet) {
	for x := range t {
		delete(s, x)
	}
}

// Elements returns the members of s in sorted order.
func (s StringSet) Elements() []string {
	elems := make([]string, 0, len(s))
	for x := range s {
		elems = append(elems, x)
	}
	sort.Strings(elems)
	return elems
}
