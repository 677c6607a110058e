package rotkin

import (
	"fmt"
)

// keyIndex maps the textual key values of field to the rows holding them.
// Missing keys are not indexed.
func keyIndex(f Field, n int) (StringSet, map[string][]int) {
	keys := NewStringSet()
	rows := make(map[string][]int)
	for i := 0; i < n; i++ {
		k := f.Value(i)
		if k == "" {
			continue
		}
		keys.Add(k)
		rows[k] = append(rows[k], i)
	}
	return keys, rows
}

// Merge restricts left to the rows whose leftKey value occurs in right's
// rightKey column and inner joins the result with right.
//
// Rows are produced in left order; a left row matching k right rows yields
// k consecutive rows in right order. The result holds all left fields
// followed by all right fields. If both keys have the same name the key
// is kept once. Other fields present in both frames get the suffixes
// "_x" (left) and "_y" (right).
func Merge(left, right *DataFrame, leftKey, rightKey string) (*DataFrame, error) {
	lk, err := left.Col(leftKey)
	if err != nil {
		return nil, err
	}
	rk, err := right.Col(rightKey)
	if err != nil {
		return nil, err
	}

	rightKeys, rightRows := keyIndex(rk, right.N)

	// Restrict left to keys present in right.
	restricted := []int{}
	for i := 0; i < left.N; i++ {
		if rightKeys.Contains(lk.Value(i)) {
			restricted = append(restricted, i)
		}
	}

	var lrows, rrows []int
	for _, i := range restricted {
		for _, j := range rightRows[lk.Value(i)] {
			lrows = append(lrows, i)
			rrows = append(rrows, j)
		}
	}

	sharedKey := leftKey == rightKey
	rightNames := []string{}
	for _, name := range right.names {
		if sharedKey && name == rightKey {
			continue
		}
		rightNames = append(rightNames, name)
	}
	clash := NewStringSet()
	for _, name := range left.names {
		if sharedKey && name == leftKey {
			continue
		}
		if contains(rightNames, name) {
			clash.Add(name)
		}
	}

	result := NewDataFrame(fmt.Sprintf("%s merged with %s", left.Name, right.Name), nil)
	result.N = len(lrows)
	for _, name := range left.names {
		out := name
		if clash.Contains(name) {
			out = name + "_x"
		}
		if err := result.Add(out, left.Columns[name].take(lrows, result.Pool)); err != nil {
			return nil, err
		}
	}
	for _, name := range rightNames {
		out := name
		if clash.Contains(name) {
			out = name + "_y"
		}
		if err := result.Add(out, right.Columns[name].take(rrows, result.Pool)); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// AntiJoin returns the rows of left whose leftKey value does not occur in
// right's rightKey column. Row order is kept.
func AntiJoin(left, right *DataFrame, leftKey, rightKey string) (*DataFrame, error) {
	lk, err := left.Col(leftKey)
	if err != nil {
		return nil, err
	}
	rk, err := right.Col(rightKey)
	if err != nil {
		return nil, err
	}
	rightKeys, _ := keyIndex(rk, right.N)

	rows := []int{}
	for i := 0; i < left.N; i++ {
		if !rightKeys.Contains(lk.Value(i)) {
			rows = append(rows, i)
		}
	}
	result := left.Select(rows)
	result.Name = fmt.Sprintf("%s without %s", left.Name, right.Name)
	return result, nil
}

// MergeFiles merges the tables in the files left and right on the given
// keys and writes the result to destination.
func MergeFiles(left, right, leftKey, rightKey, destination string) (*DataFrame, error) {
	return combineFiles(Merge, left, right, leftKey, rightKey, destination)
}

// UniqueFiles writes the rows of left whose key is not present in right
// to destination.
func UniqueFiles(left, right, leftKey, rightKey, destination string) (*DataFrame, error) {
	return combineFiles(AntiJoin, left, right, leftKey, rightKey, destination)
}

func combineFiles(op func(l, r *DataFrame, lk, rk string) (*DataFrame, error),
	left, right, leftKey, rightKey, destination string) (*DataFrame, error) {
	l, err := ReadFile(left)
	if err != nil {
		return nil, err
	}
	r, err := ReadFile(right)
	if err != nil {
		return nil, err
	}
	df, err := op(l, r, leftKey, rightKey)
	if err != nil {
		return nil, err
	}
	if err := WriteFile(df, destination); err != nil {
		return nil, err
	}
	return df, nil
}
