package rotkin

import "fmt"

// Polynomial holds coefficients, lowest degree first.
type Polynomial []float64

// Eval evaluates p at x using Horner's method.
func (p Polynomial) Eval(x float64) float64 {
	y := 0.0
	for i := len(p) - 1; i >= 0; i-- {
		y = y*x + p[i]
	}
	return y
}

// TeffPolynomial converts dereddened Gaia BP-RP colour to photometric
// effective temperature in Kelvin.
var TeffPolynomial = Polynomial{
	8959.8112335205078, -4801.5566310882568, 1931.4756631851196,
	-2445.9980716705322, 2669.0248055458069, -1324.0671020746231,
	301.13205924630165, -25.923997443169355,
}

// UpdatedTeffPolynomial is a refit of TeffPolynomial.
var UpdatedTeffPolynomial = Polynomial{
	-416.585, 39780.0, -84190.5, 85203.9, -48225.9, 15598.5,
	-2694.76, 192.865,
}

// BpRpToTeff returns the photometric effective temperature for the
// dereddened colour bprp.
func BpRpToTeff(bprp float64) float64 {
	return TeffPolynomial.Eval(bprp)
}

// BpRpToTeffs applies BpRpToTeff to all of bprp.
func BpRpToTeffs(bprp []float64) []float64 {
	teff := make([]float64, len(bprp))
	for i, c := range bprp {
		teff[i] = BpRpToTeff(c)
	}
	return teff
}

// Colour and temperature field names.
const (
	BpRpField = "bp_rp"
	TeffField = "teff"
)

// AddTeff returns a copy of df with a teff field computed from bp_rp
// appended. An existing teff field is replaced.
func AddTeff(df *DataFrame) (*DataFrame, error) {
	return AddTeffWith(df, TeffPolynomial)
}

// AddTeffWith is AddTeff with conversion polynomial p.
func AddTeffWith(df *DataFrame, p Polynomial) (*DataFrame, error) {
	bprp, err := df.Col(BpRpField)
	if err != nil {
		return nil, err
	}
	if bprp.Type == String {
		return nil, fmt.Errorf("%s: field %s is not numeric", df.Name, BpRpField)
	}
	result := df.Copy()
	result.Drop(TeffField)
	teff := make([]float64, len(bprp.Data))
	for i, c := range bprp.Data {
		teff[i] = p.Eval(c)
	}
	if err := result.Add(TeffField, NewFloatField(teff)); err != nil {
		return nil, err
	}
	return result, nil
}

// AddTeffFile adds the teff field to the table at path and rewrites it.
func AddTeffFile(path string) (*DataFrame, error) {
	df, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	df, err = AddTeff(df)
	if err != nil {
		return nil, err
	}
	return df, WriteFile(df, path)
}
