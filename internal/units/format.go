package units

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Precision is the number of decimals kept in rendered expressions
const Precision = 4

// exponentThreshold is where fixed-point rendering switches to exponent form
const exponentThreshold = 1e21

// Round rounds v to the given number of decimals. Ties round away from zero
// and are decided on the exact binary value of v, so 2.00005 (stored as
// 2.0000499999...) rounds down while 0.03125 rounds up to 0.0313.
func Round(v float64, decimals int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) >= exponentThreshold {
		return v
	}

	negative := v < 0
	r := new(big.Rat).SetFloat64(math.Abs(v))

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	r.Mul(r, new(big.Rat).SetInt(scale))

	// Floor of the scaled value, then bump when the remainder is at least half
	n := new(big.Int).Quo(r.Num(), r.Denom())
	remainder := new(big.Rat).Sub(r, new(big.Rat).SetInt(n))
	if remainder.Cmp(big.NewRat(1, 2)) >= 0 {
		n.Add(n, big.NewInt(1))
	}

	rounded, _ := new(big.Rat).SetFrac(n, scale).Float64()
	if negative {
		return -rounded
	}
	return rounded
}

// Format renders v the way JavaScript's Number#toString does: shortest
// round-trip digits, no trailing zeros, "0" for negative zero, exponent form
// outside [1e-6, 1e21), and NaN/Infinity spelled out.
func Format(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	abs := math.Abs(v)
	if abs >= 1e-6 && abs < exponentThreshold {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	// Go pads the exponent to two digits ("1.5e-07"); JavaScript does not
	s := strconv.FormatFloat(v, 'e', -1, 64)
	mantissa, exponent, _ := strings.Cut(s, "e")
	sign := exponent[:1]
	digits := strings.TrimLeft(exponent[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}

// FormatFixed rounds v to Precision decimals and formats the result.
func FormatFixed(v float64) string {
	return Format(Round(v, Precision))
}
