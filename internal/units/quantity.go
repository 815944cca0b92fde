// Package units converts CSS size values between px and rem and renders
// numbers the way browsers and JavaScript tooling print them.
package units

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Unit suffixes understood by ToRem
const (
	UnitNone = ""
	UnitPx   = "px"
	UnitRem  = "rem"
)

// UnsupportedUnitMessage is the warning emitted for any unit other than px or rem.
const UnsupportedUnitMessage = `Expected a value without a unit or with a unit of "px" or "rem", but got "%s"`

var (
	// Leading numeric token: sign, digits, optional fraction, optional exponent
	numberPattern = regexp.MustCompile(`^[+-]?\d+(?:\.\d*)?(?:[eE][+-]?\d+)?`)

	// parseFloat-style prefix (also accepts ".5" and Infinity)
	floatPattern = regexp.MustCompile(`^[+-]?(?:Infinity|\d+\.?\d*(?:[eE][+-]?\d+)?|\.\d+(?:[eE][+-]?\d+)?)`)
)

// Quantity is a number split from its unit suffix
type Quantity struct {
	Magnitude float64
	Unit      string
}

// Parse splits a value such as "16px", "1.5 rem" or "8" into magnitude and unit.
// The unit is whatever trimmed text follows the leading numeric token, so "1cm"
// and "3foo" parse fine. Without a numeric token the magnitude is NaN.
func Parse(value string) Quantity {
	value = strings.TrimSpace(value)

	token := numberPattern.FindString(value)
	if token == "" {
		return Quantity{Magnitude: math.NaN()}
	}

	return Quantity{
		Magnitude: ParseFloat(token),
		Unit:      strings.TrimSpace(value[len(token):]),
	}
}

// ParseFloat parses the longest float prefix of s after leading whitespace,
// ignoring trailing garbage. It returns NaN when no prefix parses.
func ParseFloat(s string) float64 {
	token := floatPattern.FindString(strings.TrimLeft(s, " \t\n\r\f\v"))
	if token == "" {
		return math.NaN()
	}

	switch token {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	// Out of range exponents still come back as ±Inf or ±0
	f, err := strconv.ParseFloat(token, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}

// ToRem converts value to rem using root as the pixel size of 1rem.
// Unitless values are treated as px. Any other unit calls warn with the
// original value and then falls back to px.
func ToRem(value string, root float64, warn func(msg string)) float64 {
	q := Parse(value)

	if q.Unit == UnitRem {
		return q.Magnitude
	}

	if q.Unit != UnitNone && q.Unit != UnitPx && warn != nil {
		warn(fmt.Sprintf(UnsupportedUnitMessage, value))
	}

	return q.Magnitude / root
}
