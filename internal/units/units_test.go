package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		magnitude float64
		unit      string
	}{
		{name: "unitless", value: "16", magnitude: 16, unit: ""},
		{name: "px", value: "16px", magnitude: 16, unit: "px"},
		{name: "rem with fraction", value: "0.5rem", magnitude: 0.5, unit: "rem"},
		{name: "surrounding whitespace", value: "  12 px  ", magnitude: 12, unit: "px"},
		{name: "negative", value: "-4px", magnitude: -4, unit: "px"},
		{name: "explicit plus", value: "+4", magnitude: 4, unit: ""},
		{name: "exponent", value: "1e2px", magnitude: 100, unit: "px"},
		{name: "trailing dot", value: "3.rem", magnitude: 3, unit: "rem"},
		{name: "dangling exponent is unit", value: "2em", magnitude: 2, unit: "em"},
		{name: "unknown unit", value: "1cm", magnitude: 1, unit: "cm"},
		{name: "garbage unit", value: "3foo bar", magnitude: 3, unit: "foo bar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Parse(tt.value)
			assert.InDelta(t, tt.magnitude, q.Magnitude, 1e-12)
			assert.Equal(t, tt.unit, q.Unit)
		})
	}
}

func TestParse_NoNumber(t *testing.T) {
	for _, value := range []string{"", "px", "abc", ".5rem", "NaN"} {
		q := Parse(value)
		assert.True(t, math.IsNaN(q.Magnitude), "value %q", value)
		assert.Empty(t, q.Unit, "value %q", value)
	}
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"16", 16},
		{"  20px", 20},
		{".5", 0.5},
		{"-1.25e1", -12.5},
		{"7.", 7},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, ParseFloat(tt.in), 1e-12, "input %q", tt.in)
	}

	assert.True(t, math.IsInf(ParseFloat("Infinity"), 1))
	assert.True(t, math.IsInf(ParseFloat("-Infinity"), -1))
	assert.True(t, math.IsInf(ParseFloat("1e400"), 1))
	assert.True(t, math.IsNaN(ParseFloat("")))
	assert.True(t, math.IsNaN(ParseFloat("px")))
}

func TestToRem(t *testing.T) {
	var warnings []string
	warn := func(msg string) { warnings = append(warnings, msg) }

	assert.InDelta(t, 0.5, ToRem("8", 16, warn), 1e-12)
	assert.InDelta(t, 0.5, ToRem("8px", 16, warn), 1e-12)
	assert.InDelta(t, 0.5, ToRem("0.5rem", 16, warn), 1e-12)
	assert.InDelta(t, 0.4, ToRem("8px", 20, warn), 1e-12)
	require.Empty(t, warnings)

	assert.InDelta(t, 0.0625, ToRem("1cm", 16, warn), 1e-12)
	require.Len(t, warnings, 1)
	assert.Equal(t, `Expected a value without a unit or with a unit of "px" or "rem", but got "1cm"`, warnings[0])
}

func TestToRem_WarnsWithOriginalValue(t *testing.T) {
	var got string
	ToRem(" 2 em ", 16, func(msg string) { got = msg })
	assert.Equal(t, `Expected a value without a unit or with a unit of "px" or "rem", but got " 2 em "`, got)
}

func TestToRem_NilWarn(t *testing.T) {
	assert.NotPanics(t, func() {
		ToRem("3vh", 16, nil)
	})
}

func TestRound(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "already short", in: 0.5, want: 0.5},
		{name: "round down", in: 0.323943661971831, want: 0.3239},
		{name: "round up", in: 0.5633802816901409, want: 0.5634},
		{name: "exact tie away from zero", in: 0.03125, want: 0.0313},
		{name: "negative exact tie", in: -0.03125, want: -0.0313},
		{name: "binary below tie", in: 2.00005, want: 2},
		{name: "binary above tie", in: 1.00005, want: 1.0001},
		{name: "float noise", in: 8.000000000000002, want: 8},
		{name: "large", in: 123456.789012, want: 123456.789},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Round(tt.in, Precision))
		})
	}
}

func TestRound_NonFinite(t *testing.T) {
	assert.True(t, math.IsNaN(Round(math.NaN(), 4)))
	assert.True(t, math.IsInf(Round(math.Inf(-1), 4), -1))
	assert.Equal(t, 1e22, Round(1e22, 4))
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.5, "0.5"},
		{8, "8"},
		{-0.1, "-0.1"},
		{math.Copysign(0, -1), "0"},
		{0, "0"},
		{1e21, "1e+21"},
		{1.5e-7, "1.5e-7"},
		{0.000001, "0.000001"},
		{123456789, "123456789"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(tt.in))
	}
}

func TestFormatFixed(t *testing.T) {
	assert.Equal(t, "0.3239", FormatFixed(0.323943661971831))
	assert.Equal(t, "0", FormatFixed(-1.1102230246251565e-16))
	assert.Equal(t, "1.1268", FormatFixed(1.1267605633802817))
}
