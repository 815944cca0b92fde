package cssclamp

import (
	"fmt"
	"math"

	"github.com/yacobolo/cssclamp/internal/units"
)

type sizeKind uint8

const (
	sizeUnset sizeKind = iota
	sizeNumber
	sizeText
)

// Size is a CSS length input: a bare number (treated as px) or a string
// such as "16", "16px" or "1rem". The zero value is an unset Size.
type Size struct {
	kind sizeKind
	num  float64
	text string
}

// Number returns a numeric Size
func Number(v float64) Size {
	return Size{kind: sizeNumber, num: v}
}

// Text returns a textual Size, e.g. Text("1.5rem")
func Text(s string) Size {
	return Size{kind: sizeText, text: s}
}

// IsSet reports whether the Size was given at all
func (s Size) IsSet() bool {
	return s.kind != sizeUnset
}

// IsZero reports whether s is unset, 0, NaN or the empty string.
// Such sizes are treated as absent.
func (s Size) IsZero() bool {
	switch s.kind {
	case sizeNumber:
		return s.num == 0 || math.IsNaN(s.num)
	case sizeText:
		return s.text == ""
	}
	return true
}

// String renders the Size as text. Numbers print without trailing zeros
// ("0.5", "16", "1e+21"); an unset Size prints as "undefined".
func (s Size) String() string {
	switch s.kind {
	case sizeNumber:
		return units.Format(s.num)
	case sizeText:
		return s.text
	}
	return "undefined"
}

// SizeOf converts a decoded config value (number or string) into a Size.
func SizeOf(v any) (Size, error) {
	switch val := v.(type) {
	case nil:
		return Size{}, nil
	case Size:
		return val, nil
	case string:
		return Text(val), nil
	case float64:
		return Number(val), nil
	case float32:
		return Number(float64(val)), nil
	case int:
		return Number(float64(val)), nil
	case int64:
		return Number(float64(val)), nil
	case int32:
		return Number(float64(val)), nil
	case uint64:
		return Number(float64(val)), nil
	case uint:
		return Number(float64(val)), nil
	case fmt.Stringer:
		return Text(val.String()), nil
	}
	return Size{}, fmt.Errorf("%w: %T", ErrInvalidSize, v)
}
