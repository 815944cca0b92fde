package cssclamp

import "errors"

var (
	// ErrInvalidSize is returned when a config value is neither a number nor a string
	ErrInvalidSize = errors.New("invalid size value")
	// ErrInvalidExpression is returned when a string is not a clamp() expression produced by this package
	ErrInvalidExpression = errors.New("invalid clamp expression")
	// ErrNoSlope is returned when an expression does not scale with the viewport
	ErrNoSlope = errors.New("expression has no viewport slope")
	// ErrEmptyScale is returned when a scale has no steps to render
	ErrEmptyScale = errors.New("scale has no steps")
)
