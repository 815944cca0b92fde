package cssclamp

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/yacobolo/cssclamp/internal/units"
)

// WarnFunc receives advisory messages such as unsupported unit warnings
type WarnFunc func(msg string)

// Calculator builds clamp() expressions using a project config provider.
// It holds no mutable state and is safe for concurrent use as long as its
// provider is.
type Calculator struct {
	provider ConfigProvider
	warn     WarnFunc
	logger   *log.Logger
}

// Option configures a Calculator
type Option func(*Calculator)

// WithConfigProvider sets where project-level config comes from.
// Without one only the built-in defaults apply.
func WithConfigProvider(p ConfigProvider) Option {
	return func(c *Calculator) {
		c.provider = p
	}
}

// WithWarnFunc replaces the default warning sink (log.Warn)
func WithWarnFunc(fn WarnFunc) Option {
	return func(c *Calculator) {
		c.warn = fn
	}
}

// WithLogger sets the logger used for warnings and debug output
func WithLogger(l *log.Logger) Option {
	return func(c *Calculator) {
		c.logger = l
	}
}

// NewCalculator creates a Calculator
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = log.Default()
	}
	if c.warn == nil {
		logger := c.logger
		c.warn = func(msg string) { logger.Warn(msg) }
	}
	return c
}

var defaultCalculator = NewCalculator()

// Clamp returns a CSS clamp() expression that scales linearly from minSize
// at the minimum viewport width to maxSize at the maximum, using the
// built-in defaults (root 16, widths 500 to 1920) beneath overrides.
//
//	cssclamp.Clamp(cssclamp.Number(8), cssclamp.Number(16), nil)
//	// clamp(0.5rem, 0.3239rem + 0.5634vw, 1rem)
func Clamp(minSize, maxSize Size, overrides Overrides) string {
	return defaultCalculator.Clamp(minSize, maxSize, overrides)
}

// ResolveConfig merges defaults, provider config and overrides, in
// increasing priority.
func (c *Calculator) ResolveConfig(overrides Overrides) Config {
	config := DefaultConfig()

	if c.provider != nil {
		found, err := c.provider.LoadConfig()
		if err != nil {
			c.logger.Warn("config lookup failed, using defaults", "err", err)
		} else {
			config = config.Merge(found)
		}
	}

	if overrides != nil {
		config = overrides.apply(config)
	}
	return config
}

// Clamp returns the clamp() expression for minSize..maxSize, or "" when
// either size is absent or any value is not a finite number.
func (c *Calculator) Clamp(minSize, maxSize Size, overrides Overrides) string {
	if minSize.IsZero() || maxSize.IsZero() {
		return ""
	}

	config := c.ResolveConfig(overrides)
	root := units.ParseFloat(config.Root.String())

	minSizeRem := units.ToRem(minSize.String(), root, c.warn)
	maxSizeRem := units.ToRem(maxSize.String(), root, c.warn)
	minWidthRem := units.ToRem(config.MinWidth.String(), root, c.warn)
	maxWidthRem := units.ToRem(config.MaxWidth.String(), root, c.warn)

	for _, v := range []float64{minSizeRem, maxSizeRem, minWidthRem, maxWidthRem} {
		if !isFinite(v) {
			return ""
		}
	}

	slope := (maxSizeRem - minSizeRem) / (maxWidthRem - minWidthRem)
	intercept := -minWidthRem*slope + minSizeRem

	// Equal breakpoints leave no range to interpolate over
	if !isFinite(slope) || !isFinite(intercept) {
		c.logger.Debug("degenerate viewport range", "minWidth", config.MinWidth, "maxWidth", config.MaxWidth)
		return ""
	}

	return fmt.Sprintf("clamp(%srem, %srem + %svw, %srem)",
		units.FormatFixed(minSizeRem),
		units.FormatFixed(intercept),
		units.FormatFixed(slope*100),
		units.FormatFixed(maxSizeRem))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
