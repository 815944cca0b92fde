package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/yacobolo/cssclamp/internal/units"
)

// Step is one rendered scale entry
type Step struct {
	Property   string
	Min        string
	Max        string
	Expression string
}

// Scale is a rendered scale with the config it was computed against
type Scale struct {
	MinWidth string
	MaxWidth string
	Root     string
	Steps    []Step
	Warnings []string
}

// Explanation describes a parsed clamp() expression
type Explanation struct {
	Expression     string
	Min            float64 // rem
	Intercept      float64 // rem
	Slope          float64 // vw
	Max            float64 // rem
	Root           float64 // px per rem
	MinWidth       float64 // px
	MaxWidth       float64 // px
	HasBreakpoints bool
}

// Reporter writes human-readable output
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a new reporter
func NewReporter(w io.Writer, useColors bool) *Reporter {
	return &Reporter{
		w:         w,
		useColors: useColors,
	}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintScale lists each step with its inputs and expression
func (r *Reporter) PrintScale(s Scale) {
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Fluid Scale", r.useColors))
	fmt.Fprintln(r.w, "-----------")
	fmt.Fprintf(r.w, "Viewport: %spx to %spx (root %spx)\n", s.MinWidth, s.MaxWidth, s.Root)
	fmt.Fprintln(r.w, "")

	width := 0
	for _, step := range s.Steps {
		if len(step.Property) > width {
			width = len(step.Property)
		}
	}

	for _, step := range s.Steps {
		padding := strings.Repeat(" ", width-len(step.Property))
		fmt.Fprintf(r.w, "%s%s  %s  %s\n",
			RenderStyle(StyleCyan, step.Property, r.useColors),
			padding,
			RenderStyle(StyleGreen, step.Expression, r.useColors),
			RenderStyle(StyleGray, fmt.Sprintf("(%s -> %s)", step.Min, step.Max), r.useColors))
	}

	r.PrintWarnings(s.Warnings)
}

// PrintWarnings shows skipped steps and other advisories
func (r *Reporter) PrintWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "--------")

	for _, warning := range warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}

// PrintExplanation breaks an expression into its parts
func (r *Reporter) PrintExplanation(e Explanation) {
	fmt.Fprintln(r.w, RenderStyle(StyleGreen, e.Expression, r.useColors))
	fmt.Fprintln(r.w, "")
	fmt.Fprintf(r.w, "Minimum:    %srem (%spx)\n", units.FormatFixed(e.Min), units.FormatFixed(e.Min*e.Root))
	fmt.Fprintf(r.w, "Maximum:    %srem (%spx)\n", units.FormatFixed(e.Max), units.FormatFixed(e.Max*e.Root))
	fmt.Fprintf(r.w, "Preferred:  %srem + %svw\n", units.FormatFixed(e.Intercept), units.FormatFixed(e.Slope))

	if !e.HasBreakpoints {
		fmt.Fprintln(r.w, RenderStyle(StyleGray, "The preferred value does not change with the viewport.", r.useColors))
		return
	}

	fmt.Fprintf(r.w, "Scales from %spx to %spx viewport width (root %spx)\n",
		units.FormatFixed(e.MinWidth), units.FormatFixed(e.MaxWidth), units.Format(e.Root))
}
