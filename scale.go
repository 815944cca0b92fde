package cssclamp

import (
	"fmt"
	"regexp"
)

// Step is one named entry of a fluid type or spacing scale
type Step struct {
	Name string
	Min  Size
	Max  Size
}

// ScaleOptions controls scale generation
type ScaleOptions struct {
	Prefix    string    // custom property prefix: "fluid" -> --fluid-<name>
	Overrides Overrides // applied to every step
}

// RenderedStep is a step together with its expression
type RenderedStep struct {
	Name       string // "step-0"
	Property   string // "--fluid-step-0"
	Min        string // "16px" as given
	Max        string
	Expression string // "clamp(...)"
}

// ScaleResult contains the rendered steps and anything that was skipped
type ScaleResult struct {
	Steps    []RenderedStep
	Config   Config // resolved viewport range and root used for every step
	Warnings []string
}

var stepNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// GenerateScale renders every step with calc. Steps with an invalid or
// duplicate name, or whose sizes do not produce an expression, are skipped
// and reported in Warnings.
func GenerateScale(calc *Calculator, steps []Step, opts ScaleOptions) (*ScaleResult, error) {
	if len(steps) == 0 {
		return nil, ErrEmptyScale
	}

	result := &ScaleResult{
		Steps:  make([]RenderedStep, 0, len(steps)),
		Config: calc.ResolveConfig(opts.Overrides),
	}

	seen := make(map[string]bool, len(steps))
	for _, step := range steps {
		if !stepNamePattern.MatchString(step.Name) {
			result.Warnings = append(result.Warnings, fmt.Sprintf("step %q: name must contain only letters, digits, '-' or '_'", step.Name))
			continue
		}
		if seen[step.Name] {
			result.Warnings = append(result.Warnings, fmt.Sprintf("step %q: duplicate name, keeping the first definition", step.Name))
			continue
		}
		seen[step.Name] = true

		expr := calc.Clamp(step.Min, step.Max, opts.Overrides)
		if expr == "" {
			result.Warnings = append(result.Warnings, fmt.Sprintf("step %q: cannot build clamp() from min %s and max %s", step.Name, step.Min, step.Max))
			continue
		}

		result.Steps = append(result.Steps, RenderedStep{
			Name:       step.Name,
			Property:   propertyName(opts.Prefix, step.Name),
			Min:        step.Min.String(),
			Max:        step.Max.String(),
			Expression: expr,
		})
	}

	return result, nil
}

// propertyName builds the custom property for a step
func propertyName(prefix, name string) string {
	if prefix == "" {
		return "--" + name
	}
	return "--" + prefix + "-" + name
}
