package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssclamp"
	"github.com/yacobolo/cssclamp/internal/report"
	"github.com/yacobolo/cssclamp/internal/units"
)

func newExplainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain <expression>",
		Short: "Show the sizes and viewport range of a clamp() expression",
		Long: `Parse a clamp(<min>rem, <intercept>rem + <slope>vw, <max>rem) expression and
report its bounds in rem and px, and the viewport widths where it stops scaling.`,
		Example: `  cssclamp explain "clamp(0.5rem, 0.3239rem + 0.5634vw, 1rem)"`,
		Args:    cobra.MinimumNArgs(1),
		RunE:    runExplain,
	}
	cmd.Flags().String("root", "", "Root font size in px (default: from config, else 16)")
	return cmd
}

func runExplain(cmd *cobra.Command, args []string) error {
	// Unquoted expressions arrive split on spaces
	input := strings.Join(args, " ")

	expr, err := cssclamp.ParseExpression(input)
	if err != nil {
		return err
	}

	root := resolveRoot(cmd)
	explanation := report.Explanation{
		Expression: input,
		Min:        expr.Min,
		Intercept:  expr.Intercept,
		Slope:      expr.Slope,
		Max:        expr.Max,
		Root:       root,
	}

	bp, err := expr.Breakpoints(root)
	switch {
	case err == nil:
		explanation.MinWidth = bp.MinWidth
		explanation.MaxWidth = bp.MaxWidth
		explanation.HasBreakpoints = true
	case !errors.Is(err, cssclamp.ErrNoSlope):
		return err
	}

	useColors := report.ShouldUseColors(k.Bool("color"))
	report.NewReporter(cmd.OutOrStdout(), useColors).PrintExplanation(explanation)
	return nil
}

// resolveRoot returns the px size of 1rem from --root or the resolved config
func resolveRoot(cmd *cobra.Command) float64 {
	var overrides cssclamp.Overrides
	if cmd.Flags().Changed("root") {
		v, _ := cmd.Flags().GetString("root")
		overrides = cssclamp.ConfigOverrides(cssclamp.Config{Root: cssclamp.Text(v)})
	}

	resolved := newCalculator(cmd).ResolveConfig(overrides)
	root := units.ParseFloat(resolved.Root.String())
	if !(root > 0) {
		loggerFromContext(cmd.Context()).Warn("invalid root size, using default", "root", resolved.Root)
		return cssclamp.DefaultRoot
	}
	return root
}
