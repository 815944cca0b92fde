package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssclamp"
)

// errNoExpression is returned when the inputs cannot produce an expression
var errNoExpression = errors.New("cannot compute a clamp() expression")

func newComputeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "compute <min> <max> [min-width] [max-width] [root]",
		Aliases: []string{"c"},
		Short:   "Print the clamp() expression for a size range",
		Long: `Print a clamp() expression scaling from <min> at the minimum viewport width
to <max> at the maximum. Trailing arguments override min-width, max-width and
root positionally; they are ignored when any of the matching flags is set.`,
		Args: cobra.RangeArgs(2, 5),
		RunE: runCompute,
	}
	addRangeFlags(cmd)
	return cmd
}

func runCompute(cmd *cobra.Command, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("expected <min> and <max>, got %d argument(s)", len(args))
	}

	calc := newCalculator(cmd)
	overrides := buildOverrides(cmd.Flags(), args[2:])

	logger := loggerFromContext(cmd.Context())
	resolved := calc.ResolveConfig(overrides)
	logger.Debug("resolved config",
		"minWidth", resolved.MinWidth, "maxWidth", resolved.MaxWidth, "root", resolved.Root)

	expr := calc.Clamp(cssclamp.Text(args[0]), cssclamp.Text(args[1]), overrides)
	if expr == "" {
		return fmt.Errorf("%w from %q and %q", errNoExpression, args[0], args[1])
	}

	fmt.Fprintln(cmd.OutOrStdout(), expr)
	return nil
}
