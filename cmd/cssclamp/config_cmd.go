package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssclamp"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the resolved viewport range and where it came from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolved := newCalculator(cmd).ResolveConfig(nil)

			source := project.Path
			if source == "" {
				source = "defaults"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "source:   %s\n", source)
			fmt.Fprintf(out, "minWidth: %s\n", resolved.MinWidth)
			fmt.Fprintf(out, "maxWidth: %s\n", resolved.MaxWidth)
			fmt.Fprintf(out, "root:     %s\n", resolved.Root)
			if project.Prefix != "" {
				fmt.Fprintf(out, "prefix:   %s\n", project.Prefix)
			}
			if n := len(project.Scale); n > 0 {
				fmt.Fprintf(out, "scale:    %d step(s)\n", n)
			}
			return nil
		},
	}
	return cmd
}

// describeDefaults lists the built-in range for help text
func describeDefaults() string {
	d := cssclamp.DefaultConfig()
	return fmt.Sprintf("%spx..%spx, root %spx", d.MinWidth, d.MaxWidth, d.Root)
}
