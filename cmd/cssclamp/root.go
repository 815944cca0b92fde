package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cssclamp <min> <max> [min-width] [max-width] [root]",
		Short: "Fluid CSS clamp() generator",
		Long: `Compute CSS clamp() expressions that scale a size linearly with the viewport.
Sizes are px (bare numbers or "px") or rem. The viewport range defaults to
500px..1920px with a 16px root, and can be set in .css-clamprc, package.json
("css-clamp" key), CSS_CLAMP_* environment variables or per call.`,
		Example: `  cssclamp 16 24
  cssclamp 1rem 32px --min-width 320 --max-width 1280
  cssclamp 8 16 100 200 20`,
		Args: cobra.MaximumNArgs(5),
		// Bare arguments compute an expression, same as the compute subcommand
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runCompute(cmd, args)
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfig(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global persistent flags (inherited by all subcommands)
	pf := rootCmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "Enable verbose logging")
	pf.Bool("quiet", false, "Suppress warnings")
	pf.Bool("color", false, "Force color output")
	pf.String("config", "", "Config file path (skips discovery)")

	addRangeFlags(rootCmd)

	rootCmd.AddCommand(newComputeCmd())
	rootCmd.AddCommand(newExplainCmd())
	rootCmd.AddCommand(newScaleCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// addRangeFlags registers the call-site overrides for the viewport range
func addRangeFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("min-width", "", "Viewport width where the minimum size applies (px or rem)")
	f.String("max-width", "", "Viewport width where the maximum size applies (px or rem)")
	f.String("root", "", "Root font size in px")
}
