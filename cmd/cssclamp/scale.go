package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssclamp"
	"github.com/yacobolo/cssclamp/internal/report"
)

func newScaleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "scale",
		Aliases: []string{"gen"},
		Short:   "Render the configured fluid scale as CSS custom properties",
		Long: `Render every step of the "scale" list in the project config as a clamp()
expression. Output is a :root block of custom properties (css), a JSON document
(json) or a terminal listing (text).`,
		Args: cobra.NoArgs,
		RunE: runScale,
	}

	f := cmd.Flags()
	f.String("format", "css", "Output format: css|json|text")
	f.StringP("output", "o", "", "Write to file instead of stdout")
	f.String("prefix", "fluid", "Custom property prefix (--<prefix>-<name>)")
	addRangeFlags(cmd)
	return cmd
}

func runScale(cmd *cobra.Command, _ []string) error {
	logger := loggerFromContext(cmd.Context())

	if len(project.Scale) == 0 {
		return fmt.Errorf("%w: add a \"scale\" list of {name, min, max} to your config", cssclamp.ErrEmptyScale)
	}

	opts := cssclamp.ScaleOptions{
		Prefix:    getStringWithFallback("prefix", "fluid"),
		Overrides: buildOverrides(cmd.Flags(), nil),
	}
	result, err := cssclamp.GenerateScale(newCalculator(cmd), project.Scale, opts)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	format := cssclamp.DetermineOutputFormat(getStringWithFallback("format", "css"))
	if format != cssclamp.OutputText {
		for _, w := range result.Warnings {
			logger.Warn(w)
		}
	}

	outputPath := k.String("output")
	var w io.Writer = cmd.OutOrStdout()
	if outputPath != "" {
		// #nosec G304 - path comes from the command line or project config
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("creating %s: %w", outputPath, err)
		}
		defer f.Close()
		w = f
	}

	useColors := outputPath == "" && report.ShouldUseColors(k.Bool("color"))
	if err := cssclamp.WriteScale(w, result, format, useColors); err != nil {
		return fmt.Errorf("write failed: %w", err)
	}

	if outputPath != "" {
		logger.Info("wrote scale", "steps", len(result.Steps), "path", outputPath)
	}
	return nil
}
