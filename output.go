package cssclamp

import (
	"fmt"
	"io"

	"github.com/yacobolo/cssclamp/internal/report"
)

// OutputFormat selects how a scale is written
type OutputFormat string

const (
	// OutputCSS writes a :root block of custom properties (stylesheets)
	OutputCSS OutputFormat = "css"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
	// OutputText writes an aligned, optionally colored listing (terminals)
	OutputText OutputFormat = "text"
)

// DetermineOutputFormat maps a flag value to an OutputFormat, falling back to CSS
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch formatFlag {
	case "css":
		return OutputCSS
	case "json":
		return OutputJSON
	case "text", "txt":
		return OutputText
	default:
		return OutputCSS
	}
}

// WriteScale writes the scale in the requested format
func WriteScale(w io.Writer, result *ScaleResult, format OutputFormat, useColors bool) error {
	switch format {
	case OutputJSON:
		return WriteJSON(w, result)
	case OutputText:
		report.NewReporter(w, useColors).PrintScale(toReportScale(result))
		return nil
	default:
		return WriteCSS(w, result)
	}
}

// WriteCSS writes the steps as custom properties on :root
func WriteCSS(w io.Writer, result *ScaleResult) error {
	if _, err := fmt.Fprintf(w, "/* Generated by cssclamp: %spx to %spx, root %spx */\n:root {\n",
		result.Config.MinWidth, result.Config.MaxWidth, result.Config.Root); err != nil {
		return err
	}
	for _, step := range result.Steps {
		if _, err := fmt.Fprintf(w, "  %s: %s;\n", step.Property, step.Expression); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}

func toReportScale(result *ScaleResult) report.Scale {
	steps := make([]report.Step, len(result.Steps))
	for i, step := range result.Steps {
		steps[i] = report.Step{
			Property:   step.Property,
			Min:        step.Min,
			Max:        step.Max,
			Expression: step.Expression,
		}
	}
	return report.Scale{
		MinWidth: result.Config.MinWidth.String(),
		MaxWidth: result.Config.MaxWidth.String(),
		Root:     result.Config.Root.String(),
		Steps:    steps,
		Warnings: result.Warnings,
	}
}
