package cssclamp

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string     `json:"version"`
	Timestamp string     `json:"timestamp"`
	Config    JSONConfig `json:"config"`
	Steps     []JSONStep `json:"steps"`
	Warnings  []string   `json:"warnings"`
}

// JSONConfig is the resolved viewport range and root
type JSONConfig struct {
	MinWidth string `json:"min_width"`
	MaxWidth string `json:"max_width"`
	Root     string `json:"root"`
}

// JSONStep represents a single rendered step
type JSONStep struct {
	Name       string `json:"name"`
	Property   string `json:"property"`
	Min        string `json:"min"`
	Max        string `json:"max"`
	Expression string `json:"expression"`
}

// WriteJSON writes the scale result as JSON
func WriteJSON(w io.Writer, result *ScaleResult) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts ScaleResult to JSONOutput
func buildJSONOutput(result *ScaleResult) JSONOutput {
	steps := make([]JSONStep, len(result.Steps))
	for i, step := range result.Steps {
		steps[i] = JSONStep{
			Name:       step.Name,
			Property:   step.Property,
			Min:        step.Min,
			Max:        step.Max,
			Expression: step.Expression,
		}
	}

	warnings := result.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Config: JSONConfig{
			MinWidth: result.Config.MinWidth.String(),
			MaxWidth: result.Config.MaxWidth.String(),
			Root:     result.Config.Root.String(),
		},
		Steps:    steps,
		Warnings: warnings,
	}
}
