package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a default .css-clamprc config file",
		Long: `Create a .css-clamprc.yaml (or .css-clamprc.toml) configuration file in the
current directory with the default range (` + describeDefaults() + `) and a starter scale.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool("force")
			format, _ := cmd.Flags().GetString("format")

			var name, content string
			switch format {
			case "yaml", "yml":
				name, content = ".css-clamprc.yaml", defaultYAMLConfig
			case "toml":
				name, content = ".css-clamprc.toml", defaultTOMLConfig
			default:
				return fmt.Errorf("unknown format %q (expected yaml or toml)", format)
			}

			if _, err := os.Stat(name); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", name)
			}

			if err := os.WriteFile(name, []byte(content), 0644); err != nil {
				return fmt.Errorf("writing config file: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", name)
			return nil
		},
	}
	cmd.Flags().Bool("force", false, "Overwrite existing config file")
	cmd.Flags().String("format", "yaml", "Config file format: yaml|toml")
	return cmd
}

const defaultYAMLConfig = `# cssclamp configuration
# Widths and root accept bare px numbers, "px" or "rem" values.

minWidth: 500
maxWidth: 1920
root: 16

# Used by "cssclamp scale"
prefix: fluid
scale:
  - name: sm
    min: 14
    max: 16
  - name: base
    min: 16
    max: 20
  - name: lg
    min: 20
    max: 28
  - name: xl
    min: 28
    max: 48
`

const defaultTOMLConfig = `# cssclamp configuration
# Widths and root accept bare px numbers, "px" or "rem" values.

minWidth = 500
maxWidth = 1920
root = 16

# Used by "cssclamp scale"
prefix = "fluid"

[[scale]]
name = "sm"
min = 14
max = 16

[[scale]]
name = "base"
min = 16
max = 20

[[scale]]
name = "lg"
min = 20
max = 28

[[scale]]
name = "xl"
min = 28
max = 48
`
