package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/cssclamp"
	"github.com/yacobolo/cssclamp/internal/config"
)

var (
	k = koanf.New(".")

	// explorer memoizes discovery for the lifetime of the process
	explorer = config.NewExplorer()

	// project is the configuration resolved by loadConfig
	project = &config.Result{}

	// provider feeds project config into calculators
	provider cssclamp.ConfigProvider
)

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")

	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	if err := loadConfigFrom(configPath, dir); err != nil {
		return err
	}

	// CLI flags (highest precedence, only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	level := logLevel(k.Bool("verbose"), k.Bool("quiet"))
	logger := newLogger(cmd.ErrOrStderr(), level)
	cmd.SetContext(withLogger(cmd.Context(), logger))

	if project.Path != "" {
		logger.Debug("loaded config", "path", project.Path)
	}
	return nil
}

// loadConfigFrom resolves the project config, from configPath when given or
// by searching upwards from dir, and loads settings from it and the environment.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFrom(configPath, dir string) error {
	k = koanf.New(".")

	var err error
	if configPath != "" {
		project, err = explorer.LoadFile(configPath)
		provider = explorer.FileProvider(configPath)
	} else {
		project, err = explorer.Search(dir)
		provider = explorer.Provider(dir)
	}
	if err != nil {
		return err
	}

	// 1. Config file (lowest precedence among providers)
	if project.Values != nil {
		if err := k.Merge(project.Values); err != nil {
			return fmt.Errorf("loading config file %s: %w", project.Path, err)
		}
	}

	// 2. Environment variables (CSS_CLAMP_* prefix)
	if err := k.Load(env.Provider(config.DefaultEnvPrefix, ".", func(s string) string {
		// CSS_CLAMP_FORMAT -> format
		// CSS_CLAMP_OUTPUT -> output
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, config.DefaultEnvPrefix)),
			"_", "-",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// newCalculator builds a calculator over the resolved project config
func newCalculator(cmd *cobra.Command) *cssclamp.Calculator {
	return cssclamp.NewCalculator(
		cssclamp.WithConfigProvider(provider),
		cssclamp.WithLogger(loggerFromContext(cmd.Context())),
	)
}

// buildOverrides turns --min-width/--max-width/--root into a config
// override. When any of them is set, positional extras are ignored;
// otherwise the extras are minWidth, maxWidth and root in that order.
func buildOverrides(flags *pflag.FlagSet, extras []string) cssclamp.Overrides {
	var c cssclamp.Config
	fields := []struct {
		name string
		dest *cssclamp.Size
	}{
		{"min-width", &c.MinWidth},
		{"max-width", &c.MaxWidth},
		{"root", &c.Root},
	}

	anySet := false
	for _, f := range fields {
		if flags.Lookup(f.name) == nil || !flags.Changed(f.name) {
			continue
		}
		v, _ := flags.GetString(f.name)
		*f.dest = cssclamp.Text(v)
		anySet = true
	}
	if anySet {
		return cssclamp.ConfigOverrides(c)
	}

	if len(extras) == 0 {
		return nil
	}

	var positional [3]cssclamp.Size
	for i, arg := range extras {
		if i >= len(positional) {
			break
		}
		positional[i] = cssclamp.Text(arg)
	}
	return cssclamp.Positional(positional[0], positional[1], positional[2])
}

// getStringWithFallback checks the key, then returns the default.
func getStringWithFallback(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}
