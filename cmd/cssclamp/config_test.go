package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/cssclamp/internal/config"
)

// resetConfig isolates package state so discovery stops at dir.
func resetConfig(t *testing.T, dir string) {
	t.Helper()
	k = koanf.New(".")
	explorer = config.NewExplorer(config.WithStopDir(dir))
	project = &config.Result{}
	provider = nil
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestConfigFileLoading(t *testing.T) {
	dir := t.TempDir()
	resetConfig(t, dir)

	configPath := filepath.Join(dir, "clamp.yaml")
	writeConfig(t, configPath, `
minWidth: 320
maxWidth: 1280
root: 18
prefix: space
format: json
output: dist/fluid.json
`)
	require.NoError(t, loadConfigFrom(configPath, dir))

	assert.Equal(t, configPath, project.Path)
	assert.Equal(t, "space", k.String("prefix"))
	assert.Equal(t, "json", k.String("format"))
	assert.Equal(t, "dist/fluid.json", k.String("output"))
	assert.Equal(t, "320", project.Config.MinWidth.String())
	assert.Equal(t, "18", project.Config.Root.String())
}

func TestConfigDiscovery(t *testing.T) {
	dir := t.TempDir()
	resetConfig(t, dir)

	writeConfig(t, filepath.Join(dir, ".css-clamprc.toml"), "root = 20\nprefix = \"type\"\n")
	nested := filepath.Join(dir, "src")
	require.NoError(t, os.MkdirAll(nested, 0755))

	require.NoError(t, loadConfigFrom("", nested))

	assert.Equal(t, filepath.Join(dir, ".css-clamprc.toml"), project.Path)
	assert.Equal(t, "type", k.String("prefix"))

	cfg, err := provider.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "20", cfg.Root.String())
}

func TestConfigFileNotFound(t *testing.T) {
	dir := t.TempDir()
	resetConfig(t, dir)

	err := loadConfigFrom(filepath.Join(dir, "missing.yaml"), dir)
	require.Error(t, err)

	// Discovery without a file is not an error
	require.NoError(t, loadConfigFrom("", dir))
	assert.Empty(t, project.Path)
	assert.Equal(t, "fluid", getStringWithFallback("prefix", "fluid"))
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	dir := t.TempDir()
	resetConfig(t, dir)

	configPath := filepath.Join(dir, ".css-clamprc.yaml")
	writeConfig(t, configPath, "format: css\nprefix: from-file\n")

	t.Setenv("CSS_CLAMP_FORMAT", "text")
	t.Setenv("CSS_CLAMP_PREFIX", "from-env")

	require.NoError(t, loadConfigFrom("", dir))

	assert.Equal(t, "text", k.String("format"))
	assert.Equal(t, "from-env", k.String("prefix"))
	assert.Equal(t, "from-env", project.Prefix)
}

func newRangeFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("min-width", "", "")
	fs.String("max-width", "", "")
	fs.String("root", "", "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestBuildOverrides(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		assert.Nil(t, buildOverrides(newRangeFlags(t), nil))
	})

	t.Run("positional", func(t *testing.T) {
		dir := t.TempDir()
		resetConfig(t, dir)
		require.NoError(t, loadConfigFrom("", dir))

		o := buildOverrides(newRangeFlags(t), []string{"100", "200", "20"})
		require.NotNil(t, o)

		got := newCalculatorForTest(t).ResolveConfig(o)
		assert.Equal(t, "100", got.MinWidth.String())
		assert.Equal(t, "200", got.MaxWidth.String())
		assert.Equal(t, "20", got.Root.String())
	})

	t.Run("flags win over positional", func(t *testing.T) {
		dir := t.TempDir()
		resetConfig(t, dir)
		require.NoError(t, loadConfigFrom("", dir))

		o := buildOverrides(newRangeFlags(t, "--max-width", "1200"), []string{"100", "200"})
		got := newCalculatorForTest(t).ResolveConfig(o)
		assert.Equal(t, "500", got.MinWidth.String())
		assert.Equal(t, "1200", got.MaxWidth.String())
	})

	t.Run("positional zero keeps default", func(t *testing.T) {
		dir := t.TempDir()
		resetConfig(t, dir)
		require.NoError(t, loadConfigFrom("", dir))

		o := buildOverrides(newRangeFlags(t), []string{"", "1000"})
		got := newCalculatorForTest(t).ResolveConfig(o)
		assert.Equal(t, "500", got.MinWidth.String())
		assert.Equal(t, "1000", got.MaxWidth.String())
	})
}
