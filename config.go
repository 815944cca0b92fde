package cssclamp

// Built-in defaults, all in px
const (
	DefaultRoot     = 16
	DefaultMinWidth = 500
	DefaultMaxWidth = 1920
)

// Config describes the viewport range and rem base. Unset fields are absent
// and keep the value from the layer below when merged.
type Config struct {
	MinWidth Size // viewport width where the minimum size applies
	MaxWidth Size // viewport width where the maximum size applies
	Root     Size // px size of 1rem
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() Config {
	return Config{
		MinWidth: Number(DefaultMinWidth),
		MaxWidth: Number(DefaultMaxWidth),
		Root:     Number(DefaultRoot),
	}
}

// Merge overlays the set fields of other on top of c
func (c Config) Merge(other Config) Config {
	if other.MinWidth.IsSet() {
		c.MinWidth = other.MinWidth
	}
	if other.MaxWidth.IsSet() {
		c.MaxWidth = other.MaxWidth
	}
	if other.Root.IsSet() {
		c.Root = other.Root
	}
	return c
}

// ConfigProvider supplies project-level configuration. A provider that finds
// nothing returns an empty Config and a nil error.
type ConfigProvider interface {
	LoadConfig() (Config, error)
}

// ConfigProviderFunc adapts a function to ConfigProvider
type ConfigProviderFunc func() (Config, error)

// LoadConfig calls f
func (f ConfigProviderFunc) LoadConfig() (Config, error) {
	return f()
}

// Overrides are call-site settings layered over the provider's config.
// Build one with ConfigOverrides or Positional; nil means no overrides.
type Overrides interface {
	apply(Config) Config
}

type configOverrides Config

func (o configOverrides) apply(c Config) Config {
	return c.Merge(Config(o))
}

// ConfigOverrides overrides every field that is set in c, including
// numeric zero.
func ConfigOverrides(c Config) Overrides {
	return configOverrides(c)
}

type positionalOverrides struct {
	minWidth, maxWidth, root Size
}

func (o positionalOverrides) apply(c Config) Config {
	if !o.minWidth.IsZero() {
		c.MinWidth = o.minWidth
	}
	if !o.maxWidth.IsZero() {
		c.MaxWidth = o.maxWidth
	}
	if !o.root.IsZero() {
		c.Root = o.root
	}
	return c
}

// Positional mirrors the minWidth, maxWidth, root argument form. Unset,
// zero and empty values are skipped, so Positional(Number(100), Size{}, Size{})
// only moves the lower breakpoint.
func Positional(minWidth, maxWidth, root Size) Overrides {
	return positionalOverrides{minWidth: minWidth, maxWidth: maxWidth, root: root}
}
