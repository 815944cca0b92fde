// Package config discovers project-level cssclamp configuration.
//
// Starting from a directory, the Explorer walks up towards the stop
// directory and loads the first recognized file:
//
//	package.json              ("css-clamp" key)
//	.css-clamprc              (YAML or JSON)
//	.css-clamprc.{json,yaml,yml,toml}
//	css-clamp.config.{json,yaml,yml,toml}
//
// CSS_CLAMP_* environment variables are layered on top of whatever file
// was found. File lookups are memoized per start directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/yacobolo/cssclamp"
)

// Namespace is the package.json key and file name stem
const Namespace = "css-clamp"

// DefaultEnvPrefix is the prefix of environment overrides
const DefaultEnvPrefix = "CSS_CLAMP_"

// SearchPlaces lists the recognized file names in priority order
var SearchPlaces = []string{
	"package.json",
	"." + Namespace + "rc",
	"." + Namespace + "rc.json",
	"." + Namespace + "rc.yaml",
	"." + Namespace + "rc.yml",
	"." + Namespace + "rc.toml",
	Namespace + ".config.json",
	Namespace + ".config.yaml",
	Namespace + ".config.yml",
	Namespace + ".config.toml",
}

// envKeys maps environment suffixes to config keys
var envKeys = map[string]string{
	"MIN_WIDTH": "minWidth",
	"MAX_WIDTH": "maxWidth",
	"ROOT":      "root",
	"PREFIX":    "prefix",
}

// Result is a loaded configuration
type Result struct {
	Path   string // file the values came from; empty when none was found
	Config cssclamp.Config
	Prefix string
	Scale  []cssclamp.Step
	Values *koanf.Koanf // every loaded key, for settings beyond the calculator's
}

// IsEmpty reports whether neither a file nor the environment supplied anything
func (r *Result) IsEmpty() bool {
	return r.Path == "" &&
		!r.Config.MinWidth.IsSet() && !r.Config.MaxWidth.IsSet() && !r.Config.Root.IsSet() &&
		r.Prefix == "" && len(r.Scale) == 0
}

// Explorer searches for configuration files
type Explorer struct {
	stopDir   string
	envPrefix string
	pattern   string

	mu    sync.Mutex
	cache map[string]*found
}

// found is a cached file lookup
type found struct {
	path string
	k    *koanf.Koanf // nil when no file was found
}

// Option configures an Explorer
type Option func(*Explorer)

// WithStopDir stops the upward search after dir
func WithStopDir(dir string) Option {
	return func(e *Explorer) {
		e.stopDir = dir
	}
}

// WithEnvPrefix changes the environment prefix; "" disables environment overrides
func WithEnvPrefix(prefix string) Option {
	return func(e *Explorer) {
		e.envPrefix = prefix
	}
}

// NewExplorer creates an Explorer that stops at the user's home directory
func NewExplorer(opts ...Option) *Explorer {
	e := &Explorer{
		envPrefix: DefaultEnvPrefix,
		pattern:   "{" + strings.Join(SearchPlaces, ",") + "}",
		cache:     make(map[string]*found),
	}
	if home, err := os.UserHomeDir(); err == nil {
		e.stopDir = home
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.stopDir != "" {
		if abs, err := filepath.Abs(e.stopDir); err == nil {
			e.stopDir = abs
		}
	}
	return e
}

// Search looks for configuration starting at dir. A search that finds no
// file returns a Result with an empty Path, not an error.
func (e *Explorer) Search(dir string) (*Result, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", dir, err)
	}

	f, err := e.lookup(abs)
	if err != nil {
		return nil, err
	}
	return e.build(f)
}

// LoadFile loads an explicit configuration file, skipping discovery
func (e *Explorer) LoadFile(path string) (*Result, error) {
	k, err := loadFile(path)
	if err != nil {
		return nil, err
	}
	if k == nil {
		return nil, fmt.Errorf("%s has no %q key", path, Namespace)
	}
	return e.build(&found{path: path, k: k})
}

// ClearCache forgets memoized lookups
func (e *Explorer) ClearCache() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cache = make(map[string]*found)
}

// Provider returns a cssclamp.ConfigProvider searching from dir
func (e *Explorer) Provider(dir string) cssclamp.ConfigProvider {
	return cssclamp.ConfigProviderFunc(func() (cssclamp.Config, error) {
		result, err := e.Search(dir)
		if err != nil {
			return cssclamp.Config{}, err
		}
		return result.Config, nil
	})
}

// FileProvider returns a cssclamp.ConfigProvider reading path
func (e *Explorer) FileProvider(path string) cssclamp.ConfigProvider {
	return cssclamp.ConfigProviderFunc(func() (cssclamp.Config, error) {
		result, err := e.LoadFile(path)
		if err != nil {
			return cssclamp.Config{}, err
		}
		return result.Config, nil
	})
}

// lookup walks from dir upwards, memoizing the outcome for dir
func (e *Explorer) lookup(dir string) (*found, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if f, ok := e.cache[dir]; ok {
		return f, nil
	}

	for current := dir; ; {
		f, err := e.searchDir(current)
		if err != nil {
			return nil, err
		}
		if f != nil {
			e.cache[dir] = f
			return f, nil
		}

		parent := filepath.Dir(current)
		if current == e.stopDir || parent == current {
			break
		}
		current = parent
	}

	f := &found{}
	e.cache[dir] = f
	return f, nil
}

// searchDir checks one directory for the search places, in priority order
func (e *Explorer) searchDir(dir string) (*found, error) {
	matches, err := doublestar.Glob(os.DirFS(dir), e.pattern)
	if err != nil {
		return nil, fmt.Errorf("match config files in %s: %w", dir, err)
	}
	if len(matches) == 0 {
		return nil, nil
	}

	present := make(map[string]bool, len(matches))
	for _, m := range matches {
		present[m] = true
	}

	for _, name := range SearchPlaces {
		if !present[name] {
			continue
		}
		path := filepath.Join(dir, name)
		k, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		// package.json without our key
		if k == nil {
			continue
		}
		return &found{path: path, k: k}, nil
	}
	return nil, nil
}

// loadFile parses path by extension. It returns nil, nil for a package.json
// that has no Namespace key.
func loadFile(path string) (*koanf.Koanf, error) {
	k := koanf.New(".")

	var parser koanf.Parser = yaml.Parser()
	if filepath.Ext(path) == ".toml" {
		parser = TOMLParser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("loading config file %s: %w", path, err)
	}

	if filepath.Base(path) == "package.json" {
		if !k.Exists(Namespace) {
			return nil, nil
		}
		return k.Cut(Namespace), nil
	}
	return k, nil
}

// build overlays the environment on a lookup and decodes the result
func (e *Explorer) build(f *found) (*Result, error) {
	k := koanf.New(".")
	if f.k != nil {
		if err := k.Merge(f.k); err != nil {
			return nil, fmt.Errorf("merging %s: %w", f.path, err)
		}
	}

	if e.envPrefix != "" {
		prefix := e.envPrefix
		if err := k.Load(env.Provider(prefix, ".", func(s string) string {
			// CSS_CLAMP_MIN_WIDTH -> minWidth
			return envKeys[strings.TrimPrefix(s, prefix)]
		}), nil); err != nil {
			return nil, fmt.Errorf("loading environment variables: %w", err)
		}
	}

	result, err := decode(k)
	if err != nil {
		if f.path != "" {
			return nil, fmt.Errorf("%s: %w", f.path, err)
		}
		return nil, err
	}
	result.Path = f.path
	result.Values = k
	return result, nil
}
