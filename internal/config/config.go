// Package config loads eva.yaml: the small set of knobs that tune an
// Evaluator before a program runs (its own max call depth) and seed extra
// names into the global environment alongside VERSION/null/true/false.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// reservedGlobalNames are the names the global seeding component (C5)
// already defines; a config that tries to redefine one of them is
// rejected at load time rather than silently shadowing it.
var reservedGlobalNames = map[string]bool{
	"VERSION": true,
	"null":    true,
	"true":    true,
	"false":   true,
}

// Config is the top-level eva.yaml document.
type Config struct {
	// MaxCallDepth overrides the evaluator's default recursion guard when
	// positive. Zero means "use the evaluator's default".
	MaxCallDepth int `yaml:"max_call_depth,omitempty"`

	// Globals are extra bindings defined in the root environment before
	// any program runs. Values must be int64, string, or bool.
	Globals map[string]any `yaml:"globals,omitempty"`
}

// LoadConfig reads and parses path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses eva.yaml content from bytes. path is used only for
// error messages.
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate(path string) error {
	if c.MaxCallDepth < 0 {
		return fmt.Errorf("%s: max_call_depth must not be negative", path)
	}
	for name, v := range c.Globals {
		if reservedGlobalNames[name] {
			return fmt.Errorf("%s: globals.%s: shadows a predefined global", path, name)
		}
		switch v.(type) {
		case int, int64, string, bool:
		default:
			return fmt.Errorf("%s: globals.%s: unsupported value type %T", path, name, v)
		}
	}
	return nil
}

// FindConfig searches for eva.yaml starting from dir and walking up to
// parent directories, the way .gitignore or go.mod is discovered. Returns
// empty string and nil error if nothing is found.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		for _, name := range []string{"eva.yaml", "eva.yml"} {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
