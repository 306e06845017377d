// Package config loads linter configuration and resolves it against
// the rule registry.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultFileNames are probed in order when discovering configuration.
var DefaultFileNames = []string{"jstyle.toml", "jstyle.json"}

// RuleConfig is the per-rule section of a config file. Unset fields
// fall back to the rule's defaults; a nil Enabled means "keep".
type RuleConfig struct {
	Enabled  *bool          `toml:"enabled" json:"enabled,omitempty"`
	Severity string         `toml:"severity" json:"severity,omitempty"`
	Options  map[string]any `toml:"options" json:"options,omitempty"`
}

// Override applies extra rule settings to files matching any of the
// glob patterns.
type Override struct {
	Files []string              `toml:"files" json:"files"`
	Rules map[string]RuleConfig `toml:"rules" json:"rules"`
}

// File is the raw on-disk configuration.
type File struct {
	MaxViolations int                   `toml:"max-violations" json:"max-violations,omitempty"`
	Ignore        []string              `toml:"ignore" json:"ignore,omitempty"`
	Rules         map[string]RuleConfig `toml:"rules" json:"rules,omitempty"`
	Overrides     []Override            `toml:"overrides" json:"overrides,omitempty"`

	// Path is where the file was loaded from, empty for defaults.
	Path string `toml:"-" json:"-"`
}

// Default returns an empty configuration, meaning registry defaults
// apply unchanged.
func Default() *File {
	return &File{}
}

// Load reads a config file, picking the decoder from the extension.
func Load(path string) (*File, error) {
	var cfg File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		meta, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("parse %s: unknown key %q", path, undecoded[0].String())
		}
	case ".json":
		data, err := os.ReadFile(path) // #nosec G304 -- path comes from the user
		if err != nil {
			return nil, err
		}
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q (want .toml or .json)", filepath.Ext(path))
	}
	cfg.Path = path
	return &cfg, nil
}

// Find walks from dir toward the filesystem root looking for a config
// file. It returns os.ErrNotExist when none is found.
func Find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		for _, name := range DefaultFileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no config found: %w", os.ErrNotExist)
		}
		dir = parent
	}
}

// Discover loads the nearest config above dir, or the defaults when
// there is none.
func Discover(dir string) (*File, error) {
	path, err := Find(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	return Load(path)
}
