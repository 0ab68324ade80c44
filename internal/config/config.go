package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// ErrNoConfig is returned by FindConfig when no elmdoc.yaml exists in the
// directory or any of its parents.
var ErrNoConfig = errors.New("no elmdoc.yaml found")

// Config represents elmdoc.yaml.
type Config struct {
	// SourceDirectories are the roots searched for project modules
	// (e.g. "src"). Defaults to elm.json's source-directories, then "src".
	SourceDirectories []string `yaml:"source_directories,omitempty"`

	// PackageDirectories are unpacked package roots, for example
	// ~/.elm/0.19.1/packages/elm/parser/1.1.0. Modules are read from
	// their src/ subdirectory.
	PackageDirectories []string `yaml:"package_directories,omitempty"`

	// Index is the path of the SQLite export index. Empty disables it.
	Index string `yaml:"index,omitempty"`

	Log LogConfig `yaml:"log"`

	// Dir is the directory relative paths are resolved against.
	Dir string `yaml:"-"`
}

// LogConfig selects the logger encoding and level.
type LogConfig struct {
	JSON  bool   `yaml:"json,omitempty"`
	Level string `yaml:"level,omitempty"`
}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// LoadConfig reads and parses an elmdoc.yaml file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses elmdoc.yaml content from bytes.
// The path argument locates relative directories and labels errors.
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	cfg.Dir = filepath.Dir(path)
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	cfg.setDefaults()
	return &cfg, nil
}

// FindConfig searches for elmdoc.yaml starting from dir and walking up
// to parent directories. It returns ErrNoConfig when none is found.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrap(err, "resolving directory")
	}

	for {
		for _, name := range []string{ConfigFileName, ConfigFileNameAlt} {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoConfig
		}
		dir = parent
	}
}

// Load finds and loads the configuration for dir. Without an elmdoc.yaml
// it falls back to a default configuration rooted at dir.
func Load(dir string) (*Config, error) {
	path, err := FindConfig(dir)
	if errors.Is(err, ErrNoConfig) {
		cfg := &Config{Dir: dir}
		cfg.setDefaults()
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	return LoadConfig(path)
}

// elmJSON is the subset of elm.json this tool reads.
type elmJSON struct {
	Type              string   `json:"type"`
	SourceDirectories []string `json:"source-directories"`
}

// ReadElmJSON returns the source directories declared in dir/elm.json.
// Packages always keep their modules under src.
func ReadElmJSON(dir string) ([]string, error) {
	path := filepath.Join(dir, ElmJSONFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	var manifest elmJSON
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	if manifest.Type == "package" {
		return []string{"src"}, nil
	}
	return manifest.SourceDirectories, nil
}

// SourceRoots returns SourceDirectories resolved against Dir.
func (c *Config) SourceRoots() []string {
	return c.resolveAll(c.SourceDirectories)
}

// PackageRoots returns PackageDirectories resolved against Dir.
func (c *Config) PackageRoots() []string {
	return c.resolveAll(c.PackageDirectories)
}

// IndexPath returns the export index path resolved against Dir, or "".
func (c *Config) IndexPath() string {
	if c.Index == "" {
		return ""
	}
	return c.resolve(c.Index)
}

func (c *Config) resolveAll(dirs []string) []string {
	out := make([]string, 0, len(dirs))
	for _, d := range dirs {
		out = append(out, c.resolve(d))
	}
	return out
}

func (c *Config) resolve(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	if filepath.IsAbs(p) || c.Dir == "" {
		return p
	}
	return filepath.Join(c.Dir, p)
}

// validate checks the configuration for semantic errors.
func (c *Config) validate(path string) error {
	for i, d := range c.SourceDirectories {
		if strings.TrimSpace(d) == "" {
			return errors.Newf("%s: source_directories[%d] is empty", path, i)
		}
	}
	for i, d := range c.PackageDirectories {
		if strings.TrimSpace(d) == "" {
			return errors.Newf("%s: package_directories[%d] is empty", path, i)
		}
	}
	if c.Log.Level != "" && !logLevels[c.Log.Level] {
		return errors.WithHint(
			errors.Newf("%s: unknown log level %q", path, c.Log.Level),
			"use one of debug, info, warn, error",
		)
	}
	return nil
}

func (c *Config) setDefaults() {
	if len(c.SourceDirectories) == 0 {
		if dirs, err := ReadElmJSON(c.Dir); err == nil && len(dirs) > 0 {
			c.SourceDirectories = dirs
		} else {
			c.SourceDirectories = []string{"src"}
		}
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}
