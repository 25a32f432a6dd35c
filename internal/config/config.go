// Package config loads optional on-disk defaults for the CLI.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/bukzor/bukzor-color/internal/format"
)

const fileName = "bukzor-color.yaml"

// Config holds user defaults applied beneath command-line flags.
// Pointer fields distinguish "unset" from an explicit zero value.
type Config struct {
	To               string `yaml:"to"`
	Lowercase        *bool  `yaml:"lowercase"`
	IncludeAlpha     string `yaml:"include_alpha"`
	PercentPrecision *int   `yaml:"percent_precision"`
}

// Load reads the config file at path, or searches the standard
// locations when path is empty. A missing file yields a nil config and
// no error; an unreadable or invalid file is an error.
func Load(path string) (*Config, error) {
	if path != "" {
		return loadFile(path)
	}
	for _, candidate := range searchPaths() {
		cfg, err := loadFile(candidate)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return cfg, err
	}
	return nil, nil
}

// searchPaths lists config locations in priority order: current
// directory first, then the user config directory.
func searchPaths() []string {
	paths := []string{fileName}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "bukzor-color", fileName))
	}
	return paths
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.To != "" {
		if _, err := format.ParseFormat(c.To); err != nil {
			return err
		}
	}
	if c.IncludeAlpha != "" {
		if _, err := format.ParseAlphaPolicy(c.IncludeAlpha); err != nil {
			return err
		}
	}
	if c.PercentPrecision != nil && *c.PercentPrecision < 0 {
		return fmt.Errorf("percent_precision must be >= 0, got %d", *c.PercentPrecision)
	}
	return nil
}

// Options overlays the config onto the default rendering options.
// A nil receiver returns the defaults unchanged.
func (c *Config) Options() format.Options {
	opts := format.DefaultOptions()
	if c == nil {
		return opts
	}
	if c.Lowercase != nil {
		opts.Lowercase = *c.Lowercase
	}
	if c.IncludeAlpha != "" {
		// validated at load time
		policy, _ := format.ParseAlphaPolicy(c.IncludeAlpha)
		opts.IncludeAlpha = policy
	}
	if c.PercentPrecision != nil {
		opts.PercentPrecision = *c.PercentPrecision
	}
	return opts
}

// Target returns the configured default output format name, or the
// given fallback. A nil receiver returns the fallback.
func (c *Config) Target(fallback string) string {
	if c == nil || c.To == "" {
		return fallback
	}
	return c.To
}
