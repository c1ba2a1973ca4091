// Package config handles loading and validation of formatter configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sgaunet/durfmt/pkg/durationfmt"
	"github.com/sgaunet/durfmt/pkg/units"
	"gopkg.in/yaml.v3"
)

var (
	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrInvalidUnit is returned when a unit name in the file is not known.
	ErrInvalidUnit = errors.New("invalid unit in configuration")

	// ErrInvalidSuppress is returned when a zero suppression mode is not known.
	ErrInvalidSuppress = errors.New("invalid zero suppression mode")

	// ErrNegativeMaxUnits is returned when max_units is negative.
	ErrNegativeMaxUnits = errors.New("max_units must not be negative")
)

// Config is the content of a durfmt configuration file. Every field is
// optional and overrides the selected preset.
type Config struct {
	Preset               string            `yaml:"preset"`
	Minimum              string            `yaml:"minimum"`
	Maximum              string            `yaml:"maximum"`
	Suppress             []string          `yaml:"suppress"`
	MaxUnits             *int              `yaml:"max_units"`
	Round                *bool             `yaml:"round"`
	Separator            *string           `yaml:"separator"`
	ValueSymbolSeparator *string           `yaml:"value_symbol_separator"`
	Format               string            `yaml:"format"`
	Formats              map[string]string `yaml:"formats"`
	Symbols              map[string]Symbol `yaml:"symbols"`
}

// Symbol is a unit symbol, optionally with a plural form.
type Symbol struct {
	Singular string `yaml:"singular"`
	Plural   string `yaml:"plural"`
}

// UnmarshalYAML accepts either a plain string or a singular/plural mapping.
func (s *Symbol) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		s.Singular = value.Value
		return nil
	}
	type plain Symbol
	return value.Decode((*plain)(s))
}

// DefaultPath returns the location of the user's configuration file.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "durfmt", "config.yml"), nil
}

// Load reads, parses and validates the configuration file at path.
func Load(path string) (*Config, error) {
	// #nosec G304 - the path is chosen by the user
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates configuration data.
func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate checks every unit name, suppression mode and limit.
func (c *Config) Validate() error {
	if c.Preset != "" {
		if _, err := durationfmt.Preset(c.Preset); err != nil {
			return err
		}
	}
	for _, name := range []string{c.Minimum, c.Maximum} {
		if name == "" {
			continue
		}
		if _, err := units.Parse(name); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidUnit, name)
		}
	}
	for name := range c.Formats {
		if _, err := units.Parse(name); err != nil {
			return fmt.Errorf("%w: formats.%s", ErrInvalidUnit, name)
		}
	}
	for name := range c.Symbols {
		if _, err := units.Parse(name); err != nil {
			return fmt.Errorf("%w: symbols.%s", ErrInvalidUnit, name)
		}
	}
	if _, err := durationfmt.ParseSuppress(strings.Join(c.Suppress, ",")); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSuppress, err)
	}
	if c.MaxUnits != nil && *c.MaxUnits < 0 {
		return ErrNegativeMaxUnits
	}
	return nil
}

// Apply overlays the file's settings on base. The file's preset, when set,
// replaces base entirely before the other fields are applied.
func (c *Config) Apply(base durationfmt.Config) (durationfmt.Config, error) {
	cfg := base
	if c.Preset != "" {
		p, err := durationfmt.Preset(c.Preset)
		if err != nil {
			return base, err
		}
		cfg = p
	}

	if c.Minimum != "" {
		u, err := units.Parse(c.Minimum)
		if err != nil {
			return base, fmt.Errorf("%w: %s", ErrInvalidUnit, c.Minimum)
		}
		cfg = cfg.WithMinimum(u)
	}
	if c.Maximum != "" {
		u, err := units.Parse(c.Maximum)
		if err != nil {
			return base, fmt.Errorf("%w: %s", ErrInvalidUnit, c.Maximum)
		}
		cfg = cfg.WithMaximum(u)
	}
	if c.Suppress != nil {
		s, err := durationfmt.ParseSuppress(strings.Join(c.Suppress, ","))
		if err != nil {
			return base, fmt.Errorf("%w: %w", ErrInvalidSuppress, err)
		}
		cfg = cfg.WithSuppress(s)
	}
	if c.MaxUnits != nil {
		cfg = cfg.WithMaxUnits(*c.MaxUnits)
	}
	if c.Round != nil {
		cfg = cfg.WithRound(*c.Round)
	}
	if c.Separator != nil {
		cfg = cfg.WithSeparator(*c.Separator)
	}
	if c.ValueSymbolSeparator != nil {
		cfg = cfg.WithValueSymbolSeparator(*c.ValueSymbolSeparator)
	}
	if c.Format != "" {
		cfg = cfg.WithFormatAll(c.Format)
	}
	for name, format := range c.Formats {
		u, err := units.Parse(name)
		if err != nil {
			return base, fmt.Errorf("%w: formats.%s", ErrInvalidUnit, name)
		}
		cfg = cfg.WithFormat(u, format)
	}
	for name, symbol := range c.Symbols {
		u, err := units.Parse(name)
		if err != nil {
			return base, fmt.Errorf("%w: symbols.%s", ErrInvalidUnit, name)
		}
		cfg = cfg.WithSymbolChoice(u, symbol.Singular, symbol.Plural)
	}

	return cfg, nil
}
