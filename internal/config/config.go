// Package config provides configuration loading and validation for arules.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Defaults applied when a threshold is left at zero.
const (
	DefaultSupport    = 0.5
	DefaultConfidence = 0.75
)

// Input formats.
const (
	FormatARFF   = "arff"
	FormatCSV    = "csv"
	FormatSQLite = "sqlite"
)

var (
	ErrInvalidSupport    = errors.New("config: minimum support must be in (0, 1]")
	ErrInvalidConfidence = errors.New("config: minimum confidence must be in [0, 1]")
	ErrInvalidDelta      = errors.New("config: sweep delta must be in (0, 1] and lower bound in [0, start)")
	ErrMissingInput      = errors.New("config: no input file given")
	ErrUnknownFormat     = errors.New("config: unknown input format")
	ErrMissingTable      = errors.New("config: sqlite input needs a table name")
)

// Config holds every setting of a run. Keys match the viper keys used by
// the commands and the config file.
type Config struct {
	Input      string  `mapstructure:"input"`
	Output     string  `mapstructure:"output"`
	Format     string  `mapstructure:"format"`
	Table      string  `mapstructure:"table"`
	Support    float64 `mapstructure:"support"`
	Confidence float64 `mapstructure:"confidence"`
	Index      bool    `mapstructure:"index"`
	Top        int     `mapstructure:"top"`

	Sweep   SweepConfig   `mapstructure:"sweep"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// SweepConfig controls the support sweep.
type SweepConfig struct {
	Start float64 `mapstructure:"start"`
	Delta float64 `mapstructure:"delta"`
	Lower float64 `mapstructure:"lower"`
}

// LoggingConfig selects the slog level and handler.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Dir returns the arules config directory, respecting XDG_CONFIG_HOME.
// Defaults to ~/.config/arules if XDG_CONFIG_HOME is not set.
func Dir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "arules"), nil
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("support", DefaultSupport)
	v.SetDefault("confidence", DefaultConfidence)
	v.SetDefault("top", 10)
	v.SetDefault("sweep.start", 1.0)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Load unmarshals v into a Config, replacing zero thresholds with their
// defaults and inferring the input format from the file extension when none
// is set.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.Support == 0 {
		cfg.Support = DefaultSupport
	}
	if cfg.Confidence == 0 {
		cfg.Confidence = DefaultConfidence
	}
	if cfg.Sweep.Start == 0 {
		cfg.Sweep.Start = 1.0
	}
	if cfg.Format == "" && cfg.Input != "" {
		cfg.Format = FormatFromPath(cfg.Input)
	}
	return &cfg, nil
}

// FormatFromPath guesses the input format from the file extension. It
// returns "" for unknown extensions.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".arff":
		return FormatARFF
	case ".csv":
		return FormatCSV
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	}
	return ""
}

// Validate checks the settings used by a mining run.
func (c *Config) Validate() error {
	if err := c.validateInput(); err != nil {
		return err
	}
	if c.Support <= 0 || c.Support > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidSupport, c.Support)
	}
	if err := c.validateConfidence(); err != nil {
		return err
	}
	if c.Top < 0 {
		return fmt.Errorf("top must not be negative, got %d", c.Top)
	}
	return nil
}

// ValidateSweep checks the settings used by a support sweep. The sweep
// ignores Support.
func (c *Config) ValidateSweep() error {
	if err := c.validateInput(); err != nil {
		return err
	}
	if err := c.validateConfidence(); err != nil {
		return err
	}

	s := c.Sweep
	if s.Start <= 0 || s.Start > 1 {
		return fmt.Errorf("%w: sweep start %v", ErrInvalidSupport, s.Start)
	}
	if s.Delta <= 0 || s.Delta > 1 || s.Lower < 0 || s.Lower >= s.Start {
		return fmt.Errorf("%w: delta %v lower %v", ErrInvalidDelta, s.Delta, s.Lower)
	}
	return nil
}

// ValidateInput checks only the input settings, for commands that read a
// dataset without mining it.
func (c *Config) ValidateInput() error {
	return c.validateInput()
}

func (c *Config) validateInput() error {
	if c.Input == "" {
		return ErrMissingInput
	}
	switch c.Format {
	case FormatARFF, FormatCSV:
		return nil
	case FormatSQLite:
		if c.Table == "" {
			return ErrMissingTable
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
	}
}

func (c *Config) validateConfidence() error {
	if c.Confidence < 0 || c.Confidence > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidConfidence, c.Confidence)
	}
	return nil
}
