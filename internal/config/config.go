// Package config holds the startup parameters shared by every frontend.
package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDimension   = 100
	DefaultTickDelayMS = 20
	DefaultTheme       = "oled-blue"
	DefaultScale       = 4
	DefaultSplashMS    = 3000
	DefaultSeed        = 42
	DefaultDensity     = 0.3

	// MinDimension is the smallest board that can hold the spaceship stamp.
	MinDimension = 5
	MaxDimension = 1000
)

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("config: invalid value")

// Config represents the startup parameters of the application.
type Config struct {
	Dimension   int     `yaml:"dimension"`
	TickDelayMS int     `yaml:"tick_delay_ms"`
	Theme       string  `yaml:"theme"`
	Scale       int     `yaml:"scale"`
	SplashMS    int     `yaml:"splash_ms"`
	Seed        int64   `yaml:"seed"`
	Density     float64 `yaml:"density"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Dimension:   DefaultDimension,
		TickDelayMS: DefaultTickDelayMS,
		Theme:       DefaultTheme,
		Scale:       DefaultScale,
		SplashMS:    DefaultSplashMS,
		Seed:        DefaultSeed,
		Density:     DefaultDensity,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Dimension, "dimension", c.Dimension, "grid side length in cells")
	fs.IntVar(&c.TickDelayMS, "tick-delay", c.TickDelayMS, "pause between generations in milliseconds")
	fs.StringVar(&c.Theme, "theme", c.Theme, "display color scheme")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.SplashMS, "splash", c.SplashMS, "title screen duration in milliseconds")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the randomize key")
	fs.Float64Var(&c.Density, "density", c.Density, "live cell fraction for the randomize key")
}

// TickDelay returns the tick delay as a duration.
func (c *Config) TickDelay() time.Duration {
	return time.Duration(c.TickDelayMS) * time.Millisecond
}

// SplashHold returns the title screen duration.
func (c *Config) SplashHold() time.Duration {
	return time.Duration(c.SplashMS) * time.Millisecond
}

// Validate reports the first out-of-range setting.
func (c *Config) Validate() error {
	switch {
	case c.Dimension < MinDimension || c.Dimension > MaxDimension:
		return errors.Wrapf(ErrInvalid, "dimension %d not in [%d,%d]", c.Dimension, MinDimension, MaxDimension)
	case c.TickDelayMS < 1 || c.TickDelayMS > 1000:
		return errors.Wrapf(ErrInvalid, "tick_delay_ms %d not in [1,1000]", c.TickDelayMS)
	case c.Scale < 1:
		return errors.Wrapf(ErrInvalid, "scale %d must be positive", c.Scale)
	case c.SplashMS < 0:
		return errors.Wrapf(ErrInvalid, "splash_ms %d must not be negative", c.SplashMS)
	case c.Density < 0 || c.Density > 1:
		return errors.Wrapf(ErrInvalid, "density %g not in [0,1]", c.Density)
	case !KnownTheme(c.Theme):
		return errors.Wrapf(ErrInvalid, "unknown theme %q", c.Theme)
	}
	return nil
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Config, error) {
	cfg := NewConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[Load] failed to read file: %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "[Load] failed to unmarshal data from file: %s", path)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "[Save] failed to marshal config")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "[Save] failed to write file: %s", path)
	}
	return nil
}

// MergeFlags returns base with every flag that was set explicitly on fs taken
// from c. c must be the Config that was bound to fs.
func (c *Config) MergeFlags(base *Config, fs *pflag.FlagSet) *Config {
	out := *base
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "dimension":
			out.Dimension = c.Dimension
		case "tick-delay":
			out.TickDelayMS = c.TickDelayMS
		case "theme":
			out.Theme = c.Theme
		case "scale":
			out.Scale = c.Scale
		case "splash":
			out.SplashMS = c.SplashMS
		case "seed":
			out.Seed = c.Seed
		case "density":
			out.Density = c.Density
		}
	})
	return &out
}
