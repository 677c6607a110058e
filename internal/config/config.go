// Package config reads the settings of the rotkin tool from the
// environment. All variables carry the prefix ROTKIN_.
package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/vdobler/rotkin"
)

// Prefix of all environment variables.
const Prefix = "ROTKIN"

type Config struct {
	// LogMode is dev, prod or quiet.
	LogMode string `envconfig:"LOG_MODE" default:"dev"`

	// Theme is a YAML file overriding the default figure theme.
	Theme string `envconfig:"THEME"`

	// Format, Width and Height override the theme's image format and
	// figure size in inches if set.
	Format string  `envconfig:"FORMAT"`
	Width  float64 `envconfig:"WIDTH"`
	Height float64 `envconfig:"HEIGHT"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var formats = []string{"eps", "jpg", "jpeg", "pdf", "png", "svg", "tif", "tiff"}

func (c *Config) validate() error {
	switch strings.ToLower(c.LogMode) {
	case "dev", "prod", "production", "quiet":
	default:
		return fmt.Errorf("%s_LOG_MODE: unknown mode %q", Prefix, c.LogMode)
	}
	if c.Format != "" {
		ok := false
		for _, f := range formats {
			ok = ok || strings.EqualFold(c.Format, f)
		}
		if !ok {
			return fmt.Errorf("%s_FORMAT: unsupported image format %q", Prefix, c.Format)
		}
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("%s_WIDTH, %s_HEIGHT: negative figure size", Prefix, Prefix)
	}
	return nil
}

// FigureTheme returns the figure theme: the default theme or the theme
// file, with the format and size overrides applied.
func (c *Config) FigureTheme() (rotkin.Theme, error) {
	theme := rotkin.DefaultTheme
	if c.Theme != "" {
		var err error
		if theme, err = rotkin.LoadTheme(c.Theme); err != nil {
			return theme, err
		}
	}
	if c.Format != "" {
		theme.Format = strings.ToLower(c.Format)
	}
	if c.Width > 0 {
		theme.Width = c.Width
	}
	if c.Height > 0 {
		theme.Height = c.Height
	}
	return theme, nil
}
