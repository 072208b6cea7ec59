package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	EnvClientSkipPreflight = "EXTRATO_CLIENT_SKIP_PREFLIGHT"
	EnvClientColor         = "EXTRATO_CLIENT_COLOR"
)

// ClientConfig holds presentation-side behavior settings.
type ClientConfig struct {
	// SkipPreflight disables the local readability check run on the
	// document before it is submitted.
	SkipPreflight bool `toml:"skip_preflight"`

	// Color controls syntax coloring of JSON output: auto, always, or
	// never.
	Color string `toml:"color"`
}

// Finalize applies defaults, environment variable overrides, and
// validation.
func (c *ClientConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites fields from overlay. The boolean always applies;
// color only when non-zero.
func (c *ClientConfig) Merge(overlay *ClientConfig) {
	c.SkipPreflight = overlay.SkipPreflight

	if overlay.Color != "" {
		c.Color = overlay.Color
	}
}

func (c *ClientConfig) loadDefaults() {
	if c.Color == "" {
		c.Color = "auto"
	}
}

func (c *ClientConfig) loadEnv() {
	if v := os.Getenv(EnvClientSkipPreflight); v != "" {
		if skip, err := strconv.ParseBool(v); err == nil {
			c.SkipPreflight = skip
		}
	}

	if v := os.Getenv(EnvClientColor); v != "" {
		c.Color = v
	}
}

func (c *ClientConfig) validate() error {
	switch strings.ToLower(c.Color) {
	case "auto", "always", "never":
		return nil
	default:
		return fmt.Errorf("invalid color mode %q", c.Color)
	}
}
