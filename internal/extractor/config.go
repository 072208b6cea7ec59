package extractor

import (
	"fmt"
	"net/url"
	"os"
	"time"
)

const (
	DefaultBaseURL = "http://localhost:8000"
	DefaultTimeout = "2m"
)

// Config holds the connection parameters for the extraction service.
type Config struct {
	BaseURL string `toml:"base_url"`
	Timeout string `toml:"timeout"`

	// UserAgent identifies the client build on outgoing requests. The
	// infrastructure layer fills it in; it is not a file setting.
	UserAgent string `toml:"-"`
}

// Env maps Config fields to environment variable names.
type Env struct {
	BaseURL string
	Timeout string
}

// TimeoutDuration returns the parsed request timeout. A zero duration
// means requests are unbounded except by their context.
func (c *Config) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		d, _ = time.ParseDuration(DefaultTimeout)
	}
	return d
}

// Merge overlays non-zero fields from overlay onto c.
func (c *Config) Merge(overlay *Config) {
	if overlay == nil {
		return
	}

	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}

	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
}

// Finalize applies defaults and environment overrides, then validates
// the result.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()

	if env != nil {
		c.loadEnv(env)
	}

	return c.validate()
}

func (c *Config) loadDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}

	if c.Timeout == "" {
		c.Timeout = DefaultTimeout
	}
}

func (c *Config) loadEnv(env *Env) {
	if v := os.Getenv(env.BaseURL); v != "" {
		c.BaseURL = v
	}

	if v := os.Getenv(env.Timeout); v != "" {
		c.Timeout = v
	}
}

func (c *Config) validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme must be http or https, got %q", ErrInvalidBaseURL, u.Scheme)
	}

	if u.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidBaseURL)
	}

	if d, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeout, err)
	} else if d < 0 {
		return fmt.Errorf("%w: must not be negative", ErrInvalidTimeout)
	}

	return nil
}
