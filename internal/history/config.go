package history

import (
	"os"
	"path/filepath"
	"strconv"
)

// Config holds submission record settings.
type Config struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// ConfigEnv maps Config fields to environment variable names.
type ConfigEnv struct {
	Enabled string
	Path    string
}

// Merge overwrites fields from overlay. The boolean always applies;
// the path only when non-zero.
func (c *Config) Merge(overlay *Config) {
	if overlay == nil {
		return
	}

	c.Enabled = overlay.Enabled

	if overlay.Path != "" {
		c.Path = overlay.Path
	}
}

// Finalize applies defaults and environment overrides.
func (c *Config) Finalize(env *ConfigEnv) error {
	c.loadDefaults()

	if env != nil {
		c.loadEnv(env)
	}

	return nil
}

func (c *Config) loadDefaults() {
	if c.Path == "" {
		c.Path = defaultPath()
	}
}

func (c *Config) loadEnv(env *ConfigEnv) {
	if env.Enabled != "" {
		if v := os.Getenv(env.Enabled); v != "" {
			if enabled, err := strconv.ParseBool(v); err == nil {
				c.Enabled = enabled
			}
		}
	}

	if env.Path != "" {
		if v := os.Getenv(env.Path); v != "" {
			c.Path = v
		}
	}
}

func defaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "extrato-history.db"
	}

	return filepath.Join(home, ".extrato", "history.db")
}
