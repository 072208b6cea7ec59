package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/extractor"
	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/history"
)

const (
	BaseConfigFile       = "extrato.toml"
	OverlayConfigPattern = "extrato.%s.toml"

	EnvExtratoEnv      = "EXTRATO_ENV"
	EnvExtratoLogLevel = "EXTRATO_LOG_LEVEL"
	EnvExtratoVersion  = "EXTRATO_VERSION"
)

var serviceEnv = &extractor.Env{
	BaseURL: "EXTRATO_SERVICE_BASE_URL",
	Timeout: "EXTRATO_SERVICE_TIMEOUT",
}

var historyEnv = &history.ConfigEnv{
	Enabled: "EXTRATO_HISTORY_ENABLED",
	Path:    "EXTRATO_HISTORY_PATH",
}

// Config is the root configuration for the extrato client.
type Config struct {
	Service  extractor.Config `toml:"service"`
	History  history.Config   `toml:"history"`
	Client   ClientConfig     `toml:"client"`
	LogLevel string           `toml:"log_level"`
	Version  string           `toml:"version"`
}

// Env returns the EXTRATO_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvExtratoEnv); env != "" {
		return env
	}
	return "local"
}

// SlogLevel returns the configured log level as a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Load reads the base config (if present), applies any environment overlay,
// and finalizes all values. If no extrato.toml exists, defaults and
// environment variables provide all configuration.
func Load() (*Config, error) {
	return LoadFile(BaseConfigFile)
}

// LoadFile behaves like Load using path as the base config file.
func LoadFile(path string) (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(path); err == nil {
		loaded, err := load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if overlay := overlayPath(); overlay != "" {
		loaded, err := load(overlay)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", overlay, err)
		}
		cfg.Merge(loaded)
	}

	if err := cfg.finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Override applies command-line service overrides on top of a loaded
// config and re-validates. Flags outrank both file and environment
// values.
func (c *Config) Override(service *extractor.Config) error {
	c.Service.Merge(service)
	return c.Service.Finalize(nil)
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.LogLevel != "" {
		c.LogLevel = overlay.LogLevel
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Service.Merge(&overlay.Service)
	c.History.Merge(&overlay.History)
	c.Client.Merge(&overlay.Client)
}

func (c *Config) finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Service.Finalize(serviceEnv); err != nil {
		return fmt.Errorf("service: %w", err)
	}
	if err := c.History.Finalize(historyEnv); err != nil {
		return fmt.Errorf("history: %w", err)
	}
	if err := c.Client.Finalize(); err != nil {
		return fmt.Errorf("client: %w", err)
	}
	return nil
}

func (c *Config) loadDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvExtratoLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvExtratoVersion); v != "" {
		c.Version = v
	}
}

func (c *Config) validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath() string {
	if env := os.Getenv(EnvExtratoEnv); env != "" {
		path := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
