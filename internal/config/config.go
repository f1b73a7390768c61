// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	Output OutputConfig `toml:"output"`
	UI     UIConfig     `toml:"ui"`
	Server ServerConfig `toml:"server"`
	Log    LogConfig    `toml:"log"`
}

// OutputConfig controls how extracted fields are printed.
type OutputConfig struct {
	DateFormat string `toml:"date_format"` // Go layout, e.g. "02/01/2006"
}

// UIConfig holds CLI and TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte", "light"
	Color bool   `toml:"color"` // colored CLI output
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Addr            string `toml:"addr"`               // e.g. ":8080"
	Mode            string `toml:"mode"`               // gin mode: "debug", "release", "test"
	RateLimitPerMin int    `toml:"rate_limit_per_min"` // per client, 0 disables
	CacheSize       int    `toml:"cache_size"`         // cached results, 0 disables
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level     string `toml:"level"`      // "debug", "info", "warn", "error"
	DebugPath string `toml:"debug_path"` // file used by --debug
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			DateFormat: "02/01/2006",
		},
		UI: UIConfig{
			Theme: "mocha",
			Color: true,
		},
		Server: ServerConfig{
			Addr:            ":8080",
			Mode:            "release",
			RateLimitPerMin: 60,
			CacheSize:       1024,
		},
		Log: LogConfig{
			Level:     "info",
			DebugPath: filepath.Join(os.TempDir(), "afazeres-debug.log"),
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "afazeres", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Log.DebugPath = expandPath(cfg.Log.DebugPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("AFAZERES_DATE_FORMAT"); v != "" {
		cfg.Output.DateFormat = v
	}

	if v := os.Getenv("AFAZERES_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("AFAZERES_UI_COLOR"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("AFAZERES_UI_COLOR: %w", err)
		}
		cfg.UI.Color = b
	}

	if v := os.Getenv("AFAZERES_SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("AFAZERES_SERVER_MODE"); v != "" {
		cfg.Server.Mode = v
	}
	if v := os.Getenv("AFAZERES_RATE_LIMIT_PER_MIN"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("AFAZERES_RATE_LIMIT_PER_MIN: %w", err)
		}
		cfg.Server.RateLimitPerMin = n
	}
	if v := os.Getenv("AFAZERES_CACHE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("AFAZERES_CACHE_SIZE: %w", err)
		}
		cfg.Server.CacheSize = n
	}

	if v := os.Getenv("AFAZERES_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("AFAZERES_DEBUG_PATH"); v != "" {
		cfg.Log.DebugPath = v
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := validateDateFormat(c.Output.DateFormat); err != nil {
		return err
	}
	if !isValidTheme(c.UI.Theme) {
		return fmt.Errorf("invalid theme: %s", c.UI.Theme)
	}
	if c.Server.Addr == "" {
		return errors.New("server addr must be set")
	}
	if !validModes[c.Server.Mode] {
		return fmt.Errorf("invalid server mode: %s", c.Server.Mode)
	}
	if c.Server.RateLimitPerMin < 0 {
		return errors.New("rate_limit_per_min must not be negative")
	}
	if c.Server.CacheSize < 0 {
		return errors.New("cache_size must not be negative")
	}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}
	return nil
}

// validateDateFormat checks that layout tells day, month and year apart.
func validateDateFormat(layout string) error {
	if layout == "" {
		return errors.New("date_format must be set")
	}
	base := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	for _, other := range []time.Time{base.AddDate(0, 0, 1), base.AddDate(0, 1, 0), base.AddDate(1, 0, 0)} {
		if other.Format(layout) == base.Format(layout) {
			return fmt.Errorf("date_format must include day, month and year, got %q", layout)
		}
	}
	return nil
}

// themes mirrors the embedded TUI themes.
var themes = []string{"mocha", "macchiato", "frappe", "latte", "light"}

func isValidTheme(name string) bool {
	name = strings.ToLower(name)
	for _, t := range themes {
		if t == name {
			return true
		}
	}
	return false
}

var validModes = map[string]bool{
	"debug":   true,
	"release": true,
	"test":    true,
}

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
