// Package config loads application settings from defaults, an optional TOML
// file and CHARGE_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"charge-calculator/internal/access"
	"charge-calculator/internal/logger"
	"charge-calculator/internal/storage"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// FileName is the config file looked up in the per-user config directory
const FileName = "config.toml"

// Config holds every tunable of the application
type Config struct {
	PIN          string        `toml:"pin" env:"PIN"`
	MaxAttempts  int           `toml:"max_attempts" env:"MAX_ATTEMPTS"`
	LockSeconds  int           `toml:"lock_seconds" env:"LOCK_SECONDS"`
	TickInterval time.Duration `toml:"tick_interval" env:"TICK_INTERVAL"`
	DataDir      string        `toml:"data_dir" env:"DATA_DIR"`
	LogLevel     string        `toml:"log_level" env:"LOG_LEVEL"`
	JSONLogs     bool          `toml:"json_logs" env:"JSON_LOGS"`
}

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "CHARGE_"

// Default returns the built-in configuration
func Default() Config {
	return Config{
		PIN:          access.DefaultPIN,
		MaxAttempts:  access.DefaultMaxAttempts,
		LockSeconds:  int(access.DefaultLockDuration / time.Second),
		TickInterval: access.DefaultTickInterval,
		LogLevel:     "info",
	}
}

// DefaultPath returns the config file location in the user's config dir
func DefaultPath() (string, error) {
	dir, err := storage.DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Load builds the configuration. An empty path means DefaultPath; a missing
// file is not an error. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}

	if err := cfg.loadFile(path); err != nil {
		return Config{}, err
	}
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if _, err := toml.DecodeFile(path, c); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

// ParseEnv applies CHARGE_* environment variables on top of target
func ParseEnv(target *Config) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks every field
func (c Config) Validate() error {
	if len(c.PIN) != access.PINLength {
		return NewValidationError("pin", c.PIN, fmt.Sprintf("must be %d digits", access.PINLength))
	}
	for _, r := range c.PIN {
		if r < '0' || r > '9' {
			return NewValidationError("pin", c.PIN, "must contain only digits 0-9")
		}
	}
	if c.MaxAttempts < 1 {
		return NewValidationError("max_attempts", c.MaxAttempts, "must be at least 1")
	}
	if c.LockSeconds < 1 {
		return NewValidationError("lock_seconds", c.LockSeconds, "must be at least 1")
	}
	if c.TickInterval <= 0 {
		return NewValidationError("tick_interval", c.TickInterval, "must be positive")
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return NewValidationError("log_level", c.LogLevel, "must be debug, info, warn or error")
	}
	return nil
}

// GateOptions converts the config into access gate options
func (c Config) GateOptions() access.Options {
	return access.Options{
		PIN:          c.PIN,
		MaxAttempts:  c.MaxAttempts,
		LockDuration: time.Duration(c.LockSeconds) * time.Second,
		Clock:        access.SystemClock{},
	}
}

// ResolveDataDir returns DataDir, or the per-user default when it is empty
func (c Config) ResolveDataDir() (string, error) {
	if c.DataDir != "" {
		return c.DataDir, nil
	}
	return storage.DefaultDir()
}

// ValidationError represents an invalid configuration value
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// Error returns the error message
func (ve *ValidationError) Error() string {
	return fmt.Sprintf("invalid config value for '%s' (%v): %s", ve.Field, ve.Value, ve.Message)
}
