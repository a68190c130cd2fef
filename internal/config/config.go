// Package config loads healthskill settings from defaults, an optional
// YAML file, HEALTHSKILL_* environment variables and command-line flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	DB   DBConfig   `mapstructure:"db"`
	Auth AuthConfig `mapstructure:"auth"`
	Log  LogConfig  `mapstructure:"log"`
}

// DBConfig holds storage configuration.
type DBConfig struct {
	// Path is the SQLite file. Empty means store.DefaultDBPath.
	Path string `mapstructure:"path"`
}

// AuthConfig holds mock-session configuration.
type AuthConfig struct {
	// Delay is the simulated network delay of signup and login.
	Delay time.Duration `mapstructure:"delay"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // text, json
}

// Options controls where Load looks for settings.
type Options struct {
	// File is an explicit config file. When empty, healthskill.yaml is
	// searched for in the working directory and the XDG config dir, and a
	// missing file is not an error.
	File string

	// Flags, when set, overrides keys from the --db and --log-level flags
	// if they were given.
	Flags *pflag.FlagSet
}

// flagKeys maps config keys to command-line flag names.
var flagKeys = map[string]string{
	"db.path":   "db",
	"log.level": "log-level",
}

// Load reads configuration.
func Load(opts Options) (*Config, error) {
	v := viper.New()

	if opts.File != "" {
		v.SetConfigFile(opts.File)
	} else {
		v.SetConfigName("healthskill")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := configDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix("HEALTHSKILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if opts.Flags != nil {
		for key, name := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.File != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults configures default values for all settings.
func setDefaults(v *viper.Viper) {
	v.SetDefault("db.path", "")
	v.SetDefault("auth.delay", "1s")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Auth.Delay < 0 {
		return fmt.Errorf("invalid config: auth.delay must not be negative, got %s", c.Auth.Delay)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid config: unknown log.level %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid config: unknown log.format %q", c.Log.Format)
	}
	return nil
}

// configDir returns $XDG_CONFIG_HOME/healthskill or ~/.config/healthskill.
func configDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "healthskill"), nil
}
