// Package config loads application configuration with Viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Precedence values for snapshot reconciliation on login.
const (
	PrecedenceSnapshot = "snapshot"
	PrecedenceDatabase = "database"
)

// Config holds all application configuration.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Database DatabaseConfig `mapstructure:"database"`
	Snapshot SnapshotConfig `mapstructure:"snapshot"`
}

// AppConfig contains application-level settings.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	LogLevel    string `mapstructure:"log_level"`
	LogFormat   string `mapstructure:"log_format"`
	LogFile     string `mapstructure:"log_file"`
}

// DatabaseConfig contains sqlite settings.
type DatabaseConfig struct {
	Path         string `mapstructure:"path"`
	ResetOnStart bool   `mapstructure:"reset_on_start"`
	Seed         bool   `mapstructure:"seed"`
	Debug        bool   `mapstructure:"debug"`
}

// SnapshotConfig controls the user_data.json mirror.
type SnapshotConfig struct {
	Dir string `mapstructure:"dir"`
	// Precedence decides which side wins when a snapshot exists at login:
	// "snapshot" (the file overwrites the user row, the resume-last-state
	// behavior) or "database" (the row wins, the file is refreshed).
	Precedence string `mapstructure:"precedence"`
}

// Load reads configuration from an optional config file and SAVORLY_*
// environment variables, applying defaults for everything else.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("app.name", "savorly")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.log_format", "console")
	v.SetDefault("app.log_file", "")
	v.SetDefault("database.path", "savorly.db")
	v.SetDefault("database.reset_on_start", false)
	v.SetDefault("database.seed", true)
	v.SetDefault("database.debug", false)
	v.SetDefault("snapshot.dir", ".")
	v.SetDefault("snapshot.precedence", PrecedenceSnapshot)

	v.SetEnvPrefix("SAVORLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %q: %w", configPath, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
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

// Validate checks enumerated values.
func (c *Config) Validate() error {
	switch c.Snapshot.Precedence {
	case PrecedenceSnapshot, PrecedenceDatabase:
	default:
		return fmt.Errorf("snapshot.precedence must be %q or %q, got %q",
			PrecedenceSnapshot, PrecedenceDatabase, c.Snapshot.Precedence)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path must not be empty")
	}
	return nil
}

// IsDevelopment reports whether the app runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}
