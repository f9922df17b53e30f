package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix is the prefix for all environment variables read by Load,
// e.g. TOOLDB_DATABASE_URL maps to database.url.
const envPrefix = "TOOLDB"

// Load reads configuration from environment variables and returns a populated
// Config struct, or an error if loading or validation fails.
//
// Settings use the TOOLDB_ prefix with underscores separating nested keys
// (TOOLDB_SERVER_LOG_LEVEL, TOOLDB_DATABASE_URL). A bare DATABASE_URL is also
// honored as a fallback for the database URL, matching the convention the
// integration test harness uses.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.log_level", "info")

	// Environment variables take precedence over defaults.
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind explicitly so nested keys without defaults are still looked up.
	// The database URL additionally falls back to a bare DATABASE_URL for
	// compatibility with the test harness and common hosting environments.
	if err := v.BindEnv("server.log_level"); err != nil {
		return nil, fmt.Errorf("failed to bind server.log_level: %w", err)
	}
	if err := v.BindEnv("database.url", "TOOLDB_DATABASE_URL", "DATABASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind database.url: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate checks the loaded configuration against the struct-level
// validation tags and returns a descriptive error on failure.
func validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
