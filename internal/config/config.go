// Package config provides application configuration loading and validation.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"

	"fxdashboard/internal/trend"
)

// Config holds the complete application configuration.
type Config struct {
	Server      ServerConfig
	Frankfurter FrankfurterConfig `mapstructure:"frankfurter"`
	Trend       TrendConfig
	Log         LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port                 int  `mapstructure:"port"`
	ServeSwagger         bool `mapstructure:"serve_swagger"`
	ReadHeaderTimeoutSec int  `mapstructure:"read_header_timeout_sec"`
	WriteTimeoutSec      int  `mapstructure:"write_timeout_sec"`
	ShutdownTimeoutSec   int  `mapstructure:"shutdown_timeout_sec"`
	// RateLimit is a per-client limit on /api routes in limiter format ("120-M");
	// empty disables it.
	RateLimit string `mapstructure:"rate_limit"`
	// CORSAllowedOrigins applies to /api routes; empty disables CORS headers.
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
	ServeMetrics       bool     `mapstructure:"serve_metrics"`
}

// FrankfurterConfig holds settings for the frankfurter provider.
type FrankfurterConfig struct {
	BaseURL   string `mapstructure:"base_url"`
	Timeout   int    `mapstructure:"timeout_sec"`
	UserAgent string `mapstructure:"user_agent"`
}

// TrendConfig holds defaults for the quarterly trend chart.
type TrendConfig struct {
	DefaultYears int `mapstructure:"default_years"`
}

// LogConfig selects the zap preset.
type LogConfig struct {
	Development bool `mapstructure:"development"`
}

// LoadConfig reads configuration from config files, environment variables, and defaults.
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file found or error loading it: %v\n", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./internal/config")

	v.SetEnvPrefix("FXDASH")
	v.SetEnvKeyReplacer(replacer())
	v.AutomaticEnv()

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// defaults and env are enough to run
		fmt.Printf("Config file not found: %v\n", err)
	}

	return fromViper(v)
}

// SetDefaults registers the default value of every known key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.serve_swagger", true)
	v.SetDefault("server.read_header_timeout_sec", 5)
	v.SetDefault("server.write_timeout_sec", 30)
	v.SetDefault("server.shutdown_timeout_sec", 10)
	v.SetDefault("server.rate_limit", "120-M")
	v.SetDefault("server.cors_allowed_origins", []string{"*"})
	v.SetDefault("server.serve_metrics", true)
	v.SetDefault("frankfurter.base_url", "https://api.frankfurter.dev/v1")
	v.SetDefault("frankfurter.timeout_sec", 10)
	v.SetDefault("frankfurter.user_agent", "fx-dashboard/1.0")
	v.SetDefault("trend.default_years", 1)
	v.SetDefault("log.development", false)
}

func replacer() *strings.Replacer {
	return strings.NewReplacer(".", "_")
}

func fromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.Frankfurter.BaseURL = strings.TrimRight(cfg.Frankfurter.BaseURL, "/")
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks that all required configuration fields are set and valid.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 {
		errs = append(errs, fmt.Errorf("server.port must be positive, got %d", c.Server.Port))
	}
	if c.Server.ReadHeaderTimeoutSec <= 0 {
		errs = append(errs, fmt.Errorf("server.read_header_timeout_sec must be positive, got %d", c.Server.ReadHeaderTimeoutSec))
	}
	if c.Server.WriteTimeoutSec <= 0 {
		errs = append(errs, fmt.Errorf("server.write_timeout_sec must be positive, got %d", c.Server.WriteTimeoutSec))
	}
	if c.Server.ShutdownTimeoutSec <= 0 {
		errs = append(errs, fmt.Errorf("server.shutdown_timeout_sec must be positive, got %d", c.Server.ShutdownTimeoutSec))
	}

	if c.Server.RateLimit != "" {
		if _, err := limiter.NewRateFromFormatted(c.Server.RateLimit); err != nil {
			errs = append(errs, fmt.Errorf("server.rate_limit: %w", err))
		}
	}

	if c.Frankfurter.BaseURL == "" {
		errs = append(errs, fmt.Errorf("frankfurter.base_url is required (set FXDASH_FRANKFURTER_BASE_URL)"))
	}
	if c.Frankfurter.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("frankfurter.timeout_sec must be positive, got %d", c.Frankfurter.Timeout))
	}

	if err := trend.ValidateYears(c.Trend.DefaultYears); err != nil {
		errs = append(errs, fmt.Errorf("trend.default_years: %w", err))
	}

	return errors.Join(errs...)
}
