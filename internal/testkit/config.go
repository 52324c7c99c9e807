// Package testkit provides the environment for integration tests that talk to
// a live rate provider.
package testkit

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"fxdashboard/internal/provider"
)

// Config holds environment-driven configuration for integration tests.
type Config struct {
	ProviderURL     string
	ProviderTimeout time.Duration
	// RequireProvider fails the run instead of skipping it when the provider is unreachable.
	RequireProvider bool
}

// LoadConfig reads test settings from environment variables.
func LoadConfig() Config {
	return Config{
		ProviderURL:     envOrDefault("TEST_FRANKFURTER_URL", provider.DefaultFrankfurterURL),
		ProviderTimeout: envDurationOrDefault("TEST_PROVIDER_TIMEOUT", 15*time.Second),
		RequireProvider: envBoolOrDefault("TEST_REQUIRE_PROVIDER", false),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDurationOrDefault(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		secs, err2 := strconv.Atoi(v)
		if err2 != nil {
			fmt.Fprintf(os.Stderr, "testkit: invalid value %q for %s, using default %v\n", v, key, def)
			return def
		}
		return time.Duration(secs) * time.Second
	}
	return d
}

func envBoolOrDefault(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "testkit: invalid value %q for %s, using default %v\n", v, key, def)
		return def
	}
	return b
}
