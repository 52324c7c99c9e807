package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.True(t, cfg.Server.ServeSwagger)
	assert.Equal(t, "https://api.frankfurter.dev/v1", cfg.Frankfurter.BaseURL)
	assert.Equal(t, 10, cfg.Frankfurter.Timeout)
	assert.Equal(t, 1, cfg.Trend.DefaultYears)
	assert.Equal(t, "120-M", cfg.Server.RateLimit)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.True(t, cfg.Server.ServeMetrics)
	assert.False(t, cfg.Log.Development)
}

func TestFromViper_TrimsBaseURL(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("frankfurter.base_url", "http://localhost:9000/v1/")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/v1", cfg.Frankfurter.BaseURL)
}

func TestFromViper_EnvOverride(t *testing.T) {
	t.Setenv("FXDASH_SERVER_PORT", "9191")

	v := viper.New()
	v.SetEnvPrefix("FXDASH")
	v.SetEnvKeyReplacer(replacer())
	v.AutomaticEnv()
	SetDefaults(v)

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 9191, cfg.Server.Port)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server: ServerConfig{
				Port:                 8080,
				ReadHeaderTimeoutSec: 5,
				WriteTimeoutSec:      30,
				ShutdownTimeoutSec:   10,
			},
			Frankfurter: FrankfurterConfig{BaseURL: "https://api.frankfurter.dev/v1", Timeout: 10},
			Trend:       TrendConfig{DefaultYears: 1},
		}
	}

	t.Run("valid config", func(t *testing.T) {
		cfg := valid()
		assert.NoError(t, cfg.Validate())
	})

	t.Run("collects every problem", func(t *testing.T) {
		cfg := valid()
		cfg.Server.Port = 0
		cfg.Frankfurter.BaseURL = ""
		cfg.Frankfurter.Timeout = -1
		cfg.Trend.DefaultYears = 11
		cfg.Server.RateLimit = "fast"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.port")
		assert.Contains(t, err.Error(), "frankfurter.base_url")
		assert.Contains(t, err.Error(), "frankfurter.timeout_sec")
		assert.Contains(t, err.Error(), "trend.default_years")
		assert.Contains(t, err.Error(), "server.rate_limit")
	})

	t.Run("empty rate limit disables limiting", func(t *testing.T) {
		cfg := valid()
		cfg.Server.RateLimit = ""
		assert.NoError(t, cfg.Validate())
	})
}
