package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/scanconsole/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.False(t, cfg.Cache.Enabled)
	assert.True(t, cfg.Refresh.Enabled)
	assert.Equal(t, []string{"task", "report"}, cfg.Refresh.EntityTypes)
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("prod")
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "otlp", cfg.Telemetry.Exporter)
	assert.NotEmpty(t, cfg.Telemetry.Endpoint)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 60*time.Second, cfg.Cache.TTL)
	assert.Equal(t, "scanconsole:", cfg.Cache.KeyPrefix, "inherited from base")
	assert.InDelta(t, 20.0, cfg.Client.RateLimit.RequestsPerSecond, 0.001)
	assert.Equal(t, 8, cfg.Refresh.MaxWorkers)
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 3, cfg.Client.Retry.MaxAttempts)
	assert.Equal(t, 5, cfg.Client.CircuitBreaker.MaxFailures)
	assert.Equal(t, 4, cfg.Refresh.MaxWorkers)
}

func TestLoad_DefaultsFillMissingKeys(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base.yaml"), []byte("log:\n  level: warn\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte("{}\n"), 0o600))

	cfg, err := config.Load("test", config.WithConfigDir(dir))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Equal(t, "scanconsole", cfg.Telemetry.ServiceName)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_PORT", "9090")
	t.Setenv("APP_SERVER_READ_TIMEOUT", "15s")
	t.Setenv("APP_CLIENT_RETRY_MAX_ATTEMPTS", "7")
	t.Setenv("APP_CACHE_KEY_PREFIX", "gsa:")
	t.Setenv("APP_REFRESH_ENTITY_TYPES", "task, target ,,scanner")

	cfg, err := config.Load("local")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 7, cfg.Client.Retry.MaxAttempts)
	assert.Equal(t, "gsa:", cfg.Cache.KeyPrefix)
	assert.Equal(t, []string{"task", "target", "scanner"}, cfg.Refresh.EntityTypes)
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("nonexistent")
	assert.Error(t, err)
}

func TestLoad_InvalidProfileName(t *testing.T) {
	t.Parallel()

	for _, profile := range []string{"", "  ", "../etc", `a\b`} {
		_, err := config.Load(profile)
		assert.Error(t, err, "profile %q", profile)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*config.Config) {}},
		{name: "invalid port", mutate: func(c *config.Config) { c.Server.Port = 0 }, wantErr: true},
		{name: "invalid log level", mutate: func(c *config.Config) { c.Log.Level = "verbose" }, wantErr: true},
		{
			name: "otlp without endpoint",
			mutate: func(c *config.Config) {
				c.Telemetry = config.TelemetryConfig{Enabled: true, Exporter: "otlp"}
			},
			wantErr: true,
		},
		{
			name:    "rate limit without burst",
			mutate:  func(c *config.Config) { c.Client.RateLimit.RequestsPerSecond = 5 },
			wantErr: true,
		},
		{
			name:    "cache enabled without addr",
			mutate:  func(c *config.Config) { c.Cache = config.CacheConfig{Enabled: true, TTL: time.Second} },
			wantErr: true,
		},
		{
			name:    "disabled cache is not validated",
			mutate:  func(c *config.Config) { c.Cache = config.CacheConfig{} },
			wantErr: false,
		},
		{
			name: "refresh without types",
			mutate: func(c *config.Config) {
				c.Refresh = config.RefreshConfig{Enabled: true, Interval: time.Minute, MaxWorkers: 1}
			},
			wantErr: true,
		},
		{
			name: "refresh of dashboards only",
			mutate: func(c *config.Config) {
				c.Refresh = config.RefreshConfig{Enabled: true, Interval: time.Minute, MaxWorkers: 1, Dashboards: true}
			},
			wantErr: false,
		},
		{
			name: "refresh with zero workers",
			mutate: func(c *config.Config) {
				c.Refresh = config.RefreshConfig{Enabled: true, Interval: time.Minute, EntityTypes: []string{"task"}}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validBaseConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Log: config.LogConfig{Level: "info", Format: "json"},
		Client: config.ClientConfig{
			BaseURL: "http://localhost:9392",
			Timeout: 30 * time.Second,
			Retry: config.RetryConfig{
				MaxAttempts:     3,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     10 * time.Second,
				Multiplier:      2.0,
			},
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 1,
			},
		},
		Cache: config.CacheConfig{
			Enabled:   true,
			Addr:      "localhost:6379",
			TTL:       30 * time.Second,
			KeyPrefix: "scanconsole:",
		},
		Refresh: config.RefreshConfig{
			Enabled:     true,
			Interval:    time.Minute,
			EntityTypes: []string{"task"},
			MaxWorkers:  4,
		},
		Telemetry: config.TelemetryConfig{Exporter: "stdout"},
	}
}
