package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "./users_and_exercises.db", cfg.Database.Path)
	require.NotNil(t, cfg.Observability)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "development", cfg.Observability.Environment)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("TRACKER_PRIMARY__ENV", "production")
	t.Setenv("TRACKER_SERVER__PORT", "8081")
	t.Setenv("TRACKER_SERVER__CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("TRACKER_DATABASE__PATH", "/tmp/tracker.db")
	t.Setenv("TRACKER_OBSERVABILITY__LOGGING__LEVEL", "warn")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Primary.Env)
	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "/tmp/tracker.db", cfg.Database.Path)
	assert.Equal(t, "warn", cfg.Observability.Logging.Level)
	assert.Equal(t, "production", cfg.Observability.Environment)
	assert.True(t, cfg.Observability.IsProduction())
	// untouched nested defaults survive a partial override
	assert.Equal(t, 5*time.Second, cfg.Observability.HealthChecks.Timeout)
}

func TestLoadConfigSplitsCORSOrigins(t *testing.T) {
	t.Setenv("TRACKER_SERVER__CORS_ALLOWED_ORIGINS", " http://a.test , http://b.test,,http://c.test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"http://a.test", "http://b.test", "http://c.test"}, cfg.Server.CORSAllowedOrigins)
}

func TestLoadConfigRejectsPostgresWithoutURL(t *testing.T) {
	t.Setenv("TRACKER_DATABASE__DRIVER", "postgres")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoadConfigRejectsUnknownDriver(t *testing.T) {
	t.Setenv("TRACKER_DATABASE__DRIVER", "mysql")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestObservabilityValidate(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	require.NoError(t, cfg.Validate())

	cfg.Logging.Level = "verbose"
	require.Error(t, cfg.Validate())

	cfg.Logging.Level = ""
	cfg.Environment = "development"
	assert.Equal(t, "debug", cfg.GetLogLevel())
}
