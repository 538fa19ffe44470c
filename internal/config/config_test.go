package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		"APP_NAME", "APP_ENV", "APP_HOST", "APP_PORT", "APP_VERSION",
		"HTTP_REQUEST_TIMEOUT_SECONDS", "LOG_LEVEL",
		"METRICS_ENABLED", "METRICS_NAMESPACE",
		"TICKET_DEFAULT_ASSIGNEE_ID",
	}
	for _, key := range keys {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "support-ticket-service", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "ticketservice", cfg.Metrics.Namespace)
	assert.Equal(t, "agent-123", cfg.Ticketing.DefaultAssigneeID)
}

func TestLoadOverrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("APP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("TICKET_DEFAULT_ASSIGNEE_ID", "agent-9")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.App.Addr())
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "agent-9", cfg.Ticketing.DefaultAssigneeID)
	assert.Equal(t, 5*time.Second, cfg.App.RequestTimeout())
}

func TestLoadFallsBackOnUnparsableValues(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "not-a-number")
	t.Setenv("METRICS_ENABLED", "not-a-bool")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.App.RequestTimeoutSeconds)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestRequestTimeoutDisabled(t *testing.T) {
	app := AppConfig{RequestTimeoutSeconds: 0}
	assert.Equal(t, time.Duration(0), app.RequestTimeout())
}
