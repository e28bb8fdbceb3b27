package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8420", cfg.ListenAddr)
	assert.Equal(t, "127.0.0.1:9420", cfg.MetricsListenAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "auto", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.WebhookTimeout)
	assert.Equal(t, "acct_default", cfg.DefaultAccountID)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PAYSIM_LISTEN", ":9000")
	t.Setenv("PAYSIM_METRICS_LISTEN", "127.0.0.1:9001")
	t.Setenv("PAYSIM_LOG_LEVEL", "debug")
	t.Setenv("PAYSIM_LOG_FORMAT", "json")
	t.Setenv("PAYSIM_WEBHOOK_TIMEOUT", "5s")
	t.Setenv("PAYSIM_ACCOUNT", "acct_platform")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.Equal(t, "127.0.0.1:9001", cfg.MetricsListenAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 5*time.Second, cfg.WebhookTimeout)
	assert.Equal(t, "acct_platform", cfg.DefaultAccountID)
}

func TestLoadWhitespaceTrimmed(t *testing.T) {
	t.Setenv("PAYSIM_LISTEN", "  :9000  ")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.ListenAddr)
}

func TestLoadInvalidTimeout(t *testing.T) {
	t.Setenv("PAYSIM_WEBHOOK_TIMEOUT", "soon")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PAYSIM_WEBHOOK_TIMEOUT")
}
