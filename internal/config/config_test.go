package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "DB_PATH", "STATIC_PATH", "TOKEN_SECRET", "TOKEN_TTL", "METRICS_NAMESPACE"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr())
	assert.Equal(t, "./data/receipts.db", cfg.DBPath)
	assert.Equal(t, 72*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "tabsplit", cfg.MetricsNamespace)
	assert.True(t, cfg.UsingDevSecret())
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", ":9090")
	t.Setenv("DB_PATH", "/tmp/r.db")
	t.Setenv("TOKEN_SECRET", "s3cret")
	t.Setenv("TOKEN_TTL", "30m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTPAddr())
	assert.Equal(t, "/tmp/r.db", cfg.DBPath)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.False(t, cfg.UsingDevSecret())
}

func TestLoad_InvalidTTL(t *testing.T) {
	clearEnv(t)
	t.Setenv("TOKEN_TTL", "soon")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("TOKEN_TTL", "-1h")
	_, err = Load()
	assert.Error(t, err)
}
