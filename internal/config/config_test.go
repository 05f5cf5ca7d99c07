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

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.False(t, cfg.Server.Debug)

	assert.Equal(t, 20, cfg.Store.DeviceCount)
	assert.Equal(t, 50, cfg.Store.AlertCap)
	assert.Equal(t, 15, cfg.Store.SeedAlerts)
	assert.Equal(t, 2*time.Minute, cfg.Store.CacheTTL)
	assert.InDelta(t, 0.10, cfg.Store.AlertProbability, 1e-9)
	assert.InDelta(t, 0.05, cfg.Store.StatusProbability, 1e-9)
	assert.InDelta(t, 0.10, cfg.Store.JitterFraction, 1e-9)

	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoadGeneratesSecretKey(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Len(t, cfg.Server.SecretKey, 64) // 32 random bytes, hex encoded
}

func TestLoadRejectsUnknownCacheBackend(t *testing.T) {
	t.Setenv("PULSEHUB_CACHE__BACKEND", "bogus")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cache backend")
}

func TestLoadHonorsEnvOverrides(t *testing.T) {
	t.Setenv("PULSEHUB_SERVER__PORT", "9000")
	t.Setenv("PULSEHUB_STORE__DEVICE_COUNT", "5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Store.DeviceCount)
}
