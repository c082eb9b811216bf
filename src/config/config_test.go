package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	for _, key := range []string{"APP_URI", "ALLOWED_ORIGINS", "STATIC_DIR", "REDIS_URI", "LOG_LEVEL", "LOG_FORMAT"} {
		// Setenv restores the original value after the test
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, ":8888", cfg.ListenAddr())
	assert.Equal(t, "*", cfg.AllowedOrigins)
	assert.Equal(t, "./static", cfg.StaticDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.RosterEventsEnabled())
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("APP_URI", "9000")
	t.Setenv("REDIS_URI", "localhost:6379")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.ListenAddr())
	assert.True(t, cfg.RosterEventsEnabled())
	assert.Equal(t, "json", cfg.LogFormat)
}
