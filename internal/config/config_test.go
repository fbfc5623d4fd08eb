package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	t.Setenv("GM_SESSION_FILE", "/tmp/gmconsole-test/session.json")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/api", cfg.APIBaseURL)
	assert.Equal(t, ":8080", cfg.MockAPIListenAddress)
	assert.Equal(t, "*", cfg.MockAPIAllowedOrigin)
	assert.Equal(t, 12*time.Hour, cfg.MockAPISessionTTL)
	assert.True(t, cfg.MockAPISeed)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("GM_API_BASE_URL", "https://api.example.com/api")
	t.Setenv("GM_SESSION_FILE", "/tmp/gmconsole-test/session.json")
	t.Setenv("GM_MOCK_API_LISTEN_ADDRESS", ":9090")
	t.Setenv("GM_MOCK_API_SESSION_TTL", "30m")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, "/tmp/gmconsole-test/session.json", cfg.SessionFile)
	assert.Equal(t, ":9090", cfg.MockAPIListenAddress)
	assert.Equal(t, 30*time.Minute, cfg.MockAPISessionTTL)
}

func TestLoadFromEnv_SessionFileDefaultsToHome(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Contains(t, cfg.SessionFile, ".gmconsole")
}
