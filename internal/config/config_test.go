package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.Server.URL)
	assert.Equal(t, "sharesync-client.db", cfg.Client.DBPath)
	assert.Equal(t, 3, cfg.Retry.Attempts)
	assert.Equal(t, 350*time.Millisecond, cfg.Retry.Backoff)
	assert.InDelta(t, 0.25, cfg.Retry.JitterRatio, 1e-9)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SHARESYNC_SERVER_URL", "https://example.com")
	t.Setenv("SHARESYNC_USER_ID", "u42")
	t.Setenv("SHARESYNC_RETRY_ATTEMPTS", "5")
	t.Setenv("SHARESYNC_RETRY_BACKOFF", "1s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://example.com", cfg.Server.URL)
	assert.Equal(t, "u42", cfg.Client.UserID)
	assert.Equal(t, 5, cfg.Retry.Attempts)
	assert.Equal(t, time.Second, cfg.Retry.Backoff)
}

func TestLoad_InvalidBackoff(t *testing.T) {
	t.Setenv("SHARESYNC_RETRY_BACKOFF", "not-a-duration")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHARESYNC_RETRY_BACKOFF")
}
