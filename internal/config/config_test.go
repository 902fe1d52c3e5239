package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, "*", cfg.Server.AllowOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "localhost:6379", cfg.GetRedisAddr())

	assert.Equal(t, 10, cfg.Timeline.PathStride)
	assert.Equal(t, 50, cfg.Timeline.LargePathStride)
	assert.Equal(t, 1000, cfg.Timeline.LargePathThreshold)
	assert.Equal(t, 50000, cfg.Timeline.MaxTrackPoints)
	assert.Equal(t, int64(256<<20), cfg.Timeline.MaxUploadBytes)
	assert.Equal(t, time.UTC, cfg.Timeline.Location)
	assert.Equal(t, 50, cfg.Timeline.EventsLimit)
	assert.Equal(t, "timeline:preferences", cfg.Preferences.Key)
	assert.Equal(t, int(256<<20+1<<20), cfg.BodyLimit())
}

func TestLoadFrom_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "API_HOST=127.0.0.1\n" +
		"API_PORT=9090\n" +
		"REDIS_ENABLED=true\n" +
		"TIMELINE_PATH_STRIDE=5\n" +
		"TIMELINE_MAX_UPLOAD_MB=16\n" +
		"TIMELINE_TIMEZONE=Europe/Moscow\n" +
		"PREFERENCES_TTL=3600\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.GetServerAddr())
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, int64(16<<20), cfg.Timeline.MaxUploadBytes)
	assert.Equal(t, "Europe/Moscow", cfg.Timeline.Location.String())
	assert.Equal(t, time.Hour, cfg.Preferences.TTL)

	sampling := cfg.Timeline.Sampling()
	assert.Equal(t, 5, sampling.PathStride)
	assert.Equal(t, 50, sampling.LargePathStride)
}

func TestLoadFrom_EnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=warn\n"), 0o600))
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFrom_InvalidTimezone(t *testing.T) {
	t.Setenv("TIMELINE_TIMEZONE", "Mars/Olympus_Mons")

	_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
