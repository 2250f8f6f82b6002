package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("SERVICE_NAME", "")
	os.Unsetenv("SERVICE_NAME")

	cfg, err := Load("predictions-web")
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "http://localhost:5000", cfg.APIBaseURL)
	assert.Equal(t, "full", cfg.Variant)
	assert.Equal(t, "fail-fast", cfg.JoinMode)
	assert.Equal(t, time.Duration(0), cfg.FetchTimeout)
	assert.Equal(t, "3000", cfg.HTTPPort)
	assert.Equal(t, "9100", cfg.MetricsPort)
	assert.Equal(t, "predictions_snapshots", cfg.TopicSnapshots)
	assert.Equal(t, time.Hour, cfg.RedisSnapshotTTL)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
env: prod
api:
  base_url: https://previsoes.example.com
  timeout: 5s
view:
  variant: light
  time_zone: America/Argentina/Buenos_Aires
sinks:
  redis_addr: redis:6379
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVICE_NAME", "predictions-view")
	t.Setenv("VIEW_VARIANT", "full")

	cfg, err := Load("predictions-web")
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "https://previsoes.example.com", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "full", cfg.Variant, "env must override the file")
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, "America/Argentina/Buenos_Aires", cfg.Location().String())
	assert.Equal(t, "predictions-view", cfg.ServiceName, "SERVICE_NAME must override the binary default")
	assert.Empty(t, cfg.HTTPPort)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("FETCH_TIMEOUT", "dez segundos")

	_, err := Load("predictions-view")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FETCH_TIMEOUT")
}

func TestLocation_FallbackUTC(t *testing.T) {
	cfg := Config{TimeZone: "Nowhere/Invalid"}
	assert.Equal(t, time.UTC, cfg.Location())
}
