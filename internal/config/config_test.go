package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/questkeep/hero-api/internal/config"
	"github.com/questkeep/hero-api/internal/errors"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, 50051, cfg.Server.GRPCPort)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
	assert.Equal(t, 0, cfg.Redis.DB)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  grpc_port: 9090
redis:
  host: cache.internal
  port: 6380
  db: 2
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.GRPCPort)
	assert.Equal(t, "cache.internal:6380", cfg.Redis.Addr())
	assert.Equal(t, 2, cfg.Redis.DB)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HEROAPI_SERVER_GRPC_PORT", "7777")
	t.Setenv("HEROAPI_REDIS_HOST", "env-redis.internal")
	t.Setenv("HEROAPI_REDIS_PASSWORD", "hunter2")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, 7777, cfg.Server.GRPCPort)
	assert.Equal(t, "env-redis.internal:6379", cfg.Redis.Addr())
	assert.Equal(t, "hunter2", cfg.Redis.Password)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
redis:
  host: file-redis.internal
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Setenv("HEROAPI_REDIS_HOST", "env-redis.internal")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-redis.internal", cfg.Redis.Host)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  grpc_port: -1
redis:
  host: ""
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	_, err := config.Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}
