package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, 20, cfg.History.Limit)
	require.Equal(t, "info", cfg.Log.Level)
	require.True(t, cfg.Observability.MetricsEnabled)
	require.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "saathi.yaml")
	content := `
server:
  host: 127.0.0.1
  port: 9090
auth:
  jwt_secret: file-secret
  access_ttl: 1h
history:
  limit: 10
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1", cfg.Server.Host)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "file-secret", cfg.Auth.JWTSecret)
	require.Equal(t, time.Hour, cfg.Auth.AccessTTL)
	require.Equal(t, 10, cfg.History.Limit)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SAATHI_AUTH_JWT_SECRET", "env-secret")
	t.Setenv("SAATHI_SERVER_PORT", "7070")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "env-secret", cfg.Auth.JWTSecret)
	require.Equal(t, 7070, cfg.Server.Port)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Error(t, cfg.Validate())

	cfg.Auth.JWTSecret = "secret"
	require.NoError(t, cfg.Validate())

	cfg.Server.Port = -1
	require.Error(t, cfg.Validate())
}

func TestWriteStarter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saathi.yaml")
	require.NoError(t, WriteStarter(path))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "change-me", cfg.Auth.JWTSecret)
	require.Equal(t, 20, cfg.History.Limit)

	// Never clobbers an existing file.
	require.Error(t, WriteStarter(path))
}
