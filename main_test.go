package main

import (
	"net"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kartheepan1991/eks-setup-terraform/internal/infra/logger"
)

func isolateConfig(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("ENV_FILE", filepath.Join(dir, "absent.env"))
	t.Setenv("CONFIG_PATH", filepath.Join(dir, "config.yml"))
	for _, name := range []string{"PORT", "HOST", "APP_VERSION", "NODE_ENV", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(name, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	isolateConfig(t)

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "1.0.0", cfg.Service.Version)
	assert.Equal(t, "development", cfg.Service.Environment)
}

func TestLoadConfig_InvalidLogLevel(t *testing.T) {
	isolateConfig(t)
	t.Setenv("LOG_LEVEL", "chatty")

	_, err := loadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate config")
}

func TestResolveHostname(t *testing.T) {
	name, err := resolveHostname()
	require.NoError(t, err)
	assert.NotEmpty(t, name)
}

func TestRunServer_PortInUseExitsNonZero(t *testing.T) {
	isolateConfig(t)

	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = occupied.Close() })

	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", strconv.Itoa(occupied.Addr().(*net.TCPAddr).Port))

	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, 1, runServer(cfg, "test-host", logger.NewNop()))
}
