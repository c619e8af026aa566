package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "device-audit", cfg.Storage.Bucket)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "device_audit", cfg.Database.Name)
	assert.Equal(t, "snapshots/ad-computers.json", cfg.Sources.ADObject)
	assert.Equal(t, "storage", cfg.Audit.Sink)
	assert.Equal(t, 30, cfg.Audit.KeepReports)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("AUDIT_SINK", "file")
	t.Setenv("SOURCES_CACHE_TTL_SECONDS", "120")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "file", cfg.Audit.Sink)
	assert.Equal(t, 120, cfg.Sources.CacheTTLSeconds)
}
