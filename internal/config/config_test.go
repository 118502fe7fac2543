package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Server.Address)
	assert.Equal(t, BackendFile, cfg.Store.Backend)
	assert.Equal(t, "./data", cfg.Store.DataDir)
	assert.Equal(t, 30*24*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, "zh-CN", cfg.Locale.Default)
	assert.Equal(t, []string{"zh-CN", "en-US", "ja-JP", "ko-KR"}, cfg.Locale.Supported)
	assert.False(t, cfg.S3.Enabled())
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte("store:\n  backend: memory\njwt:\n  expiration: 2h\ns3:\n  bucket_name: media\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o644))

	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("STORE_DATA_DIR", "/var/lib/rehab")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, BackendMemory, cfg.Store.Backend)
	assert.Equal(t, "/var/lib/rehab", cfg.Store.DataDir)
	assert.Equal(t, 2*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.True(t, cfg.S3.Enabled())
}

func TestLoadConfig_BadFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("store: [unterminated"), 0o644))

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}
