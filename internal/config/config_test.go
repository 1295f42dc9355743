package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ndnlite.yaml")
	require.NoError(t, os.WriteFile(path, []byte("link: eth0\nmtu: 1400\nlog_level: debug\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "eth0", cfg.Link)
	assert.Equal(t, 1400, cfg.MTU)
	assert.Equal(t, "debug", cfg.LogLevel)
	// unset fields keep Default()'s values.
	assert.Equal(t, uint64(4000), cfg.DefaultLifetimeMs)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
