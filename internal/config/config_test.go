package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReturnsDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.General.DefaultDays)
	assert.Equal(t, "€", cfg.Display.Currency)
	assert.Equal(t, "flexoki-dark", cfg.Display.Theme)
	assert.False(t, Exists())
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.DefaultDays = 90
	cfg.General.LedgerPath = "/tmp/somewhere/ledger.db"
	cfg.Display.Currency = "$"
	require.NoError(t, Save(cfg))
	require.True(t, Exists())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "runway"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "runway", "config.toml"), []byte("not [valid"), 0o600))

	_, err := Load()
	assert.Error(t, err)
}

func TestLedgerPathResolution(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "/flag/ledger.db", LedgerPath("/flag/ledger.db", cfg))

	cfg.General.LedgerPath = "/cfg/ledger.db"
	assert.Equal(t, "/cfg/ledger.db", LedgerPath("", cfg))

	cfg.General.LedgerPath = ""
	t.Setenv("XDG_DATA_HOME", "/data")
	assert.Equal(t, filepath.Join("/data", "runway", "ledger.db"), LedgerPath("", cfg))
}
