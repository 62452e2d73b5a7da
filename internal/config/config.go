// Package config loads and saves runway's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all runway configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Display DisplayConfig `toml:"display"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	// LedgerPath overrides the default ledger database location.
	LedgerPath  string `toml:"ledger_path,omitempty"`
	DefaultDays int    `toml:"default_days"`
}

// DisplayConfig holds presentation settings.
type DisplayConfig struct {
	Currency string `toml:"currency"`
	Theme    string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DefaultDays: 30,
		},
		Display: DisplayConfig{
			Currency: "€",
			Theme:    "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "runway")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "runway")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// DefaultLedgerPath returns where the ledger database lives when no
// override is configured.
func DefaultLedgerPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "runway", "ledger.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "runway", "ledger.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// LedgerPath resolves the ledger database location: explicit flag first,
// then the config override, then the default data dir.
func LedgerPath(flagPath string, cfg Config) string {
	if flagPath != "" {
		return flagPath
	}
	if cfg.General.LedgerPath != "" {
		return cfg.General.LedgerPath
	}
	return DefaultLedgerPath()
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
