// Package config loads and saves persistent application preferences.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cmagno/acervo/internal/page"
)

// Config is the persistent application configuration
type Config struct {
	// UI preferences
	UI UIConfig `json:"ui"`

	// Where the progress database and logs live; defaults to ~/.acervo
	DataDir string `json:"data_dir,omitempty"`

	// Where progress exports are written; defaults to the working directory
	ExportDir string `json:"export_dir,omitempty"`
}

// UIConfig holds UI preferences
type UIConfig struct {
	// Records revealed per "load more" step
	PageSize int `json:"page_size"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			PageSize: page.DefaultPageSize,
		},
	}
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".acervo", "config.json")
}

// ResolveDataDir returns the effective data directory.
func (c *Config) ResolveDataDir() string {
	if c.DataDir != "" {
		return c.DataDir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".acervo")
}

// Load reads config from disk, or returns defaults
func Load() (*Config, error) {
	path := ConfigPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), nil
	}
	if cfg.UI.PageSize <= 0 {
		cfg.UI.PageSize = page.DefaultPageSize
	}
	return &cfg, nil
}

// Save writes config to disk
func (c *Config) Save() error {
	path := ConfigPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
