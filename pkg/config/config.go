// pkg/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds denv configuration
type Config struct {
	StoreRoot      string `yaml:"store_root"`
	CacheURL       string `yaml:"cache_url"`
	HydraURL       string `yaml:"hydra_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	Debug          bool   `yaml:"debug"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		StoreRoot:      defaultStoreRoot(),
		TimeoutSeconds: 30,
		Debug:          false,
	}
}

// Timeout returns the network timeout as a duration
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Load loads configuration from file. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = filepath.Join(home, ".config", "denv", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.StoreRoot == "" {
		cfg.StoreRoot = defaultStoreRoot()
	}

	return cfg, nil
}

// Save saves configuration to file
func Save(cfg *Config, path string) error {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		path = filepath.Join(home, ".config", "denv", "config.yaml")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

func defaultStoreRoot() string {
	if path := os.Getenv("DENV_STORE_ROOT"); path != "" {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "denv", "store")
	}

	return filepath.Join(home, ".denv", "store")
}
