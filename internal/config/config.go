// Package config provides configuration management for linkpile.
//
// Config file locations (priority order):
//  1. $LINKPILE_CONFIG
//  2. ./linkpile.yaml
//  3. ~/.config/linkpile/config.yaml
//  4. /etc/linkpile/config.yaml
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultDatabasePath is where the link database lives unless configured
const DefaultDatabasePath = "./linkpile.db"

// Config holds the program configuration
type Config struct {
	Version  int            `yaml:"version"`
	Database DatabaseConfig `yaml:"database"`
	List     ListConfig     `yaml:"list"`
}

// DatabaseConfig locates the SQLite database file
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// ListConfig controls list output
type ListConfig struct {
	// Limit caps how many links a list prints; 0 means no cap
	Limit int `yaml:"limit"`
}

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, path, nil
}

// Save writes config to the specified path
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns sensible defaults for a new installation
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		Database: DatabaseConfig{Path: DefaultDatabasePath},
	}
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Database.Path == "" {
		c.Database.Path = DefaultDatabasePath
	}
}
