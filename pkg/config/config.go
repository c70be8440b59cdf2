// Package config loads and persists CLI configuration for the cogmem tool.
//
// Configuration lives in ~/.cogmem/config.yaml. Environment variables
// (COGMEM_API_KEY, COGMEM_BASE_URL, COGMEM_PROJECT_ID) take precedence over
// the file; explicit command-line flags take precedence over both.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML configs can say "30s" or "2m".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("config: invalid duration %q: %w", value.Value, err)
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

// Config holds the settings the cogmem CLI needs to construct a client.
type Config struct {
	APIKey    string   `yaml:"api_key,omitempty"`
	BaseURL   string   `yaml:"base_url,omitempty"`
	ProjectID string   `yaml:"project_id,omitempty"`
	Timeout   Duration `yaml:"timeout,omitempty"`
}

// DefaultPath returns ~/.cogmem/config.yaml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".cogmem", "config.yaml"), nil
}

// Load reads the configuration file at path. If path is empty, DefaultPath is
// used. A missing file is not an error; it yields an empty Config so the CLI
// can fall back to environment variables and flags.
func Load(path string) (*Config, error) {
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	return &cfg, nil
}

// ApplyEnvironment overlays COGMEM_* environment variables onto the config.
// Set variables win over file values.
func (c *Config) ApplyEnvironment() {
	if v := os.Getenv("COGMEM_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("COGMEM_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("COGMEM_PROJECT_ID"); v != "" {
		c.ProjectID = v
	}
}

// Save writes the configuration to path (DefaultPath if empty), creating the
// directory if needed. The write is atomic: a temp file is renamed over the
// destination so a crash can't leave a half-written config.
func (c *Config) Save(path string) error {
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return err
		}
		path = defaultPath
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("config: failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: failed to encode config: %w", err)
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0600); err != nil {
		return fmt.Errorf("config: failed to write temp config file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("config: failed to rename temp file: %w", err)
	}

	return nil
}
