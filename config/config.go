package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the application configuration: which storage backend holds the
// journal and how amounts are displayed.
type Config struct {
	Storage StorageConfig `json:"storage" yaml:"storage"`
	Display DisplayConfig `json:"display" yaml:"display"`
}

// StorageConfig selects and locates the persistence backend.
type StorageConfig struct {
	Type   string `json:"type" yaml:"type"` // "sqlite" or "file"
	DBPath string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
	Dir    string `json:"dir,omitempty" yaml:"dir,omitempty"`
}

// DisplayConfig contains presentation parameters.
type DisplayConfig struct {
	CurrencySymbol string `json:"currency_symbol" yaml:"currency_symbol"`
}

// LoadFromFile loads configuration from a file. YAML is tried first, then
// JSON, matching whichever the user wrote.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Storage.Type {
	case "sqlite":
		if c.Storage.DBPath == "" {
			return fmt.Errorf("storage.db_path required for sqlite type")
		}
	case "file":
		if c.Storage.Dir == "" {
			return fmt.Errorf("storage.dir required for file type")
		}
	default:
		return fmt.Errorf("storage.type must be 'sqlite' or 'file'")
	}
	if c.Display.CurrencySymbol == "" {
		return fmt.Errorf("display.currency_symbol is required")
	}
	return nil
}

// Default returns a configuration with sensible defaults: an SQLite journal
// under the user's home directory and euro display.
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		Storage: StorageConfig{
			Type:   "sqlite",
			DBPath: filepath.Join(home, ".tradelog", "journal.db"),
		},
		Display: DisplayConfig{
			CurrencySymbol: "€",
		},
	}
}
