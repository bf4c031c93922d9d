// Package file persists CLI configuration as TOML in the shoal config
// directory.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the Shoal CLI configuration.
type Config struct {
	// Catalogue is the path to the catalogue YAML file.
	Catalogue string `toml:"catalogue"`

	// View is the default layout for the browse view: "cards" or "table".
	View string `toml:"view"`

	// Watch enables catalogue file watching in the browse view.
	Watch bool `toml:"watch"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{View: "cards"}
}

// Store reads and writes the TOML configuration file.
type Store struct {
	path string
}

// NewStore creates a config store rooted at configDir.
// If configDir is empty, defaults to ~/.shoal.
func NewStore(configDir string) (*Store, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".shoal")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	return &Store{path: filepath.Join(configDir, "config.toml")}, nil
}

// Load reads the configuration. A missing file yields the defaults.
func (s *Store) Load() (*Config, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Save persists the configuration with restricted permissions.
func (s *Store) Save(cfg *Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(s.path, data, 0600)
}

// Path returns the configuration file path.
func (s *Store) Path() string {
	return s.path
}
