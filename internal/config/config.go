// Package config handles loading and saving application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// RootEnv overrides the workspace root directory when set.
const RootEnv = "GALLERY_ROOT"

// Config represents the application configuration.
type Config struct {
	// Root is the workspace root directory. The board library lives under
	// it unless Library points elsewhere.
	Root string `yaml:"root,omitempty"`

	// Library is an explicit path to the board library file.
	Library string `yaml:"library,omitempty"`

	UI       UIConfig        `yaml:"ui"`
	Log      LogConfig       `yaml:"log"`
	Features map[string]bool `yaml:"features,omitempty"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	VimMode        bool `yaml:"vim_mode"`
	NotifyOnDelete bool `yaml:"notify_on_delete"`
}

// LogConfig holds logging settings. The TUI owns the terminal, so logs go
// to a file when enabled.
type LogConfig struct {
	File  string `yaml:"file,omitempty"`
	Level string `yaml:"level,omitempty"` // "debug", "info", "warn", "error"
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			VimMode:        true,
			NotifyOnDelete: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "gallery-tui")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from the config file.
// If the file doesn't exist, returns a default configuration.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from the given path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return default config if file doesn't exist
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the config file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	// Write with restricted permissions (owner read/write only)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// RootDir resolves the workspace root. Precedence: GALLERY_ROOT env,
// config root, then ~/.local/share/gallery-tui.
func (c *Config) RootDir() (string, error) {
	if env := os.Getenv(RootEnv); env != "" {
		return env, nil
	}
	if c.Root != "" {
		return c.Root, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".local", "share", "gallery-tui"), nil
}

// LibraryPath resolves the board library file path.
func (c *Config) LibraryPath() (string, error) {
	if c.Library != "" {
		return c.Library, nil
	}

	root, err := c.RootDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "boards.yaml"), nil
}
