package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// TargetPath is the desktop entry whose Exec line gets rewritten
const TargetPath = "/usr/share/applications/fiji.desktop"

// appName names the config and state directories
const appName = "macrotoggle"

// configFileName is the name of the config file
const configFileName = "config.yaml"

// Config holds the application settings.
// The target file and the options are fixed and not part of it.
type Config struct {
	LogLevel  string `yaml:"log_level"` // debug, info, warn, error
	LogDir    string `yaml:"log_dir"`   // Directory for the diagnostic log
	ShowDiff  bool   `yaml:"show_diff"` // Show changed lines in the success dialog
	Highlight bool   `yaml:"highlight"` // Syntax highlight the current Exec line
	FirstRun  bool   `yaml:"-"`         // No config file was found
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		LogDir:    StateDir(),
		ShowDiff:  true,
		Highlight: true,
		FirstRun:  true,
	}
}

// ConfigDir returns the directory containing the config file
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, appName)
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	return filepath.Join(ConfigDir(), configFileName)
}

// StateDir returns the default directory for the diagnostic log
func StateDir() string {
	return filepath.Join(xdg.StateHome, appName)
}

// Load loads the configuration from the default path, writing the
// defaults there on first run
func Load() (*Config, error) {
	return LoadOrInit(ConfigPath())
}

// LoadOrInit loads the configuration from path. When the file does not
// exist yet the defaults are saved to it. A failed save still returns the
// defaults along with the error.
func LoadOrInit(path string) (*Config, error) {
	cfg, err := LoadFrom(path)
	if err != nil {
		return nil, err
	}

	if cfg.FirstRun {
		if err := cfg.SaveTo(path); err != nil {
			return cfg, fmt.Errorf("failed to save default config: %w", err)
		}
	}
	return cfg, nil
}

// LoadFrom loads the configuration from path.
// A missing file yields the defaults.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogDir == "" {
		cfg.LogDir = StateDir()
	}

	cfg.FirstRun = false
	return cfg, nil
}

// SaveTo writes the configuration to path
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// LogPath returns the path of the diagnostic log file
func (c *Config) LogPath() string {
	return filepath.Join(c.LogDir, appName+".log")
}
