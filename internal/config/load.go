package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

const fileName = "primtool.yaml"

// Load loads configuration with priority: defaults < file < flags.
// f may be nil when no flags were bound.
func Load(f *Flags) (*Config, error) {
	cfg := Default()

	// Explicit path takes priority over the standard locations.
	var configPath string
	if f != nil {
		configPath = f.ConfigPath()
	}
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	if f != nil {
		f.apply(cfg)
	}

	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./" + fileName,
		filepath.Join(ConfigDir(), fileName),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Primforge")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Primforge")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "primforge")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "primforge")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
// A shapes list in the file replaces the default list.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var file Config
	file.Graphics = cfg.Graphics
	file.Logging = cfg.Logging
	if err := yaml.Unmarshal(data, &file); err != nil {
		return err
	}
	if file.Shapes == nil {
		file.Shapes = cfg.Shapes
	}
	*cfg = file
	return nil
}
