// Package config handles primtool configuration loading and management.
package config

import "github.com/Faultbox/primforge/internal/catalog"

// Config holds all primtool settings.
type Config struct {
	Graphics GraphicsConfig    `yaml:"graphics"`
	Logging  LoggingConfig     `yaml:"logging"`
	Shapes   []catalog.Request `yaml:"shapes"`
}

// GraphicsConfig holds the settings of the window that owns the GL context.
type GraphicsConfig struct {
	Width   int  `yaml:"width"`
	Height  int  `yaml:"height"`
	Visible bool `yaml:"visible"`
	VSync   bool `yaml:"vsync"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values. The default shape
// list holds one request per primitive kind.
func Default() *Config {
	cfg := &Config{
		Graphics: GraphicsConfig{
			Width:   640,
			Height:  480,
			Visible: false,
			VSync:   false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
	for _, kind := range catalog.Kinds() {
		r, err := catalog.Default(kind)
		if err != nil {
			continue
		}
		cfg.Shapes = append(cfg.Shapes, r)
	}
	return cfg
}
