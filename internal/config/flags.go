package config

import "flag"

// Flags are the command-line overrides shared by every sub-command.
type Flags struct {
	config  *string
	debug   *bool
	logFile *string
	width   *int
	height  *int
	visible *bool
}

// BindFlags registers the shared flags on fs.
func BindFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		config:  fs.String("config", "", "Path to config file"),
		debug:   fs.Bool("debug", false, "Enable debug logging and mesh dumps"),
		logFile: fs.String("log", "", "Write logs to this file"),
		width:   fs.Int("width", 0, "Context window width"),
		height:  fs.Int("height", 0, "Context window height"),
		visible: fs.Bool("visible", false, "Show the context window"),
	}
}

// ConfigPath returns the explicit config path if provided via -config.
func (f *Flags) ConfigPath() string {
	return *f.config
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if *f.debug {
		cfg.Logging.Level = "debug"
	}
	if *f.logFile != "" {
		cfg.Logging.LogFile = *f.logFile
	}
	if *f.width > 0 {
		cfg.Graphics.Width = *f.width
	}
	if *f.height > 0 {
		cfg.Graphics.Height = *f.height
	}
	if *f.visible {
		cfg.Graphics.Visible = true
	}
}
