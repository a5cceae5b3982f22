package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	defaultIndent       = 2
	defaultCommandWidth = 6
	defaultModuleWidth  = 12
)

// Color modes
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

type Config struct {
	Format   Format            `toml:"format"`
	Colors   Colors            `toml:"colors"`
	Commands map[string]string `toml:"commands"`

	// Files that were loaded, in order (not from TOML)
	Sources []string `toml:"-"`
}

type Format struct {
	Indent       *int   `toml:"indent"`
	CommandWidth *int   `toml:"command_width"`
	ModuleWidth  *int   `toml:"module_width"`
	Color        string `toml:"color"`
}

type Colors struct {
	Command     *string `toml:"command"`
	Custom      *string `toml:"custom"`
	Module      *string `toml:"module"`
	Description *string `toml:"description"`
}

// Validate checks the format settings for errors.
func (c *Config) Validate() error {
	widths := []struct {
		name  string
		value *int
	}{
		{"indent", c.Format.Indent},
		{"command_width", c.Format.CommandWidth},
		{"module_width", c.Format.ModuleWidth},
	}
	for _, w := range widths {
		if w.value != nil && *w.value < 0 {
			return fmt.Errorf("format.%s: must not be negative, got %d", w.name, *w.value)
		}
	}

	switch c.Format.Color {
	case "", colorAuto, colorAlways, colorNever:
	default:
		return fmt.Errorf("format.color: %q is not one of auto, always, never", c.Format.Color)
	}
	return nil
}

// defaultConfig returns the settings used when no file is found.
func defaultConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// loadConfig reads the configuration. An explicit path loads only that file.
// Otherwise the global file is loaded first and the local one on top of it;
// either may be missing.
func loadConfig(configPath string) (*Config, error) {
	if configPath != "" {
		cfg, err := loadConfigFile(configPath)
		if err != nil {
			return nil, err
		}
		cfg.Sources = []string{configPath}
		applyDefaults(cfg)
		return cfg, nil
	}

	cfg := &Config{Commands: make(map[string]string)}

	// 1. Global config (~/.config/vepretty/pretty.toml)
	if home, err := os.UserHomeDir(); err == nil {
		globalPath := filepath.Join(home, ".config", "vepretty", "pretty.toml")
		if err := mergeFile(cfg, globalPath); err != nil {
			return nil, err
		}
	}

	// 2. Local config (./pretty.toml)
	if err := mergeFile(cfg, "pretty.toml"); err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	return cfg, nil
}

// mergeFile overlays path onto cfg. A missing file is not an error.
func mergeFile(cfg *Config, path string) error {
	overlay, err := loadConfigFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	mergeConfig(cfg, overlay)
	cfg.Sources = append(cfg.Sources, path)
	return nil
}

func loadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	if cfg.Commands == nil {
		cfg.Commands = make(map[string]string)
	}
	return &cfg, nil
}

// mergeConfig copies every key set in overlay onto base.
func mergeConfig(base, overlay *Config) {
	if overlay.Format.Indent != nil {
		base.Format.Indent = overlay.Format.Indent
	}
	if overlay.Format.CommandWidth != nil {
		base.Format.CommandWidth = overlay.Format.CommandWidth
	}
	if overlay.Format.ModuleWidth != nil {
		base.Format.ModuleWidth = overlay.Format.ModuleWidth
	}
	if overlay.Format.Color != "" {
		base.Format.Color = overlay.Format.Color
	}

	if overlay.Colors.Command != nil {
		base.Colors.Command = overlay.Colors.Command
	}
	if overlay.Colors.Custom != nil {
		base.Colors.Custom = overlay.Colors.Custom
	}
	if overlay.Colors.Module != nil {
		base.Colors.Module = overlay.Colors.Module
	}
	if overlay.Colors.Description != nil {
		base.Colors.Description = overlay.Colors.Description
	}

	if base.Commands == nil {
		base.Commands = make(map[string]string)
	}
	for name, c := range overlay.Commands {
		base.Commands[name] = c
	}
}

func applyDefaults(cfg *Config) {
	setInt(&cfg.Format.Indent, defaultIndent)
	setInt(&cfg.Format.CommandWidth, defaultCommandWidth)
	setInt(&cfg.Format.ModuleWidth, defaultModuleWidth)
	if cfg.Format.Color == "" {
		cfg.Format.Color = colorAuto
	}

	setString(&cfg.Colors.Command, "green")
	setString(&cfg.Colors.Custom, "yellow")
	setString(&cfg.Colors.Module, "cyan")
	setString(&cfg.Colors.Description, "")

	if cfg.Commands == nil {
		cfg.Commands = make(map[string]string)
	}
}

func setInt(p **int, v int) {
	if *p == nil {
		*p = &v
	}
}

func setString(p **string, v string) {
	if *p == nil {
		*p = &v
	}
}
