package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func TestLoadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "pretty.toml")
	writeConfig(t, configPath, `
[format]
indent = 4
command_width = 8
color = "never"

[colors]
custom = "red"
description = "white"

[commands]
CC = "green"
LD = "magenta"
`)

	cfg, err := loadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, 4, *cfg.Format.Indent)
	assert.Equal(t, 8, *cfg.Format.CommandWidth)
	assert.Equal(t, colorNever, cfg.Format.Color)
	assert.Equal(t, "red", *cfg.Colors.Custom)
	assert.Equal(t, "white", *cfg.Colors.Description)
	assert.Equal(t, map[string]string{"CC": "green", "LD": "magenta"}, cfg.Commands)
	assert.Equal(t, []string{configPath}, cfg.Sources)

	// Defaults
	assert.Equal(t, defaultModuleWidth, *cfg.Format.ModuleWidth)
	assert.Equal(t, "green", *cfg.Colors.Command)
	assert.Equal(t, "cyan", *cfg.Colors.Module)
}

func TestLoadConfigZeroValuesKept(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "pretty.toml")
	writeConfig(t, configPath, `
[format]
indent = 0
module_width = 0

[colors]
command = ""
`)

	cfg, err := loadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, 0, *cfg.Format.Indent)
	assert.Equal(t, 0, *cfg.Format.ModuleWidth)
	assert.Equal(t, "", *cfg.Colors.Command)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig("/nonexistent/path/pretty.toml")
	assert.Error(t, err)
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "pretty.toml")
	writeConfig(t, configPath, "invalid toml [[[")

	_, err := loadConfig(configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestLoadConfigInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"negative indent", "[format]\nindent = -1\n", "format.indent"},
		{"negative command width", "[format]\ncommand_width = -2\n", "format.command_width"},
		{"negative module width", "[format]\nmodule_width = -3\n", "format.module_width"},
		{"bad color mode", "[format]\ncolor = \"sometimes\"\n", "format.color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "pretty.toml")
			writeConfig(t, configPath, tt.content)

			_, err := loadConfig(configPath)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadConfigNoFiles(t *testing.T) {
	isolate(t)

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Empty(t, cfg.Sources)
	assert.Equal(t, defaultIndent, *cfg.Format.Indent)
	assert.Equal(t, defaultCommandWidth, *cfg.Format.CommandWidth)
	assert.Equal(t, defaultModuleWidth, *cfg.Format.ModuleWidth)
	assert.Equal(t, colorAuto, cfg.Format.Color)
	assert.Equal(t, "yellow", *cfg.Colors.Custom)
	assert.NotNil(t, cfg.Commands)
}

func TestLoadConfigHierarchy(t *testing.T) {
	home, work := isolate(t)

	globalPath := filepath.Join(home, ".config", "vepretty", "pretty.toml")
	writeConfig(t, globalPath, `
[format]
indent = 1
command_width = 10

[colors]
module = "blue"

[commands]
CC = "green"
AR = "blue"
`)
	writeConfig(t, filepath.Join(work, "pretty.toml"), `
[format]
command_width = 4

[commands]
CC = "red"
`)

	cfg, err := loadConfig("")
	require.NoError(t, err)

	assert.Equal(t, []string{globalPath, "pretty.toml"}, cfg.Sources)
	assert.Equal(t, 1, *cfg.Format.Indent)       // global
	assert.Equal(t, 4, *cfg.Format.CommandWidth) // local overrides global
	assert.Equal(t, "blue", *cfg.Colors.Module)  // global
	assert.Equal(t, defaultModuleWidth, *cfg.Format.ModuleWidth)
	assert.Equal(t, map[string]string{"CC": "red", "AR": "blue"}, cfg.Commands)
}

func TestLoadConfigBrokenLocal(t *testing.T) {
	_, work := isolate(t)
	writeConfig(t, filepath.Join(work, "pretty.toml"), "[format\n")

	_, err := loadConfig("")
	assert.Error(t, err)
}

func TestResolveConfigFallsBack(t *testing.T) {
	_, work := isolate(t)
	configPath := filepath.Join(work, "broken.toml")
	writeConfig(t, configPath, "[format]\ncolor = 3\n")
	t.Setenv("VEPRETTY_CONFIG", configPath)

	cfg := resolveConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, defaultIndent, *cfg.Format.Indent)
	assert.Empty(t, cfg.Sources)
}

func TestResolveConfigExplicit(t *testing.T) {
	_, work := isolate(t)
	configPath := filepath.Join(work, "custom.toml")
	writeConfig(t, configPath, "[format]\nindent = 6\n")
	t.Setenv("VEPRETTY_CONFIG", configPath)

	cfg := resolveConfig()
	assert.Equal(t, 6, *cfg.Format.Indent)
	assert.Equal(t, []string{configPath}, cfg.Sources)
}
