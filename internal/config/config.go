package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Environment overrides for file locations.
const (
	EnvConfigFile   = "WUT_CONFIG_FILE"
	EnvCommandsFile = "WUT_COMMANDS_FILE"
)

// DefaultShell interprets stored commands when no shell is configured:
// sh, or cmd on Windows.
var DefaultShell = defaultShell()

func defaultShell() string {
	if runtime.GOOS == "windows" {
		return "cmd"
	}
	return "sh"
}

// DefaultPickerHeight is the number of entries the picker shows at once.
const DefaultPickerHeight = 10

// PickerConfig holds interactive picker settings
type PickerConfig struct {
	Height       int  `toml:"height"`       // visible rows
	Descriptions bool `toml:"descriptions"` // show descriptions under entries
}

// ThemeConfig holds UI color settings
type ThemeConfig struct {
	Name    string `toml:"name"` // preset family: none, default, dracula, nord, gruvbox, catppuccin
	Mode    string `toml:"mode"` // auto, light, dark
	Primary string `toml:"primary"`
	Accent  string `toml:"accent"`
	Success string `toml:"success"`
	Error   string `toml:"error"`
	Muted   string `toml:"muted"`
	Normal  string `toml:"normal"`
	Info    string `toml:"info"`
}

// Config holds the wut preferences
type Config struct {
	Shell  string       `toml:"shell"`
	Picker PickerConfig `toml:"picker"`
	Theme  ThemeConfig  `toml:"theme"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Shell: DefaultShell,
		Picker: PickerConfig{
			Height:       DefaultPickerHeight,
			Descriptions: true,
		},
		Theme: ThemeConfig{
			Name: "default",
			Mode: "auto",
		},
	}
}

// Dir returns the wut config directory: $XDG_CONFIG_HOME/wut, or ~/.config/wut.
func Dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "wut"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "wut"), nil
}

// Path returns the path to the preferences file.
func Path() (string, error) {
	if p := os.Getenv(EnvConfigFile); p != "" {
		return p, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// CommandsPath returns the path to the commands file.
func CommandsPath() (string, error) {
	if p := os.Getenv(EnvCommandsFile); p != "" {
		return p, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "commands.toml"), nil
}

// rawConfig is used for TOML parsing so unset booleans can be told apart from false
type rawConfig struct {
	Shell  string `toml:"shell"`
	Picker struct {
		Height       int   `toml:"height"`
		Descriptions *bool `toml:"descriptions"`
	} `toml:"picker"`
	Theme ThemeConfig `toml:"theme"`
}

// Load reads the preferences file.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads preferences from path, filling unset values with defaults.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Default(), fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg := Default()
	if raw.Shell != "" {
		cfg.Shell = raw.Shell
	}
	if raw.Picker.Height != 0 {
		cfg.Picker.Height = raw.Picker.Height
	}
	if raw.Picker.Descriptions != nil {
		cfg.Picker.Descriptions = *raw.Picker.Descriptions
	}
	if raw.Theme.Name != "" {
		cfg.Theme.Name = raw.Theme.Name
	}
	if raw.Theme.Mode != "" {
		cfg.Theme.Mode = raw.Theme.Mode
	}
	cfg.Theme.Primary = raw.Theme.Primary
	cfg.Theme.Accent = raw.Theme.Accent
	cfg.Theme.Success = raw.Theme.Success
	cfg.Theme.Error = raw.Theme.Error
	cfg.Theme.Muted = raw.Theme.Muted
	cfg.Theme.Normal = raw.Theme.Normal
	cfg.Theme.Info = raw.Theme.Info

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

const defaultConfig = `# wut configuration

# Shell used to interpret stored commands ("sh -c <command>").
# Commands may use pipes, globs and environment variables.
# shell = "sh"

# Interactive picker ("wut run" without a selector)
[picker]
# Number of entries visible at once; the list scrolls beyond that.
height = 10
# Show each command's description under its title.
descriptions = true

# Colors
[theme]
# Preset: none, default, dracula, nord, gruvbox, catppuccin
name = "default"
# auto picks the light or dark variant from the terminal background.
mode = "auto"
# Individual overrides (ANSI 256 numbers or hex):
# accent = "212"
# muted = "240"

# Per-repository overrides live in <repo>/.wut.toml and may set
# "shell" and the [picker] table.
`

// Init creates a default config file.
// If force is true, overwrites an existing file.
// Returns the path and whether the file was written.
func Init(force bool) (string, bool, error) {
	path, err := Path()
	if err != nil {
		return "", false, err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return path, false, nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", false, err
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return "", false, err
	}
	return path, true, nil
}

type configKey struct{}

type workDirKey struct{}

// WithConfig attaches the effective configuration to the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext returns the configuration attached to ctx, or defaults.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(configKey{}).(*Config); ok && cfg != nil {
		return cfg
	}
	cfg := Default()
	return &cfg
}

// WithWorkDir attaches the invocation's working directory to the context.
func WithWorkDir(ctx context.Context, dir string) context.Context {
	return context.WithValue(ctx, workDirKey{}, dir)
}

// WorkDirFromContext returns the working directory attached to ctx.
// Falls back to os.Getwd.
func WorkDirFromContext(ctx context.Context) string {
	if dir, ok := ctx.Value(workDirKey{}).(string); ok && dir != "" {
		return dir
	}
	dir, _ := os.Getwd()
	return dir
}
