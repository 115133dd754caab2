// Package config handles loading and validation of wut preferences.
//
// Preferences are read from $XDG_CONFIG_HOME/wut/config.toml (falling back to
// ~/.config/wut/config.toml). The commands file lives next to it as
// commands.toml and is owned by the store package; config only resolves its
// path.
//
// # Configuration Sources (highest priority first)
//
//   - <repo>/.wut.toml: per-repository shell and picker overrides
//   - WUT_CONFIG_FILE / WUT_COMMANDS_FILE: alternate file locations
//   - Config file settings
//   - Default values
//
// # Key Settings
//
//   - shell: program that interprets stored commands (default: "sh")
//   - picker.height: visible picker rows, 1-100 (default: 10)
//   - picker.descriptions: show descriptions in the picker (default: true)
//   - theme.name / theme.mode: color preset and light/dark selection
package config
