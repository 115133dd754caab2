package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LocalConfigFileName is the per-repo override file, read from the repo root.
const LocalConfigFileName = ".wut.toml"

// LocalConfig holds per-repo overrides from .wut.toml.
// Pointer fields and zero-value strings indicate "not set" (inherit from global).
type LocalConfig struct {
	Shell  string      `toml:"shell"`
	Picker LocalPicker `toml:"picker"`
}

// LocalPicker holds local picker overrides
type LocalPicker struct {
	Height       int   `toml:"height"`
	Descriptions *bool `toml:"descriptions"`
}

// LoadLocal reads a per-repo .wut.toml from the given repo path.
// Returns nil (no error) if the file doesn't exist.
// Returns an error only on parse or validation failure.
func LoadLocal(repoPath string) (*LocalConfig, error) {
	configFile := filepath.Join(repoPath, LocalConfigFileName)

	data, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read local config %s: %w", configFile, err)
	}

	var local LocalConfig
	if err := toml.Unmarshal(data, &local); err != nil {
		return nil, fmt.Errorf("failed to parse local config %s: %w", configFile, err)
	}

	if local.Picker.Height != 0 {
		if err := validatePicker(local.Picker.Height, "picker.height"); err != nil {
			return nil, fmt.Errorf("%s: %w", configFile, err)
		}
	}

	return &local, nil
}
