package config

// MergeLocal merges a local per-repo config into a global config,
// returning a new Config without mutating the global.
// Returns global unchanged if local is nil.
func MergeLocal(global *Config, local *LocalConfig) *Config {
	if local == nil {
		return global
	}

	// Theme is global-only and inherited through the shallow copy.
	merged := *global

	if local.Shell != "" {
		merged.Shell = local.Shell
	}
	if local.Picker.Height != 0 {
		merged.Picker.Height = local.Picker.Height
	}
	if local.Picker.Descriptions != nil {
		merged.Picker.Descriptions = *local.Picker.Descriptions
	}

	return &merged
}

// ForRepo returns the effective config for a repository root: the global
// config with the repo's .wut.toml applied on top.
func ForRepo(global *Config, repoPath string) (*Config, error) {
	local, err := LoadLocal(repoPath)
	if err != nil {
		return nil, err
	}
	return MergeLocal(global, local), nil
}
