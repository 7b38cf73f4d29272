package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// rulesFile is the file name looked up in the config directories.
const rulesFile = "rules.yaml"

// LoadRules loads the engine rules.
// Search order: customPath -> ~/.slide2048/configs/rules.yaml -> ./configs/rules.yaml -> embedded default.
// Files only need to set the keys they change; the rest keep default values.
func LoadRules(customPath string) (RulesConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RulesConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseRules(data)
		if err != nil {
			return RulesConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(rulesFile), filepath.Join("configs", rulesFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseRules(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseRules(defaultRulesYAML)
	if err != nil {
		return DefaultRulesConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseRules decodes YAML over the defaults and validates the result.
func parseRules(data []byte) (RulesConfig, error) {
	cfg := DefaultRulesConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RulesConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RulesConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".slide2048", "configs", filename)
}
