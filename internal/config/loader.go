package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadKokaton loads Kokaton configuration.
// Search order: customPath -> ~/.arcade/configs/kokaton.yaml -> ./configs/kokaton.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names.
func LoadKokaton(customPath string) (KokatonConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return KokatonConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseKokaton(data)
		if err != nil {
			return KokatonConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("kokaton.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseKokaton(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/kokaton.yaml"); err == nil {
		if cfg, err := ParseKokaton(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseKokaton(defaultKokatonYAML)
	if err != nil {
		return DefaultKokatonConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseKokaton decodes YAML over the hardcoded defaults.
func ParseKokaton(data []byte) (KokatonConfig, error) {
	cfg := DefaultKokatonConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return KokatonConfig{}, err
	}
	return cfg, nil
}

// MarshalKokaton encodes a config as YAML, used to snapshot it into replays.
func MarshalKokaton(cfg KokatonConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
