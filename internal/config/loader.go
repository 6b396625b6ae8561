package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDragon loads Flappy Dragon configuration.
// Search order: customPath -> ~/.dragon/configs/dragon.yaml -> ./configs/dragon.yaml -> embedded default.
// Files are applied over the defaults, so a file may set only the keys it changes.
func LoadDragon(customPath string) (DragonConfig, error) {
	cfg, err := loadDragon(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadDragon(customPath string) (DragonConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DragonConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseDragon(data)
		if err != nil {
			return DragonConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("dragon.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseDragon(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "dragon.yaml")); err == nil {
		if cfg, err := parseDragon(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseDragon(defaultDragonYAML)
	if err != nil {
		return DefaultDragonConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseDragon decodes YAML over the hardcoded defaults.
func parseDragon(data []byte) (DragonConfig, error) {
	cfg := DefaultDragonConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func (c DragonConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dragon", "configs", filename)
}
