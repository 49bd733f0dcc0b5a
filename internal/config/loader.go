package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadHoops loads basketball toss configuration.
// Search order: customPath -> ~/.arcade/configs/hoops.yaml -> ./configs/hoops.yaml -> embedded default
func LoadHoops(customPath string) (HoopsConfig, error) {
	cfg, err := load("hoops.yaml", customPath, defaultHoopsYAML, DefaultHoopsConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadSpecular loads lighting demo configuration.
// Search order: customPath -> ~/.arcade/configs/specular.yaml -> ./configs/specular.yaml -> embedded default
func LoadSpecular(customPath string) (SpecularConfig, error) {
	cfg, err := load("specular.yaml", customPath, defaultSpecularYAML, DefaultSpecularConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// load walks the search order for one config file. A custom path that cannot be
// read or parsed is an error; every other source silently falls through.
// Files are decoded over the defaults so a partial YAML only overrides what it names.
func load[T any](filename, customPath string, embedded []byte, fallback func() T) (T, error) {
	cfg := fallback()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = fallback()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = fallback()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
