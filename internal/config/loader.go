package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFishRun loads FishRun configuration.
// Search order: customPath -> ~/.fishrun/configs/fishrun.yaml -> ./configs/fishrun.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names. Only a custom path reports errors; the other locations are
// skipped when unreadable or invalid.
func LoadFishRun(customPath string) (FishRunConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FishRunConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decodeFishRun(data)
		if err != nil {
			return FishRunConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("fishrun.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decodeFishRun(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "fishrun.yaml")); err == nil {
		if cfg, err := decodeFishRun(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decodeFishRun(defaultFishRunYAML)
	if err != nil {
		return DefaultFishRunConfig(), nil
	}
	return cfg, nil
}

func decodeFishRun(data []byte) (FishRunConfig, error) {
	cfg := DefaultFishRunConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FishRunConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return FishRunConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fishrun", "configs", filename)
}

// ApplyFishRunPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyFishRunPreset(cfg *FishRunConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Gameplay.InvulnerableSecs = 2.5
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Gameplay.InvulnerableSecs = 1.0
	}
}
