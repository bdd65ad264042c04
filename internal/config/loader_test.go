package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := decodeFishRun(defaultFishRunYAML)
	if err != nil {
		t.Fatalf("embedded default failed to decode: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultFishRunConfig()) {
		t.Errorf("embedded YAML and DefaultFishRunConfig differ:\nyaml: %+v\ngo:   %+v", cfg, DefaultFishRunConfig())
	}
}

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultFishRunConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoadFishRunCustomPathOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("physics:\n  strict_landing: true\nenemies:\n  spawn_delay: 1.0\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFishRun(path)
	if err != nil {
		t.Fatalf("LoadFishRun() failed: %v", err)
	}
	if !cfg.Physics.StrictLanding {
		t.Error("strict_landing should be overridden")
	}
	if cfg.Enemies.SpawnDelay != 1.0 {
		t.Errorf("spawn_delay = %v, expected 1.0", cfg.Enemies.SpawnDelay)
	}
	// Untouched keys keep their defaults
	if cfg.Physics.Gravity != 3.0 || len(cfg.Platforms.Seeds) != 4 {
		t.Error("keys absent from the file should keep default values")
	}
}

func TestLoadFishRunCustomPathErrors(t *testing.T) {
	if _, err := LoadFishRun(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom file should return an error")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("gameplay:\n  lives: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFishRun(bad)
	if err == nil || !strings.Contains(err.Error(), "lives") {
		t.Errorf("invalid config should fail validation, got %v", err)
	}
}

func TestValidateRejectsBadSeeds(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FishRunConfig)
		want   string
	}{
		{"unknown size", func(c *FishRunConfig) { c.Platforms.Seeds[0].Size = "huge" }, "unknown size"},
		{"unknown kind", func(c *FishRunConfig) { c.Platforms.Seeds[0].Kind = "lava" }, "unknown kind"},
		{"no seeds", func(c *FishRunConfig) { c.Platforms.Seeds = nil }, "seed"},
		{"zero weights", func(c *FishRunConfig) { c.Platforms.Weights = KindWeights{} }, "weights"},
		{"no band", func(c *FishRunConfig) { c.World.SpawnMarginY = 300 }, "band"},
		{"no species", func(c *FishRunConfig) { c.Enemies.Species = nil }, "species"},
		{"unknown progression", func(c *FishRunConfig) { c.Difficulty.Progression.Type = "level" }, "progression"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFishRunConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tc.want)
			}
		})
	}
}

func TestApplyFishRunPreset(t *testing.T) {
	cfg := DefaultFishRunConfig()
	ApplyFishRunPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset should enable difficulty at 0.7, got %+v", cfg.Difficulty)
	}
	if cfg.Gameplay.Lives != 2 {
		t.Errorf("hard preset lives = %d, expected 2", cfg.Gameplay.Lives)
	}

	ApplyFishRunPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	before := DefaultFishRunConfig()
	after := DefaultFishRunConfig()
	ApplyFishRunPreset(&after, "")
	if !reflect.DeepEqual(before, after) {
		t.Error("empty preset should not change the config")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("easy") != DifficultyEasy {
		t.Error("ParsePreset(easy) failed")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should parse to empty")
	}
}
