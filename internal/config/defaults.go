package config

import (
	_ "embed"
)

//go:embed defaults/fishrun.yaml
var defaultFishRunYAML []byte

// DefaultFishRunConfig returns the hardcoded FishRun configuration.
// It mirrors defaults/fishrun.yaml and is used when the embedded copy fails to parse.
func DefaultFishRunConfig() FishRunConfig {
	return FishRunConfig{
		World: FishRunWorld{
			ScreenWidth:          800,
			ScreenHeight:         600,
			SpawnMarginY:         100,
			MaxPlacementAttempts: 64,
			MaxDt:                0.1,
		},
		Physics: FishRunPhysics{
			Gravity:        3.0,
			JumpImpulse:    380,
			MoveSpeed:      200,
			StrictLanding:  false,
			StandTolerance: 1.0,
			JumpCut:        false,
			JumpCutFactor:  0.5,
		},
		Player: FishRunPlayer{
			StartX: -150,
			StartY: 120,
			Width:  48,
			Height: 48,
			Frames: []string{"ubi1", "ubi2", "ubi3", "ubi4"},
		},
		Platforms: FishRunPlatforms{
			Sizes: map[string]SizeClassConfig{
				"small":  {Width: 100, Height: 20},
				"medium": {Width: 160, Height: 24},
				"large":  {Width: 220, Height: 28},
			},
			Seeds: []PlatformSeed{
				{X: -150, Y: -200, Size: "small", Kind: "plain"},
				{X: 510, Y: -100, Size: "small", Kind: "fish"},
				{X: 800, Y: -150, Size: "medium", Kind: "enemy"},
				{X: 1060, Y: 50, Size: "small", Kind: "fish"},
			},
			Weights:                 KindWeights{Fish: 5, Enemy: 3, Plain: 2},
			CollectiblesPerPlatform: 3,
			CollectibleSize:         16,
			CollectibleLift:         6,
		},
		Enemies: FishRunEnemies{
			SpawnDelay: 3.0,
			MaxAlive:   0,
			Species: []EnemySpecies{
				{Name: "gull", Width: 40, Height: 24, Speed: 60},
				{Name: "bat", Width: 32, Height: 20, Speed: 90},
			},
		},
		Gameplay: FishRunGameplay{
			Lives:            3,
			InvulnerableSecs: 1.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressionTime,
				MaxAt: 180,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:     1.0,
				SpawnDelayReduction: 2.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "fishrun", "fishrun_strict":
		return defaultFishRunYAML
	default:
		return nil
	}
}
