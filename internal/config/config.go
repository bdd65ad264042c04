// Package config provides YAML-based game configuration loading and
// difficulty management for fishrun.
package config

import (
	"errors"
	"fmt"
)

// FishRunConfig contains all configuration for the FishRun game.
// World units are screen-centered with y pointing up.
type FishRunConfig struct {
	World      FishRunWorld     `yaml:"world"`
	Physics    FishRunPhysics   `yaml:"physics"`
	Player     FishRunPlayer    `yaml:"player"`
	Platforms  FishRunPlatforms `yaml:"platforms"`
	Enemies    FishRunEnemies   `yaml:"enemies"`
	Gameplay   FishRunGameplay  `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FishRunWorld defines the visible world and placement limits.
type FishRunWorld struct {
	ScreenWidth          float64 `yaml:"screen_width"`
	ScreenHeight         float64 `yaml:"screen_height"`
	SpawnMarginY         float64 `yaml:"spawn_margin_y"`         // Excluded from the top and bottom of the spawn band
	MaxPlacementAttempts int     `yaml:"max_placement_attempts"` // Rejection sampling cap per respawn
	MaxDt                float64 `yaml:"max_dt"`                 // Longest frame the platform will feed the world
}

// FishRunPhysics defines player physics parameters.
type FishRunPhysics struct {
	Gravity        float64 `yaml:"gravity"`
	JumpImpulse    float64 `yaml:"jump_impulse"`
	MoveSpeed      float64 `yaml:"move_speed"`
	StrictLanding  bool    `yaml:"strict_landing"`
	StandTolerance float64 `yaml:"stand_tolerance"`
	JumpCut        bool    `yaml:"jump_cut"`
	JumpCutFactor  float64 `yaml:"jump_cut_factor"`
}

// FishRunPlayer defines the player body and sprite frames.
type FishRunPlayer struct {
	StartX float64  `yaml:"start_x"`
	StartY float64  `yaml:"start_y"`
	Width  float64  `yaml:"width"`
	Height float64  `yaml:"height"`
	Frames []string `yaml:"frames"`
}

// SizeClassConfig is the fixed size of one platform size class.
type SizeClassConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlatformSeed is the initial placement of one platform.
type PlatformSeed struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Size string  `yaml:"size"`
	Kind string  `yaml:"kind"`
}

// KindWeights are the discrete weights used when retyping a platform.
type KindWeights struct {
	Fish  int `yaml:"fish"`
	Enemy int `yaml:"enemy"`
	Plain int `yaml:"plain"`
}

// Total returns the sum of all weights.
func (w KindWeights) Total() int {
	return w.Fish + w.Enemy + w.Plain
}

// FishRunPlatforms defines platform size classes, seeds and collectibles.
type FishRunPlatforms struct {
	Sizes                   map[string]SizeClassConfig `yaml:"sizes"`
	Seeds                   []PlatformSeed             `yaml:"seeds"`
	Weights                 KindWeights                `yaml:"weights"`
	CollectiblesPerPlatform int                        `yaml:"collectibles_per_platform"`
	CollectibleSize         float64                    `yaml:"collectible_size"`
	CollectibleLift         float64                    `yaml:"collectible_lift"` // Gap between platform top and collectible bottom
}

// EnemySpecies describes one kind of flying enemy.
type EnemySpecies struct {
	Name   string  `yaml:"name"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Leftward flight speed in units per second
}

// FishRunEnemies defines enemy spawning.
type FishRunEnemies struct {
	SpawnDelay float64        `yaml:"spawn_delay"`
	MaxAlive   int            `yaml:"max_alive"` // 0 = unlimited
	Species    []EnemySpecies `yaml:"species"`
}

// FishRunGameplay defines lives and hit recovery.
type FishRunGameplay struct {
	Lives            int     `yaml:"lives"`
	InvulnerableSecs float64 `yaml:"invulnerable_secs"`
}

// Size classes and platform kinds accepted in seeds.
var (
	SizeClassNames    = []string{"small", "medium", "large"}
	PlatformKindNames = []string{"plain", "fish", "enemy"}
)

// Validate checks the configuration for values the simulation cannot use.
func (c FishRunConfig) Validate() error {
	var errs []error

	if c.World.ScreenWidth <= 0 || c.World.ScreenHeight <= 0 {
		errs = append(errs, errors.New("world size must be positive"))
	}
	if 2*c.World.SpawnMarginY >= c.World.ScreenHeight {
		errs = append(errs, errors.New("spawn_margin_y leaves no vertical band"))
	}
	if c.World.MaxPlacementAttempts <= 0 {
		errs = append(errs, errors.New("max_placement_attempts must be positive"))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if len(c.Player.Frames) == 0 {
		errs = append(errs, errors.New("player needs at least one frame"))
	}
	for _, name := range SizeClassNames {
		sz, ok := c.Platforms.Sizes[name]
		if !ok {
			errs = append(errs, fmt.Errorf("missing size class %q", name))
			continue
		}
		if sz.Width <= 0 || sz.Height <= 0 {
			errs = append(errs, fmt.Errorf("size class %q must be positive", name))
		}
	}
	if len(c.Platforms.Seeds) == 0 {
		errs = append(errs, errors.New("at least one platform seed is required"))
	}
	for i, s := range c.Platforms.Seeds {
		if _, ok := c.Platforms.Sizes[s.Size]; !ok {
			errs = append(errs, fmt.Errorf("seed %d: unknown size %q", i, s.Size))
		}
		if !contains(PlatformKindNames, s.Kind) {
			errs = append(errs, fmt.Errorf("seed %d: unknown kind %q", i, s.Kind))
		}
	}
	w := c.Platforms.Weights
	if w.Fish < 0 || w.Enemy < 0 || w.Plain < 0 || w.Total() == 0 {
		errs = append(errs, errors.New("platform weights must be non-negative and not all zero"))
	}
	if c.Platforms.CollectiblesPerPlatform < 0 {
		errs = append(errs, errors.New("collectibles_per_platform must not be negative"))
	}
	if c.Enemies.SpawnDelay <= 0 {
		errs = append(errs, errors.New("enemy spawn_delay must be positive"))
	}
	if len(c.Enemies.Species) == 0 {
		errs = append(errs, errors.New("at least one enemy species is required"))
	}
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, errors.New("lives must be positive"))
	}
	switch c.Difficulty.Progression.Type {
	case ProgressionScore, ProgressionTime, ProgressionNone:
	default:
		errs = append(errs, fmt.Errorf("unknown difficulty progression %q", c.Difficulty.Progression.Type))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid fishrun config: %w", err)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// Progression types.
const (
	ProgressionScore = "score" // max_at counts fish
	ProgressionTime  = "time"  // max_at counts seconds of play
	ProgressionNone  = "none"  // level stays at initial_level
)

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`
	MaxAt float64 `yaml:"max_at"` // Fish or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier     float64 `yaml:"speed_multiplier"`      // Added to enemy speed at max difficulty
	SpawnDelayReduction float64 `yaml:"spawn_delay_reduction"` // Seconds removed from the spawn delay at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	}
	return ""
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
