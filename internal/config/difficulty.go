package config

import (
	"math"

	"github.com/vovakirdan/fishrun/internal/core"
)

// Lower bound for the scaled enemy spawn delay in seconds.
const minSpawnDelay = 0.25

// Progress is how far a run has come, the input to difficulty scaling.
type Progress struct {
	Score   int     // Fish collected
	Elapsed float64 // Seconds of simulated play
}

// DifficultyManager turns run progress into a difficulty level in [0, 1]
// and scales enemy speed and spawn delay by it.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: core.ClampF(cfg.InitialLevel, 0, 1),
	}
}

// SetInitialLevel overrides the starting level; values are clamped to [0, 1].
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = core.ClampF(level, 0, 1)
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressionNone
}

// Level returns the difficulty level for p. Disabled difficulty is level 0,
// which leaves the configured constants untouched.
func (d *DifficultyManager) Level(p Progress) float64 {
	if !d.cfg.Enabled {
		return 0
	}

	var done float64
	switch d.cfg.Progression.Type {
	case ProgressionScore:
		done = float64(p.Score)
	case ProgressionTime:
		done = p.Elapsed
	default:
		return d.initialLevel
	}

	maxAt := d.cfg.Progression.MaxAt
	if maxAt <= 0 {
		maxAt = 1
	}
	return d.initialLevel + core.ClampF(done/maxAt, 0, 1)*(1-d.initialLevel)
}

// Speed scales an enemy speed from base up to base * (1 + speed_multiplier).
func (d *DifficultyManager) Speed(base float64, p Progress) float64 {
	return base * (1 + d.Level(p)*d.cfg.Scaling.SpeedMultiplier)
}

// SpawnDelay shortens the enemy spawn delay as the level rises, never below
// minSpawnDelay unless base itself is shorter.
func (d *DifficultyManager) SpawnDelay(base float64, p Progress) float64 {
	level := d.Level(p)
	if level == 0 {
		return base
	}
	floor := math.Min(base, minSpawnDelay)
	return math.Max(base-level*d.cfg.Scaling.SpawnDelayReduction, floor)
}
