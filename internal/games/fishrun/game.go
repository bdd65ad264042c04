// Package fishrun adapts the fishrun simulation to the game registry:
// configuration loading, pause handling and terminal rendering. The
// simulation itself lives in the sim subpackage.
package fishrun

import (
	"github.com/vovakirdan/fishrun/internal/assets"
	"github.com/vovakirdan/fishrun/internal/config"
	"github.com/vovakirdan/fishrun/internal/core"
	"github.com/vovakirdan/fishrun/internal/games/fishrun/sim"
	"github.com/vovakirdan/fishrun/internal/registry"
)

const (
	// ID is the registry id of the reference variant.
	ID = "fishrun"
	// StrictID is the registry id of the variant with strict landing.
	StrictID = "fishrun_strict"
)

// Game implements registry.Game on top of a sim.World.
type Game struct {
	id      string
	strict  bool
	world   *sim.World
	atlas   *assets.Atlas
	cfg     config.FishRunConfig
	runtime core.RuntimeConfig
	paused  bool
	err     error // Set when the config or world could not be built
	floor   assets.Handle
	preset  config.DifficultyPreset // Overrides the package preset when set
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names select the
// config file's own difficulty settings.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates the reference variant.
func New() *Game {
	return &Game{id: ID}
}

// NewStrict creates the variant that snaps the player onto platforms.
func NewStrict() *Game {
	return &Game{id: StrictID, strict: true}
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) Title() string {
	if g.strict {
		return "Fish Run (strict landing)"
	}
	return "Fish Run"
}

// Reset rebuilds the world from configuration using runtime.Seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.err = nil

	if g.atlas == nil {
		atlas, err := assets.DefaultAtlas()
		if err != nil {
			g.err = err
			return
		}
		g.atlas = atlas
		g.floor, _ = atlas.Load("floor")
	}

	cfg, err := config.LoadFishRun(configPath)
	if err != nil {
		// Only an explicit path can fail; never swap it for the defaults.
		g.world = nil
		g.err = err
		return
	}
	preset := difficultyPreset
	if g.preset != "" {
		preset = g.preset
	}
	config.ApplyFishRunPreset(&cfg, preset)
	if g.strict {
		cfg.Physics.StrictLanding = true
	}

	world, err := sim.New(cfg, runtime.Seed, g.atlas)
	if err != nil {
		// Sprite tables can disagree with a custom config; retry on defaults
		cfg = config.DefaultFishRunConfig()
		cfg.Physics.StrictLanding = g.strict
		world, err = sim.New(cfg, runtime.Seed, g.atlas)
	}
	g.cfg = cfg
	g.world = world
	g.err = err
}

// Step advances the world by one frame. A frame without Dt uses the
// runtime's fixed tick; long frames are clamped to max_dt.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil || g.world.GameOver() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt := in.Dt
	if dt <= 0 {
		dt = g.runtime.FixedDt()
	}
	if g.cfg.World.MaxDt > 0 && dt > g.cfg.World.MaxDt {
		dt = g.cfg.World.MaxDt
	}

	events := g.world.Step(dt, in)
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{GameOver: true}
	}
	return core.GameState{
		Score:    g.world.Score(),
		Lives:    g.world.Lives(),
		GameOver: g.world.GameOver(),
		Paused:   g.paused,
	}
}

// Summary describes the current run.
func (g *Game) Summary() core.RunSummary {
	s := core.RunSummary{GameID: g.id, Seed: g.runtime.Seed}
	if g.world == nil {
		return s
	}
	stats := g.world.Stats()
	s.Score = g.world.Score()
	s.Distance = g.world.Player().Distance
	s.Elapsed = stats.Elapsed
	s.LivesLeft = g.world.Lives()
	s.Respawns = stats.Respawns
	return s
}

// SetDifficulty selects a preset for this instance only, taking effect on
// the next Reset.
func (g *Game) SetDifficulty(preset string) {
	g.preset = config.ParsePreset(preset)
}

// EnemyCount returns the number of live enemies.
func (g *Game) EnemyCount() int {
	if g.world == nil {
		return 0
	}
	return len(g.world.Enemies())
}

// World exposes the underlying simulation, nil if Reset failed.
func (g *Game) World() *sim.World {
	return g.world
}

// Err reports why the last Reset could not build a world.
func (g *Game) Err() error {
	return g.err
}

var (
	_ registry.Game     = (*Game)(nil)
	_ registry.Reporter = (*Game)(nil)
	_ registry.Tunable  = (*Game)(nil)
)

func init() {
	registry.Register(ID, func() registry.Game { return New() })
	registry.Register(StrictID, func() registry.Game { return NewStrict() })
}
