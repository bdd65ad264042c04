package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FixedDt returns the frame time for the configured tick rate.
func (c RuntimeConfig) FixedDt() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// EventKind classifies simulation events. The set is closed so it can be
// used as a bounded metric label.
type EventKind string

const (
	EventPickup            EventKind = "pickup"
	EventRespawn           EventKind = "respawn"
	EventPlacementFallback EventKind = "placement_fallback"
	EventEnemySpawn        EventKind = "enemy_spawn"
	EventEnemyRecycle      EventKind = "enemy_recycle"
	EventHit               EventKind = "hit"
	EventGameOver          EventKind = "game_over"
)

// EventKinds lists every EventKind.
var EventKinds = []EventKind{
	EventPickup,
	EventRespawn,
	EventPlacementFallback,
	EventEnemySpawn,
	EventEnemyRecycle,
	EventHit,
	EventGameOver,
}

// Event is something notable that happened during a tick.
type Event struct {
	Kind  EventKind
	Index int    // Entity index the event refers to, -1 if none
	Tag   string // Optional detail such as platform kind or enemy species
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// RunSummary describes a finished or abandoned run for persistence.
type RunSummary struct {
	GameID    string
	Seed      int64
	Score     int
	Distance  float64 // World units scrolled
	Elapsed   float64 // Simulated seconds
	LivesLeft int
	Respawns  int
}
