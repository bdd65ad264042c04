package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fishrun/internal/core"
	"github.com/vovakirdan/fishrun/internal/registry"
	"github.com/vovakirdan/fishrun/internal/storage"
	"github.com/vovakirdan/fishrun/internal/telemetry"
)

var (
	flagSimFrames int
	flagSimDt     float64
	flagSimScript string
	flagSimGame   string
	flagSimSave   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a seeded game headlessly",
	Long: `Run the simulation without a terminal and print a summary.

With the same --seed, --dt and input, the result is identical on every
run. Without --script the player holds Right for --frames frames.

Script format (YAML):
  segments:
    - keys: [right]
      frames: 120
    - keys: [right, up]
      frames: 12

Examples:
  fishrun sim --seed 42
  fishrun sim --seed 42 --script ./jumpy.yaml --log-level debug
  fishrun sim --game fishrun_strict --frames 3600 --save`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimFrames, "frames", 600, "Frames to simulate without a script")
	simCmd.Flags().Float64Var(&flagSimDt, "dt", 1.0/60, "Seconds per frame")
	simCmd.Flags().StringVar(&flagSimScript, "script", "", "YAML input script")
	simCmd.Flags().StringVar(&flagSimGame, "game", "fishrun", "Game mode to simulate")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Store the run in the scores database")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// simResult is the outcome of a headless run.
type simResult struct {
	Frames  int
	State   core.GameState
	Summary core.RunSummary
	Events  map[core.EventKind]int
}

// simulate resets game with seed and feeds it frames until they run out or
// the game ends.
func simulate(game registry.Game, seed int64, frames []core.InputFrame, events *telemetry.EventLogger) simResult {
	game.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})

	res := simResult{
		State:  game.State(),
		Events: make(map[core.EventKind]int),
	}
	for _, f := range frames {
		if res.State.GameOver {
			break
		}
		step := game.Step(f)
		res.Frames++
		res.State = step.State
		for _, e := range step.Events {
			res.Events[e.Kind]++
		}
		events.Log(step.Events)
	}

	if r, ok := game.(registry.Reporter); ok {
		res.Summary = r.Summary()
	}
	return res
}

func formatEvents(counts map[core.EventKind]int) string {
	if len(counts) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(counts))
	for kind, n := range counts {
		parts = append(parts, fmt.Sprintf("%s=%d", kind, n))
	}
	sort.Strings(parts)
	return strings.Join(parts, " ")
}

func runSim(_ *cobra.Command, _ []string) error {
	if flagSimDt <= 0 {
		return fmt.Errorf("--dt must be positive")
	}
	if err := applyGameFlags(); err != nil {
		return err
	}

	script := HoldRight(flagSimFrames)
	if flagSimScript != "" {
		data, err := os.ReadFile(flagSimScript)
		if err != nil {
			return fmt.Errorf("reading script: %w", err)
		}
		if script, err = ParseScript(data); err != nil {
			return err
		}
	}

	game, err := registry.Create(flagSimGame)
	if err != nil {
		return err
	}

	logger, err := newLogger(os.Stderr, "sim")
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Headless runs log every event
	events := telemetry.NewEventLogger(logger, 1e6, 1e6)
	res := simulate(game, seed, script.Expand(flagSimDt), events)
	if f, ok := game.(interface{ Err() error }); ok && f.Err() != nil {
		return f.Err()
	}

	fmt.Printf("Game:      %s\n", game.ID())
	fmt.Printf("Seed:      %d\n", seed)
	fmt.Printf("Frames:    %d\n", res.Frames)
	fmt.Printf("Score:     %d\n", res.State.Score)
	fmt.Printf("Lives:     %d\n", res.State.Lives)
	fmt.Printf("Distance:  %.0fm\n", res.Summary.Distance/10)
	fmt.Printf("Game over: %v\n", res.State.GameOver)
	fmt.Printf("Events:    %s\n", formatEvents(res.Events))

	if !flagSimSave {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	id, err := store.SaveRun(storage.LocalPlayer, res.Summary)
	if err != nil {
		return err
	}
	logger.Info("Run saved", "id", id)
	return nil
}
