package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fishrun/internal/config"
	"github.com/vovakirdan/fishrun/internal/core"
	"github.com/vovakirdan/fishrun/internal/games/fishrun"
	"github.com/vovakirdan/fishrun/internal/platform/tui"
	"github.com/vovakirdan/fishrun/internal/registry"
	"github.com/vovakirdan/fishrun/internal/storage"
	"github.com/vovakirdan/fishrun/internal/telemetry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game defaults to fishrun.

Controls:
  Right/D        - Run
  Left/A         - Walk back (only while on a platform)
  Up/W/Space     - Jump (release early for a short hop)
  P/Esc          - Pause
  R              - Restart (after game over)
  B/Esc          - Back (when paused or after game over)
  Ctrl+S         - Save a text screenshot
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  fishrun play
  fishrun play fishrun_strict
  fishrun play --difficulty hard
  fishrun play --config ./my-fishrun.yaml --log-file ./fishrun.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write gameplay logs to this file")
}

// applyGameFlags validates --config and --difficulty and passes them to
// the game package.
func applyGameFlags() error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}
	if flagConfig != "" {
		if _, err := config.LoadFishRun(flagConfig); err != nil {
			return err
		}
	}
	fishrun.SetConfigPath(flagConfig)
	fishrun.SetDifficultyPreset(flagDifficulty)
	return nil
}

// terminalConfig builds a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// gameplayOptions sets up logging for an interactive run. The terminal is
// in the alternate screen, so logs go to --log-file or nowhere. The
// returned func closes the log file.
func gameplayOptions() (tui.Options, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return tui.Options{}, closeFn, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger, err := newLogger(w, "fishrun")
	if err != nil {
		closeFn()
		return tui.Options{}, func() {}, err
	}
	return tui.Options{
		Player: storage.LocalPlayer,
		Events: telemetry.NewEventLogger(logger, 0, 0),
	}, closeFn, nil
}

// openStore opens the scores database. Play continues without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := gameArg(args)
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'fishrun list' to see modes)", gameID)
	}
	if err := applyGameFlags(); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	opts, closeLog, err := gameplayOptions()
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, terminalConfig(), opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
