package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fishrun/internal/platform/tui"
	"github.com/vovakirdan/fishrun/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a game mode and difficulty interactively",
	Long: `Start in interactive menu mode.

After a run ends, you return to the menu to play again.

Controls:
  Up/Down/j/k      - Choose mode
  Left/Right/h/l   - Choose difficulty
  Enter/Space      - Play
  Tab              - Scoreboard
  Q                - Quit

Examples:
  fishrun menu
  fishrun menu --fps 30
  fishrun menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write gameplay logs to this file")
}

func runMenu(_ *cobra.Command, _ []string) error {
	opts, closeLog, err := gameplayOptions()
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := applyGameFlags(); err != nil {
		return err
	}
	cfg := terminalConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit || (menuResult.GameID == "" && !menuResult.WantsScoreboard) {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}
		if t, ok := game.(registry.Tunable); ok && menuResult.Difficulty != "" {
			t.SetDifficulty(string(menuResult.Difficulty))
		}

		// A fresh seed per run unless --seed pins it
		runCfg := cfg
		if flagSeed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, runCfg, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
