// fishrun is a side-scrolling platformer for the terminal.
//
// Usage:
//
//	fishrun list              - List available game modes
//	fishrun play [game]       - Play (default: fishrun)
//	fishrun menu              - Pick a mode interactively
//	fishrun serve             - Start SSH server for remote play
//	fishrun scores [game]     - Show high scores and recent runs
//	fishrun sim               - Run a seeded game headlessly
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.fishrun/scores.db)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/fishrun/internal/games/fishrun"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fishrun",
	Short: "Fish Run - a cat, some platforms and a lot of fish",
	Long: `Fish Run is a terminal side-scroller. Run right, jump between
platforms, collect fish and stay clear of the birds.

Available commands:
  list     - Show all game modes
  play     - Play directly
  menu     - Interactive mode picker with scoreboard
  serve    - Start SSH server for remote play
  scores   - View high scores and recent runs
  sim      - Run a seeded game without a terminal

Examples:
  fishrun play
  fishrun play fishrun_strict --difficulty hard
  fishrun serve --ssh :2222
  fishrun sim --seed 42 --frames 600`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.fishrun/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// newLogger builds a charm logger at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// gameArg returns the game named on the command line, or the default mode.
func gameArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return fishrun.ID
}
