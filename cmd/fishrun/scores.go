package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fishrun/internal/registry"
	"github.com/vovakirdan/fishrun/internal/storage"
)

var (
	flagRuns   int
	flagPlayer string
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores and recent runs",
	Long: `Display the top 10 high scores, aggregate stats and the most
recent runs for a game mode. The mode defaults to fishrun.

Recent runs include their seed, so any run can be replayed with
'fishrun sim --seed <seed>'.

Examples:
  fishrun scores
  fishrun scores fishrun_strict --runs 20
  fishrun scores --player alice
  fishrun scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRuns, "runs", 5, "Number of recent runs to show")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Also show this player's best score")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and runs for the mode")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := gameArg(args)
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'fishrun list' to see modes)", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Printf("Cleared scores and runs for %s.\n", game.Title())
		return nil
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'fishrun play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %s\n", "----", "------", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-12s  %-8d  %s\n", i+1, entry.Player, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d   Games: %d   Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
		if stats.RunsCount > 0 {
			fmt.Printf("Runs: %d   Farthest: %.0fm   Longest: %.1fs   Played: %.0fs\n",
				stats.RunsCount, stats.BestDistance/10, stats.LongestRun, stats.TotalPlayed)
		}
	}
	if flagPlayer != "" {
		if best, err := store.PlayerBest(gameID, flagPlayer); err == nil {
			fmt.Printf("Best for %s: %d\n", flagPlayer, best)
		}
	}

	runs, err := store.RecentRuns(gameID, flagRuns)
	if err != nil || len(runs) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Recent runs:")
	fmt.Printf("  %-12s  %-6s  %-9s  %-7s  %s\n", "Player", "Score", "Distance", "Time", "Seed")
	for _, r := range runs {
		fmt.Printf("  %-12s  %-6d  %-9s  %-7s  %d\n",
			r.Player,
			r.Score,
			fmt.Sprintf("%.0fm", r.Distance/10),
			fmt.Sprintf("%.1fs", r.ElapsedSecs),
			r.Seed,
		)
	}
	return nil
}
