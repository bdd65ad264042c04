package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fishrun/internal/registry"
	"github.com/vovakirdan/fishrun/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes with their best scores",
	Long: `Shows every registered mode and the best score recorded for it.
Modes accept --difficulty easy, normal, hard or fixed.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(_ *cobra.Command, _ []string) error {
	modes := registry.List()
	if len(modes) == 0 {
		fmt.Println("No modes registered.")
		return nil
	}

	// A missing database only hides the best column.
	var store *storage.Store
	if s, err := storage.Open(flagDBPath); err == nil {
		store = s
		defer store.Close()
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  ID\tTitle\tBest")
	fmt.Fprintln(tw, "  --\t-----\t----")
	for _, m := range modes {
		best := "-"
		if store != nil {
			if score, err := store.HighScore(m.ID); err == nil && score > 0 {
				best = fmt.Sprint(score)
			}
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", m.ID, m.Title, best)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Run 'fishrun play <id>' to play.")
	return nil
}
