package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-xword/internal/registry"
	"github.com/vovakirdan/tui-xword/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available puzzles",
	Long: `Shows every puzzle that can be played: the built-in puzzles, the
puzzle directory and the library, with solve counts when available.`,
	Run: runList,
}

func runList(cmd *cobra.Command, args []string) {
	e := setup()
	defer e.close()

	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No puzzles available.")
		return
	}

	var stats map[string]*storage.PuzzleStats
	if e.store != nil {
		stats, _ = e.store.AllPuzzleStats()
	}

	fmt.Println("Available puzzles:")
	fmt.Println()

	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Printf("  %-*s  %-*s  %6s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Solves", "Best")
	fmt.Printf("  %-*s  %-*s  %6s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "------", "----")

	for _, g := range games {
		solves, best := 0, "-"
		if s, ok := stats[g.ID]; ok {
			solves = s.Solves
			if s.BestTime > 0 {
				best = formatClock(s.BestTime)
			}
		}
		fmt.Printf("  %-*s  %-*s  %6d  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, solves, best)
	}

	fmt.Println()
	fmt.Println("Run 'xword play <id>' to solve a puzzle.")
}

// formatClock renders a duration as m:ss or h:mm:ss.
func formatClock(d time.Duration) string {
	s := int(d / time.Second)
	if s >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", s/3600, s/60%60, s%60)
	}
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}
