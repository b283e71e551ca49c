package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-xword/internal/platform/tui"
	"github.com/vovakirdan/tui-xword/internal/registry"
)

var (
	flagHistoryLimit  int
	flagHistoryBrowse bool
)

var historyCmd = &cobra.Command{
	Use:   "history [puzzle]",
	Short: "Show past solves of a puzzle",
	Long: `Display the most recent solves of the specified puzzle with the
fastest unassisted time. With --browse, open the interactive history
screen instead.

Examples:
  xword history mini-cat
  xword history mini-cat --limit 50
  xword history --browse`,
	Args: cobra.RangeArgs(0, 1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of solves to show")
	historyCmd.Flags().BoolVar(&flagHistoryBrowse, "browse", false, "Open the interactive history screen")
}

func runHistory(cmd *cobra.Command, args []string) {
	e := setup()
	defer e.close()

	if e.store == nil {
		e.close()
		fail("history needs the database at %s", flagDBPath)
	}

	puzzleID := ""
	if len(args) == 1 {
		puzzleID = args[0]
		if !registry.Exists(puzzleID) {
			e.close()
			if s := registry.Suggest(puzzleID); s != "" {
				fail("unknown puzzle %q (did you mean %q?)", puzzleID, s)
			}
			fail("unknown puzzle %q\nRun 'xword list' to see available puzzles.", puzzleID)
		}
	}

	if flagHistoryBrowse {
		width, height := terminalSize()
		if _, err := tui.RunHistory(e.store, e.theme, puzzleID, width, height); err != nil {
			e.close()
			fail("%v", err)
		}
		return
	}
	if puzzleID == "" {
		e.close()
		fail("name a puzzle or pass --browse")
	}

	game, err := registry.Create(puzzleID)
	if err != nil {
		e.close()
		fail("%v", err)
	}

	entries, err := e.store.Completions(puzzleID, flagHistoryLimit)
	if err != nil {
		e.close()
		fail("retrieving history: %v", err)
	}

	fmt.Printf("History - %s\n", game.Title())
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'xword play %s' to record the first one!\n", puzzleID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-12s  %s\n", "#", "Time", "Help", "Session", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-12s  %s\n", "-", "----", "----", "-------", "----")

	for i, entry := range entries {
		help := "-"
		if entry.Assisted {
			help = "yes"
		}
		session := entry.Session
		if len(session) > 12 {
			session = session[:8] + "..."
		}
		fmt.Printf("  %-4d  %-8s  %-6s  %-12s  %s\n",
			i+1, formatClock(entry.Elapsed), help, session, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := e.store.PuzzleStats(puzzleID); err == nil {
		fmt.Printf("Solves: %d (%d without help), average %s\n",
			stats.Solves, stats.Unassisted, formatClock(stats.AverageTime))
		if stats.BestTime > 0 {
			fmt.Printf("Best: %s\n", formatClock(stats.BestTime))
		}
	}
}
