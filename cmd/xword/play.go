package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-xword/internal/platform/tui"
	"github.com/vovakirdan/tui-xword/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <puzzle>",
	Short: "Solve a puzzle",
	Long: `Open the specified puzzle.

Controls:
  Arrows          - Move; a perpendicular arrow switches direction
  Shift+Arrows    - Move without switching direction
  Tab / Space     - Switch between across and down
  Enter           - Next clue
  Shift+Tab       - Previous clue
  A-Z             - Fill the square and advance
  Backspace       - Erase and step back
  Insert          - Reveal the current word
  Delete          - Clear the current word
  Mouse           - Click a square or a clue
  Ctrl+P          - Pause
  Ctrl+R          - Restart
  Ctrl+S          - Save a text screenshot
  Esc / Ctrl+C    - Quit

Examples:
  xword play mini-cat
  xword play sunday --puzzles ./puzzles`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	e := setup()
	defer e.close()

	game, err := registry.Create(args[0])
	if err != nil {
		e.close()
		fail("%v\nRun 'xword list' to see available puzzles.", err)
	}

	width, height := terminalSize()
	if _, err := tui.Run(game, e.store, e.theme, e.cfg.Runtime(width, height)); err != nil {
		e.close()
		fail("running puzzle: %v", err)
	}

	if e.store != nil {
		if best, ok, err := e.store.BestTime(game.ID()); err == nil && ok {
			fmt.Printf("Best time for %s: %s\n", game.Title(), formatClock(best))
		}
	}
}
