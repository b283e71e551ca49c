package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-xword/internal/platform/tui"
	"github.com/vovakirdan/tui-xword/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick puzzles from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to open a puzzle.
Esc inside a puzzle returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Open puzzle
  Tab          - Solve history
  Q            - Quit

Examples:
  xword menu
  xword menu --db ./xword.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	e := setup()
	defer e.close()

	width, height := terminalSize()
	cfg := e.cfg.Runtime(width, height)

	for {
		menuResult, err := tui.RunMenu(e.store, e.theme, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Keep any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsHistory {
			goBack, hErr := tui.RunHistory(e.store, e.theme, "", cfg.ScreenW, cfg.ScreenH)
			if hErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", hErr)
			}
			if goBack {
				continue
			}
			break
		}

		game, err := registry.Create(menuResult.PuzzleID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		goBack, err := tui.Run(game, e.store, e.theme, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running puzzle: %v\n", err)
		}
		if !goBack {
			break
		}
	}
}
