// xword is a terminal crossword player.
//
// Usage:
//
//	xword list                 - List available puzzles
//	xword play <puzzle>        - Solve a puzzle
//	xword menu                 - Pick puzzles interactively
//	xword serve                - Start SSH server for remote play
//	xword history <puzzle>     - Show past solves of a puzzle
//	xword import <file...>     - Add puzzle files to the library
//	xword remove <puzzle>      - Remove a puzzle from the library
//
// Global flags:
//
//	--db <path>        - Set database path (default: ~/.xword/xword.db)
//	--config <path>    - Use a specific config file
//	--puzzles <dir>    - Load extra YAML puzzles from a directory
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Registers the built-in puzzles
	_ "github.com/vovakirdan/tui-xword/internal/games/crossword"
)

var (
	// Global flags
	flagDBPath     string
	flagConfigPath string
	flagPuzzlesDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "xword",
	Short: "XWORD - Solve crosswords in your terminal",
	Long: `XWORD is a terminal crossword player with keyboard and mouse
navigation, a solve clock and a history of finished puzzles.

Available commands:
  list     - Show all available puzzles
  play     - Solve a specific puzzle
  menu     - Interactive puzzle picker
  serve    - Start SSH server for remote play
  history  - View past solves
  import   - Add puzzle files to the library
  remove   - Remove a puzzle from the library

Examples:
  xword list
  xword play mini-cat
  xword menu --puzzles ./my-puzzles
  xword serve --ssh :2222
  xword history mini-cat`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.xword/xword.db", "Path to history and library database")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to config YAML (default: search ~/.xword, ./configs)")
	rootCmd.PersistentFlags().StringVar(&flagPuzzlesDir, "puzzles", "", "Directory of extra YAML puzzles")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(removeCmd)
}
