package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-xword/internal/games/crossword/puzzles"
	"github.com/vovakirdan/tui-xword/internal/storage"
)

var importCmd = &cobra.Command{
	Use:   "import <file...>",
	Short: "Add puzzle files to the library",
	Long: `Validate YAML puzzle files and store them in the library database.
Library puzzles are available to every command, including SSH sessions.
Importing a file whose ID already exists replaces the stored copy.

Examples:
  xword import ./sunday.yaml
  xword import puzzles/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	Run:  runImport,
}

var removeCmd = &cobra.Command{
	Use:   "remove <puzzle>",
	Short: "Remove a puzzle from the library",
	Long: `Delete a puzzle from the library database. Its solve history is kept.
Built-in puzzles and puzzles from --puzzles cannot be removed.

Examples:
  xword remove sunday`,
	Args: cobra.ExactArgs(1),
	Run:  runRemove,
}

func runImport(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening database: %v", err)
	}
	defer store.Close()

	failed := 0
	for _, path := range args {
		p, err := importFile(store, path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  %s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("  %s: imported %q (%s, %dx%d)\n", path, p.ID, p.Title, p.Width, p.Height)
	}

	if failed > 0 {
		store.Close()
		fail("%d of %d files could not be imported", failed, len(args))
	}
}

// importFile parses one puzzle file and saves it to the library.
func importFile(store *storage.Store, path string) (puzzles.Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return puzzles.Puzzle{}, err
	}
	p, err := puzzles.Parse(data)
	if err != nil {
		return puzzles.Puzzle{}, err
	}
	err = store.SavePuzzle(storage.PuzzleRecord{
		ID:     p.ID,
		Title:  p.Title,
		Author: p.Author,
		Source: p.Source,
	})
	return p, err
}

func runRemove(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening database: %v", err)
	}
	defer store.Close()

	if err := store.DeletePuzzle(args[0]); err != nil {
		store.Close()
		if errors.Is(err, storage.ErrNotFound) {
			fail("%q is not in the library", args[0])
		}
		fail("%v", err)
	}
	fmt.Printf("Removed %q from the library.\n", args[0])
}
