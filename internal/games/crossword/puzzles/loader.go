package puzzles

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/tui-xword/internal/games/crossword/puzzles/formats"
)

// Loader handles loading puzzles from a directory.
type Loader struct {
	Root string

	// Logger receives a warning for every file that fails to load.
	// Nil disables logging.
	Logger *log.Logger
}

// NewLoader creates a new puzzle loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all puzzle files.
// Invalid files are skipped. Returns puzzles sorted by ID.
func (l *Loader) LoadAll() ([]Puzzle, error) {
	var out []Puzzle

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		p, err := l.LoadFile(path)
		if err != nil {
			if l.Logger != nil {
				l.Logger.Warn("skipping puzzle", "path", path, "err", err)
			}
			return nil
		}
		out = append(out, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("puzzles: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// LoadFile loads a single puzzle file.
func (l *Loader) LoadFile(path string) (Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Puzzle{}, fmt.Errorf("puzzles: reading file %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return Puzzle{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	p.FilePath = path
	return p, nil
}

// LoadByID loads a specific puzzle by ID.
func (l *Loader) LoadByID(id string) (Puzzle, error) {
	all, err := l.LoadAll()
	if err != nil {
		return Puzzle{}, err
	}
	for _, p := range all {
		if p.ID == id {
			return p, nil
		}
	}
	return Puzzle{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// ListIDs returns all puzzle IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	all, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(all))
	for i, p := range all {
		ids[i] = p.ID
	}
	return ids, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
