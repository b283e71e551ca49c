// Package puzzles loads crossword puzzle definitions and turns them into
// engine grids. This package depends on core but core does not depend on it.
package puzzles

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-xword/internal/games/crossword/core"
	"github.com/vovakirdan/tui-xword/internal/games/crossword/puzzles/formats"
)

// Errors returned by the loader.
var (
	ErrNotFound = errors.New("puzzles: not found")
	ErrNoClue   = errors.New("no word starts at the clue number")
)

// Puzzle is a validated puzzle definition.
type Puzzle struct {
	ID        string
	Title     string
	Author    string
	Copyright string
	Notes     string
	Width     int
	Height    int
	Rows      []string
	Clues     []formats.Clue
	Metadata  map[string]string
	FilePath  string
	Source    []byte // raw file content, kept for the library store
}

// Parse validates raw YAML and returns the puzzle.
func Parse(data []byte) (Puzzle, error) {
	parsed, err := formats.ParseYAML(data)
	if err != nil {
		return Puzzle{}, fmt.Errorf("puzzles: %w", err)
	}
	p := Puzzle{
		ID:        parsed.ID,
		Title:     parsed.Title,
		Author:    parsed.Author,
		Copyright: parsed.Copyright,
		Notes:     parsed.Notes,
		Width:     parsed.Width,
		Height:    parsed.Height,
		Rows:      parsed.Rows,
		Clues:     parsed.Clues,
		Metadata:  parsed.Metadata,
		Source:    data,
	}
	if _, err := p.NewGrid(); err != nil {
		return Puzzle{}, fmt.Errorf("puzzles: %s: %w", p.ID, err)
	}
	return p, nil
}

// Solution returns the read-only answer lookup.
func (p *Puzzle) Solution() core.LetterGrid {
	return core.NewLetterGrid(p.Rows)
}

// NewGrid builds a fresh, empty grid with every clue anchored at its
// numbered cell. Clue numbers follow standard crossword numbering.
func (p *Puzzle) NewGrid() (*core.Grid, error) {
	var open []core.Coord
	for y, row := range p.Rows {
		for x, r := range row {
			if r != formats.Block {
				open = append(open, core.C(x, y))
			}
		}
	}
	g := core.NewGrid(p.Width, p.Height, open)

	byNumber := make(map[int]core.Coord)
	for c, n := range g.Numbering() {
		byNumber[n] = c
	}

	for _, cl := range p.Clues {
		origin, ok := byNumber[cl.Number]
		if !ok || !g.Playable(origin.Step(cl.Direction)) {
			return nil, fmt.Errorf("%d %s: %w", cl.Number, cl.Direction, ErrNoClue)
		}
		if _, err := g.AddClue(origin, cl.Direction, cl.Number, cl.Text); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// ClueCount returns the number of clues in direction d.
func (p *Puzzle) ClueCount(d core.Direction) int {
	n := 0
	for _, cl := range p.Clues {
		if cl.Direction == d {
			n++
		}
	}
	return n
}
