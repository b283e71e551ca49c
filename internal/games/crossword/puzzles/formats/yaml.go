// Package formats provides pluggable puzzle file format parsers.
package formats

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-xword/internal/games/crossword/core"
	"gopkg.in/yaml.v3"
)

// Block is the canonical rune for a non-playable cell in parsed rows.
const Block = '#'

// YAMLPuzzle represents the YAML structure for a puzzle file.
type YAMLPuzzle struct {
	ID        string            `yaml:"id"`
	Title     string            `yaml:"title"`
	Author    string            `yaml:"author,omitempty"`
	Copyright string            `yaml:"copyright,omitempty"`
	Notes     string            `yaml:"notes,omitempty"`
	Grid      []string          `yaml:"grid"`
	Clues     YAMLClues         `yaml:"clues"`
	Metadata  map[string]string `yaml:"metadata,omitempty"`
}

// YAMLClues holds both clue lists.
type YAMLClues struct {
	Across []YAMLClue `yaml:"across"`
	Down   []YAMLClue `yaml:"down"`
}

// YAMLClue is one numbered clue.
type YAMLClue struct {
	Number int    `yaml:"number"`
	Text   string `yaml:"text"`
}

// Clue is a parsed clue with its direction resolved.
type Clue struct {
	Direction core.Direction
	Number    int
	Text      string
}

// Puzzle represents a parsed puzzle ready for validation.
type Puzzle struct {
	ID        string
	Title     string
	Author    string
	Copyright string
	Notes     string
	Width     int
	Height    int
	Rows      []string // uppercase solution letters, Block for blocks
	Clues     []Clue
	Metadata  map[string]string
}

// ParseYAML parses a YAML puzzle file.
// Rows use '#' or '.' for blocks and letters for solution cells.
func ParseYAML(data []byte) (Puzzle, error) {
	var yp YAMLPuzzle
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return Puzzle{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if strings.TrimSpace(yp.ID) == "" {
		return Puzzle{}, errors.New("missing id")
	}
	if len(yp.Grid) == 0 {
		return Puzzle{}, errors.New("empty grid")
	}

	p := Puzzle{
		ID:        strings.TrimSpace(yp.ID),
		Title:     yp.Title,
		Author:    yp.Author,
		Copyright: yp.Copyright,
		Notes:     yp.Notes,
		Height:    len(yp.Grid),
		Metadata:  yp.Metadata,
	}
	if p.Title == "" {
		p.Title = p.ID
	}

	p.Width = utf8.RuneCountInString(yp.Grid[0])
	for y, row := range yp.Grid {
		norm, err := normalizeRow(row)
		if err != nil {
			return Puzzle{}, fmt.Errorf("row %d: %w", y+1, err)
		}
		if len(norm) != p.Width {
			return Puzzle{}, fmt.Errorf("row %d: width %d, expected %d", y+1, len(norm), p.Width)
		}
		p.Rows = append(p.Rows, norm)
	}

	for _, c := range yp.Clues.Across {
		p.Clues = append(p.Clues, Clue{Direction: core.Across, Number: c.Number, Text: c.Text})
	}
	for _, c := range yp.Clues.Down {
		p.Clues = append(p.Clues, Clue{Direction: core.Down, Number: c.Number, Text: c.Text})
	}

	return p, nil
}

// normalizeRow uppercases letters and maps block markers to Block.
func normalizeRow(row string) (string, error) {
	var sb strings.Builder
	for _, r := range row {
		switch {
		case r == '#' || r == '.':
			sb.WriteRune(Block)
		case r >= 'A' && r <= 'Z':
			sb.WriteRune(r)
		case r >= 'a' && r <= 'z':
			sb.WriteRune(r - 'a' + 'A')
		default:
			return "", fmt.Errorf("invalid cell %q", r)
		}
	}
	return sb.String(), nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
