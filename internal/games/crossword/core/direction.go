package core

import (
	"fmt"
	"strings"
)

// Direction is the orientation of a word.
type Direction uint8

const (
	Across Direction = iota
	Down
)

// Directions lists both directions in display order.
var Directions = [...]Direction{Across, Down}

// String returns the lowercase name used in puzzle files.
func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "across"
}

// Opposite returns the perpendicular direction.
func (d Direction) Opposite() Direction {
	if d == Across {
		return Down
	}
	return Across
}

// Delta returns the unit step (dx, dy) for moving forward along d.
func (d Direction) Delta() (int, int) {
	if d == Down {
		return 0, 1
	}
	return 1, 0
}

// ParseDirection accepts "across"/"down" and the single-letter forms "a"/"d".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "across", "a":
		return Across, nil
	case "down", "d":
		return Down, nil
	default:
		return Across, fmt.Errorf("unknown direction %q", s)
	}
}
