package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and clock behavior.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Clock ticks per second

	// ArrowSwaps lets an unshifted arrow perpendicular to the current
	// direction toggle direction instead of moving.
	ArrowSwaps bool

	// ShowClock controls whether the elapsed timer is drawn.
	ShowClock bool
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   4,
		ArrowSwaps: true,
		ShowClock:  true,
	}
}

// TickInterval converts TickRate into a timer period.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState represents the current state of a puzzle session.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Filled   int           // Playable cells holding a letter
	Total    int           // Playable cells in the grid
	Complete bool          // Every playable cell is filled
	Correct  bool          // Every playable cell matches the solution
	Assisted bool          // Solve was used at least once
	Paused   bool          // Clock is stopped and the grid hidden
	Elapsed  time.Duration // Time spent unpaused
}

// Progress returns the filled fraction in [0, 1].
func (s GameState) Progress() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Filled) / float64(s.Total)
}

// StepResult is returned by Game.Handle() after each input.
type StepResult struct {
	State GameState

	// Solved is set exactly once, on the input that first made the
	// grid correct.
	Solved bool
}
