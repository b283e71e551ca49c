// Package tui provides the Bubble Tea integration for the crossword player.
// It handles the terminal UI loop, input mapping, theming and the screens
// around a solving session (puzzle picker, history, SSH sessions).
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg advances the solve clock of the game model with the same ID.
// Ticks addressed to a finished game are dropped, which ends its loop.
type TickMsg struct {
	Time time.Time
	ID   int64
}

var lastTickID atomic.Int64

// nextTickID returns a fresh tick loop ID.
func nextTickID() int64 {
	return lastTickID.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, id int64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 1
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, ID: id}
	})
}
