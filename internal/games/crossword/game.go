// Package crossword adapts the crossword engine to the platform's Game
// interface: it maps platform inputs onto navigator calls, keeps the clock
// and draws the grid and clue lists into a screen buffer.
package crossword

import (
	"time"

	platformcore "github.com/vovakirdan/tui-xword/internal/core"
	"github.com/vovakirdan/tui-xword/internal/games/crossword/core"
	"github.com/vovakirdan/tui-xword/internal/games/crossword/puzzles"
	"github.com/vovakirdan/tui-xword/internal/registry"
)

func init() {
	builtin, err := puzzles.Builtin()
	if err != nil {
		panic(err)
	}
	for _, p := range builtin {
		p := p
		registry.Register(p.ID, func() registry.Game {
			return New(p)
		})
	}
}

// RegisterPuzzle makes p playable through the registry.
// It fails when a puzzle with the same ID is already registered.
func RegisterPuzzle(p puzzles.Puzzle) error {
	return registry.TryRegister(p.ID, func() registry.Game {
		return New(p)
	})
}

// Game is one solving session of a single puzzle.
type Game struct {
	puzzle  puzzles.Puzzle
	grid    *core.Grid
	nav     *core.Navigator
	numbers map[core.Coord]int
	loadErr error

	cfg    platformcore.RuntimeConfig
	layout layout

	ticks    int
	paused   bool
	assisted bool
	solved   bool
}

// New creates a session for p. The grid is built on Reset.
func New(p puzzles.Puzzle) *Game {
	return &Game{puzzle: p}
}

// ID returns the puzzle ID.
func (g *Game) ID() string {
	return g.puzzle.ID
}

// Title returns the puzzle title.
func (g *Game) Title() string {
	return g.puzzle.Title
}

// Puzzle returns the definition being solved.
func (g *Game) Puzzle() puzzles.Puzzle {
	return g.puzzle
}

// Navigator exposes the engine for tests and tooling.
func (g *Game) Navigator() *core.Navigator {
	return g.nav
}

// Reset builds an empty grid and restarts the clock.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.cfg = cfg
	g.ticks = 0
	g.paused = false
	g.assisted = false
	g.solved = false

	g.grid, g.loadErr = g.puzzle.NewGrid()
	if g.loadErr != nil {
		g.nav = nil
		return
	}
	g.nav = core.NewNavigator(g.grid, g.puzzle.Solution())
	g.numbers = g.grid.Numbering()
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize recomputes the layout for a new terminal size.
func (g *Game) Resize(w, h int) {
	g.cfg.ScreenW = w
	g.cfg.ScreenH = h
	if g.grid != nil {
		g.layout = computeLayout(w, h, g.grid.W, g.grid.H)
	}
}

// Handle applies one input event.
func (g *Game) Handle(in platformcore.Input) platformcore.StepResult {
	if g.nav == nil {
		return platformcore.StepResult{State: g.State()}
	}

	switch in.Action {
	case platformcore.ActionPause:
		if !g.solved {
			g.paused = !g.paused
		}
		return platformcore.StepResult{State: g.State()}
	case platformcore.ActionRestart:
		g.Reset(g.cfg)
		return platformcore.StepResult{State: g.State()}
	}

	if g.paused || g.layout.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	switch in.Action {
	case platformcore.ActionUp, platformcore.ActionDown,
		platformcore.ActionLeft, platformcore.ActionRight:
		g.arrow(in)
	case platformcore.ActionNextClue:
		g.nav.SelectNext()
	case platformcore.ActionPrevClue:
		g.nav.SelectPrevious()
	case platformcore.ActionSwap:
		g.nav.SwapDirection()
	case platformcore.ActionLetter:
		if in.Letter >= 'A' && in.Letter <= 'Z' {
			g.nav.EnterLetter(in.Letter)
		}
	case platformcore.ActionBackspace:
		g.nav.Backspace()
	case platformcore.ActionClear:
		g.nav.Clear()
	case platformcore.ActionSolve:
		g.nav.Solve()
		g.assisted = true
	case platformcore.ActionClick:
		g.click(in.X, in.Y)
	}

	result := platformcore.StepResult{}
	if !g.solved && g.nav.Correct() {
		g.solved = true
		result.Solved = true
	}
	result.State = g.State()
	return result
}

// arrow moves along the arrow's axis, or swaps direction when the arrow is
// perpendicular to the active word and no shift modifier is held.
func (g *Game) arrow(in platformcore.Input) {
	var dx, dy int
	switch in.Action {
	case platformcore.ActionUp:
		dy = -1
	case platformcore.ActionDown:
		dy = 1
	case platformcore.ActionLeft:
		dx = -1
	case platformcore.ActionRight:
		dx = 1
	}

	perpendicular := (dx != 0 && g.nav.Direction() == core.Down) ||
		(dy != 0 && g.nav.Direction() == core.Across)
	if perpendicular && !in.Shift && g.cfg.ArrowSwaps {
		g.nav.SwapDirection()
		return
	}
	g.nav.MoveCursor(dx, dy)
}

// click routes a mouse press to a grid cell or a clue list entry.
func (g *Game) click(x, y int) {
	if c, ok := g.layout.cellAt(x, y); ok {
		g.nav.SelectCell(c)
		return
	}
	if cl := g.layout.clueAt(x, y); cl != nil {
		g.nav.SelectClue(cl)
	}
}

// Tick advances the clock unless paused or solved.
func (g *Game) Tick() platformcore.StepResult {
	if g.nav != nil && !g.paused && !g.solved {
		g.ticks++
	}
	return platformcore.StepResult{State: g.State()}
}

// Elapsed returns the unpaused solving time.
func (g *Game) Elapsed() time.Duration {
	return time.Duration(g.ticks) * g.cfg.TickInterval()
}

// State returns the current progress summary.
func (g *Game) State() platformcore.GameState {
	st := platformcore.GameState{
		Paused:   g.paused,
		Assisted: g.assisted,
		Elapsed:  g.Elapsed(),
	}
	if g.nav == nil {
		return st
	}
	st.Filled = g.grid.FilledCount()
	st.Total = g.grid.PlayableCount()
	st.Complete = g.nav.Complete()
	st.Correct = g.nav.Correct()
	return st
}
