package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-xword/internal/core"
	"github.com/vovakirdan/tui-xword/internal/registry"
	"github.com/vovakirdan/tui-xword/internal/storage"
)

// LocalSession is the session tag recorded for solves in a local terminal.
const LocalSession = "local"

// GameModel is the Bubble Tea model for solving one puzzle.
// Standalone it quits on Esc; inside a SessionModel it hands control back
// to the menu instead.
type GameModel struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	theme     Theme
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	session   string
	embedded  bool
	tickID    int64

	gameState  core.GameState
	quitting   bool
	backToMenu bool
	saved      bool   // completion recorded for the current solve
	savedID    string // completion ID, empty until saved
	saveErr    error
}

// NewGameModel creates a model for game. store may be nil.
func NewGameModel(game registry.Game, store *storage.Store, theme Theme, cfg core.RuntimeConfig, session string) GameModel {
	if session == "" {
		session = LocalSession
	}
	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		theme:     theme,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		session:   session,
		tickID:    nextTickID(),
	}
}

// Init resets the game and starts the clock.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.tickID)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		in := m.keyMapper.MapMouse(msg)
		if in.Action == core.ActionNone {
			return m, nil
		}
		m.apply(m.game.Handle(in))
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.ID != m.tickID {
			return m, nil
		}
		m.apply(m.game.Tick())
		return m, tickCmd(m.config.TickRate, m.tickID)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	in, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case in.Action == core.ActionBack:
		m.backToMenu = true
		if !m.embedded {
			return m, tea.Quit
		}
		return m, nil
	case in.Action == core.ActionNone:
		return m, nil
	case in.Action == core.ActionRestart:
		m.saved = false
		m.savedID = ""
	}

	m.apply(m.game.Handle(in))
	return m, nil
}

// apply records a step result and logs the completion once per solve.
func (m *GameModel) apply(result core.StepResult) {
	m.gameState = result.State
	if !result.Solved || m.saved {
		return
	}
	m.saved = true
	if m.store == nil {
		return
	}
	m.savedID, m.saveErr = m.store.SaveCompletion(storage.Completion{
		PuzzleID: m.game.ID(),
		Elapsed:  result.State.Elapsed,
		Assisted: result.State.Assisted,
		Session:  m.session,
	})
}

// saveScreenshot writes the current screen as plain text.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".xword", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	//nolint:errcheck // Best-effort save, the session continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen, m.theme)
}

// State returns the last reported progress.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// CompletionID returns the stored completion ID once the puzzle is solved.
func (m GameModel) CompletionID() string {
	return m.savedID
}

// SaveErr returns the error from recording the completion, if any.
func (m GameModel) SaveErr() error {
	return m.saveErr
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the local terminal until the user quits or presses Esc.
// It reports whether the user asked to go back rather than quit.
func Run(game registry.Game, store *storage.Store, theme Theme, cfg core.RuntimeConfig) (goBack bool, err error) {
	model := NewGameModel(game, store, theme, cfg, LocalSession)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := final.(GameModel); ok {
		return m.BackToMenu(), m.SaveErr()
	}
	return false, nil
}
