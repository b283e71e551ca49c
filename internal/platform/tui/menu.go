package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-xword/internal/core"
	"github.com/vovakirdan/tui-xword/internal/registry"
	"github.com/vovakirdan/tui-xword/internal/storage"
)

// MenuItem represents a selectable puzzle in the menu.
type MenuItem struct {
	PuzzleID string
	Title    string
	Solves   int
	Best     time.Duration // zero when never solved unassisted
}

// MenuModel is the Bubble Tea model for the puzzle picker.
type MenuModel struct {
	items       []MenuItem
	cursor      int
	width       int
	height      int
	store       *storage.Store
	theme       Theme
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	quitting    bool
	selected    *MenuItem // Set when user selects a puzzle
	openHistory bool      // True if user pressed Tab for history
}

// NewMenuModel creates a new menu model listing every registered puzzle.
// Solve counts and best times come from store when it is available.
func NewMenuModel(store *storage.Store, theme Theme, cfg core.RuntimeConfig) MenuModel {
	puzzles := registry.List()
	items := make([]MenuItem, 0, len(puzzles))

	var stats map[string]*storage.PuzzleStats
	if store != nil {
		stats, _ = store.AllPuzzleStats()
	}

	for _, p := range puzzles {
		item := MenuItem{PuzzleID: p.ID, Title: p.Title}
		if s, ok := stats[p.ID]; ok {
			item.Solves = s.Solves
			item.Best = s.BestTime
		}
		items = append(items, item)
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		theme:     theme,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start the puzzle
		}

	case MenuActionHistory:
		m.openHistory = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := m.theme.Style(core.StyleHeading)
	hintStyle := m.theme.Style(core.StyleHint)
	activeStyle := m.theme.Style(core.StyleClueSelected)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  X W O R D  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a puzzle", m.width))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(centerText(hintStyle.Render("No puzzles available."), m.width))
		b.WriteString("\n")
	}

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		status := ""
		switch {
		case item.Best > 0:
			status = fmt.Sprintf("  best %s", formatDuration(item.Best))
		case item.Solves > 0:
			status = "  solved"
		}

		line := fmt.Sprintf("%s%-24s%s", cursor, item.Title, status)
		if i == m.cursor {
			line = activeStyle.Render(line)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: History  |  Q: Quit"
	b.WriteString(centerText(hintStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsHistory returns true if user requested the history screen.
func (m MenuModel) WantsHistory() bool {
	return m.openHistory
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// formatDuration renders a duration as m:ss or h:mm:ss.
func formatDuration(d time.Duration) string {
	s := int(d / time.Second)
	if s >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", s/3600, s/60%60, s%60)
	}
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	PuzzleID     string
	Config       core.RuntimeConfig
	WantsHistory bool
	Quit         bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, theme Theme, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, theme, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsHistory():
		result.WantsHistory = true
	case m.Selected() != nil:
		result.PuzzleID = m.Selected().PuzzleID
	default:
		result.Quit = true
	}
	return result, nil
}
