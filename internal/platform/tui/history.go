package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-xword/internal/core"
	"github.com/vovakirdan/tui-xword/internal/registry"
	"github.com/vovakirdan/tui-xword/internal/storage"
)

// History layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the puzzle sidebar
	sidebarWidth       = 24  // Width of puzzle sidebar
	maxCompletions     = 100 // Max completions to load
)

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextPuzzle key.Binding
	PrevPuzzle key.Binding
	Help       key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextPuzzle, k.PrevPuzzle, k.Help, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextPuzzle, k.PrevPuzzle},
		{k.Help, k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextPuzzle: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next puzzle"),
		),
		PrevPuzzle: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev puzzle"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel shows the completion log of each puzzle.
type HistoryModel struct {
	puzzles     []registry.GameInfo
	cursor      int
	store       *storage.Store
	theme       Theme
	completions []storage.Completion
	stats       *storage.PuzzleStats
	loadErr     error
	table       table.Model
	help        help.Model
	keys        HistoryKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewHistoryModel creates a history screen starting at puzzleID, or at the
// first registered puzzle when puzzleID is empty or unknown.
func NewHistoryModel(store *storage.Store, theme Theme, puzzleID string, width, height int) HistoryModel {
	h := help.New()
	h.Width = width

	m := HistoryModel{
		puzzles:     registry.List(),
		store:       store,
		theme:       theme,
		keys:        DefaultHistoryKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	for i, p := range m.puzzles {
		if p.ID == puzzleID {
			m.cursor = i
		}
	}

	m.table = m.createTable()
	if len(m.puzzles) > 0 {
		m.load(m.puzzles[m.cursor].ID)
	}
	return m
}

// createTable creates a new table sized to the window.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Time", Width: 9},
		{Title: "Help", Width: 6},
		{Title: "Session", Width: 12},
		{Title: "Date", Width: 16},
	}

	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	if extra := tableWidth - 57; extra > 0 {
		columns[3].Width += core.Min(extra, 20)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(core.Max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = m.theme.Style(core.StyleClueSelected)
	t.SetStyles(s)

	return t
}

// load reads completions and stats for a puzzle.
func (m *HistoryModel) load(puzzleID string) {
	m.completions, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil {
		m.completions, m.loadErr = m.store.Completions(puzzleID, maxCompletions)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.PuzzleStats(puzzleID)
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded completions.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.completions))
	for i, c := range m.completions {
		assisted := "-"
		if c.Assisted {
			assisted = "yes"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			formatDuration(c.Elapsed),
			assisted,
			c.Session,
			c.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.NextPuzzle):
			if len(m.puzzles) > 0 {
				m.cursor = (m.cursor + 1) % len(m.puzzles)
				m.load(m.puzzles[m.cursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevPuzzle):
			if len(m.puzzles) > 0 {
				m.cursor = (m.cursor - 1 + len(m.puzzles)) % len(m.puzzles)
				m.load(m.puzzles[m.cursor].ID)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Current returns the ID of the puzzle being shown.
func (m HistoryModel) Current() string {
	if len(m.puzzles) == 0 {
		return ""
	}
	return m.puzzles[m.cursor].ID
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "HISTORY"
	if len(m.puzzles) > 0 {
		title = "HISTORY - " + m.puzzles[m.cursor].Title
	}
	b.WriteString(centerText(m.theme.Style(core.StyleHeading).Render(title), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Style(core.StyleHint).Render(m.summary()), m.width))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Style(core.StyleHint).Render(m.help.View(m.keys)))

	return b.String()
}

// summary describes the aggregated stats line.
func (m HistoryModel) summary() string {
	switch {
	case m.loadErr != nil:
		return "Could not read history: " + m.loadErr.Error()
	case m.store == nil:
		return "History is unavailable without a database."
	case m.stats == nil || m.stats.Solves == 0:
		return "Not solved yet."
	}
	s := fmt.Sprintf("%d solves, %d without help, average %s",
		m.stats.Solves, m.stats.Unassisted, formatDuration(m.stats.AverageTime))
	if m.stats.BestTime > 0 {
		s += ", best " + formatDuration(m.stats.BestTime)
	}
	return s
}

// renderWideLayout renders the table with a puzzle sidebar.
func (m HistoryModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Puzzles\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, p := range m.puzzles {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = m.theme.Style(core.StyleHeading)
		}
		sidebar.WriteString(style.Render(cursor + clip(p.Title, sidebarWidth-6)))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout shows the current puzzle between arrows above the table.
func (m HistoryModel) renderNarrowLayout() string {
	var b strings.Builder
	if len(m.puzzles) > 0 {
		b.WriteString(centerText(fmt.Sprintf("< %s >", m.puzzles[m.cursor].Title), m.width))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))
	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	if len(m.completions) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4).
			Render("No completions recorded yet.\nSolve the puzzle to start a history!")
	}
	return m.table.View()
}

// clip shortens s to n runes with a trailing dot.
func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}

// IsGoingBack returns true if user wants to go back to menu.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// RunHistory runs the history screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunHistory(store *storage.Store, theme Theme, puzzleID string, width, height int) (goBack bool, err error) {
	model := NewHistoryModel(store, theme, puzzleID, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(HistoryModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
