package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-xword/internal/core"
	_ "github.com/vovakirdan/tui-xword/internal/games/crossword"
	"github.com/vovakirdan/tui-xword/internal/registry"
	"github.com/vovakirdan/tui-xword/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "xword.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newGameModel(t *testing.T, id string, store *storage.Store) GameModel {
	t.Helper()
	game, err := registry.Create(id)
	if err != nil {
		t.Fatalf("registry.Create(%q): %v", id, err)
	}
	m := NewGameModel(game, store, DefaultTheme(), core.DefaultConfig(), "")
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init() should start the clock")
	}
	return m
}

func send(t *testing.T, m GameModel, msgs ...tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		gm, ok := next.(GameModel)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
		m = gm
	}
	return m, cmd
}

func typed(s string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(s))
	for _, r := range s {
		if r == '\n' {
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeyEnter})
			continue
		}
		msgs = append(msgs, runeKey(r))
	}
	return msgs
}

func TestGameModelRecordsCompletionOnce(t *testing.T) {
	store := openStore(t)
	m := newGameModel(t, "mini-cat", store)

	m, _ = send(t, m, typed("cat\nare\nte")...)
	if m.State().Correct {
		t.Fatal("puzzle should not be solved yet")
	}
	if m.CompletionID() != "" {
		t.Fatal("completion recorded too early")
	}

	m, _ = send(t, m, runeKey('n'))
	if !m.State().Correct {
		t.Fatal("puzzle should be solved")
	}
	if m.CompletionID() == "" || m.SaveErr() != nil {
		t.Fatalf("completion not recorded: id %q, err %v", m.CompletionID(), m.SaveErr())
	}

	// Further edits after the solve do not log again.
	send(t, m, tea.KeyMsg{Type: tea.KeyBackspace}, runeKey('n'))

	entries, err := store.Completions("mini-cat", 10)
	if err != nil {
		t.Fatalf("Completions: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d completions, want 1", len(entries))
	}
	if entries[0].Session != LocalSession || entries[0].Assisted {
		t.Errorf("completion = %+v", entries[0])
	}
}

func TestGameModelAssistedAndRestart(t *testing.T) {
	store := openStore(t)
	m := newGameModel(t, "mini-cat", store)

	solve := tea.KeyMsg{Type: tea.KeyInsert}
	next := tea.KeyMsg{Type: tea.KeyEnter}
	m, _ = send(t, m, solve, next, solve, next, solve)
	if !m.State().Correct || !m.State().Assisted {
		t.Fatalf("state = %+v, want solved with help", m.State())
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if m.State().Filled != 0 || m.CompletionID() != "" {
		t.Fatalf("restart should clear the grid and the saved flag, state %+v", m.State())
	}
	m, _ = send(t, m, typed("cat\nare\nten")...)

	entries, _ := store.Completions("mini-cat", 10)
	if len(entries) != 2 {
		t.Fatalf("got %d completions, want 2", len(entries))
	}
	if _, ok, _ := store.BestTime("mini-cat"); !ok {
		t.Error("the unassisted solve should count as a best time")
	}
}

func TestGameModelWithoutStore(t *testing.T) {
	m := newGameModel(t, "mini-cat", nil)
	m, _ = send(t, m, typed("cat\nare\nten")...)
	if !m.State().Correct {
		t.Fatal("puzzle should be solved")
	}
	if m.CompletionID() != "" || m.SaveErr() != nil {
		t.Error("nothing should be stored without a database")
	}
}

func TestGameModelTicks(t *testing.T) {
	m := newGameModel(t, "mini-cat", nil)

	m, cmd := send(t, m, TickMsg{Time: time.Now(), ID: m.tickID})
	if cmd == nil {
		t.Error("own tick should schedule the next one")
	}
	if m.State().Elapsed == 0 {
		t.Error("own tick should advance the clock")
	}
	before := m.State().Elapsed

	m, cmd = send(t, m, TickMsg{Time: time.Now(), ID: m.tickID + 1000})
	if cmd != nil {
		t.Error("foreign tick should end its loop")
	}
	if m.State().Elapsed != before {
		t.Error("foreign tick should not advance the clock")
	}
}

func TestGameModelMouseAndResize(t *testing.T) {
	m := newGameModel(t, "mini-cat", nil)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, want 100x30", m.screen.Width(), m.screen.Height())
	}

	// Right button presses are ignored.
	m, _ = send(t, m, tea.MouseMsg{X: 1, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	if m.View() == "" {
		t.Error("View() should render the puzzle")
	}
}

func TestGameModelExit(t *testing.T) {
	m := newGameModel(t, "mini-cat", nil)
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() || cmd == nil {
		t.Error("Esc should leave a standalone game")
	}

	m = newGameModel(t, "mini-cat", nil)
	m.embedded = true
	m, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() || cmd != nil {
		t.Error("Esc in an embedded game should only flag the menu")
	}

	m = newGameModel(t, "mini-cat", nil)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.IsQuitting() || m.View() != "" {
		t.Error("Ctrl+C should quit")
	}
}

func sessionSend(t *testing.T, m SessionModel, msgs ...tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		sm, ok := next.(SessionModel)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
		m = sm
	}
	return m, cmd
}

func TestSessionFlow(t *testing.T) {
	store := openStore(t)
	m := NewSessionModel(store, DefaultTheme(), core.DefaultConfig(), "tester", "")
	if m.SessionID() == "" {
		t.Fatal("session ID should be generated")
	}

	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenHistory {
		t.Fatalf("Tab should open history, screen = %v", m.screen)
	}
	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("Esc should return to the menu, screen = %v", m.screen)
	}

	first := registry.List()[0].ID
	m, cmd := sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || cmd == nil {
		t.Fatalf("Enter should start %s", first)
	}
	if m.gameModel.game.ID() != first {
		t.Errorf("started %q, want %q", m.gameModel.game.ID(), first)
	}

	// Letters, including q, are answers inside a puzzle.
	m, _ = sessionSend(t, m, runeKey('q'))
	if m.quitting {
		t.Fatal("q should not quit a puzzle")
	}

	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.gameModel != nil {
		t.Fatal("Esc should return to the menu")
	}

	m, cmd = sessionSend(t, m, runeKey('q'))
	if !m.quitting || cmd == nil || m.View() != "" {
		t.Error("q in the menu should quit")
	}
}

func TestSessionRecordsSessionID(t *testing.T) {
	store := openStore(t)
	m := NewSessionModel(store, DefaultTheme(), core.DefaultConfig(), "tester", "session-1")

	// Move the menu cursor to mini-cat.
	for _, info := range registry.List() {
		if info.ID == "mini-cat" {
			break
		}
		m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || m.gameModel.game.ID() != "mini-cat" {
		t.Fatal("mini-cat should be open")
	}

	for _, msg := range typed("cat\nare\nten") {
		m, _ = sessionSend(t, m, msg)
	}

	entries, err := store.Completions("mini-cat", 10)
	if err != nil || len(entries) != 1 {
		t.Fatalf("Completions = %d, %v", len(entries), err)
	}
	if entries[0].Session != "session-1" {
		t.Errorf("session = %q, want session-1", entries[0].Session)
	}
}
