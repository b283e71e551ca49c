package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-xword/internal/config"
	"github.com/vovakirdan/tui-xword/internal/games/crossword"
	"github.com/vovakirdan/tui-xword/internal/games/crossword/puzzles"
	"github.com/vovakirdan/tui-xword/internal/platform/tui"
	"github.com/vovakirdan/tui-xword/internal/registry"
	"github.com/vovakirdan/tui-xword/internal/storage"
)

// env bundles what every command needs after startup.
type env struct {
	cfg    config.Config
	theme  tui.Theme
	store  *storage.Store // nil when the database cannot be opened
	logger *log.Logger
}

// setup loads config, opens the store and registers puzzles from the
// puzzle directory and the library. Problems that still leave the player
// usable are reported as warnings.
func setup() *env {
	e := &env{
		logger: log.NewWithOptions(os.Stderr, log.Options{Prefix: "xword"}),
	}

	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		e.logger.Warn("using default config", "err", err)
	}
	e.cfg = cfg

	theme, err := tui.NewTheme(cfg.Theme)
	if err != nil {
		e.logger.Warn("using classic theme", "err", err)
		theme = tui.DefaultTheme()
	}
	e.theme = theme

	store, err := storage.Open(flagDBPath)
	if err != nil {
		e.logger.Warn("could not open database, history is disabled", "err", err)
		store = nil
	}
	e.store = store

	dir := flagPuzzlesDir
	if dir == "" {
		dir = config.ExpandHome(cfg.Puzzles.Dir)
	}
	if dir != "" {
		e.registerDir(dir)
	}
	if store != nil {
		e.registerLibrary()
	}
	return e
}

func (e *env) registerDir(dir string) {
	loader := puzzles.NewLoader(dir)
	loader.Logger = e.logger

	all, err := loader.LoadAll()
	if err != nil {
		e.logger.Warn("could not load puzzles", "dir", dir, "err", err)
		return
	}
	for _, p := range all {
		e.register(p)
	}
}

func (e *env) registerLibrary() {
	records, err := e.store.ListPuzzles()
	if err != nil {
		e.logger.Warn("could not read puzzle library", "err", err)
		return
	}
	for _, rec := range records {
		p, err := puzzles.Parse(rec.Source)
		if err != nil {
			e.logger.Warn("skipping library puzzle", "id", rec.ID, "err", err)
			continue
		}
		e.register(p)
	}
}

func (e *env) register(p puzzles.Puzzle) {
	err := crossword.RegisterPuzzle(p)
	if errors.Is(err, registry.ErrDuplicate) {
		e.logger.Debug("puzzle already registered", "id", p.ID)
		return
	}
	if err != nil {
		e.logger.Warn("could not register puzzle", "id", p.ID, "err", err)
	}
}

// close releases the store. Safe to call more than once.
func (e *env) close() {
	if e.store != nil {
		e.store.Close()
		e.store = nil
	}
}

// terminalSize returns the terminal size, or 80x24 when stdout is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
