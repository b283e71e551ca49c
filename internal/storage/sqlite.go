// Package storage keeps the puzzle library and the completion log in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotFound is returned when a library puzzle does not exist.
var ErrNotFound = errors.New("storage: not found")

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// PuzzleRecord is a puzzle imported into the library.
// Source holds the original YAML so it can be re-parsed on load.
type PuzzleRecord struct {
	ID         string
	Title      string
	Author     string
	Source     []byte
	ImportedAt time.Time
}

// Completion is one finished solve.
type Completion struct {
	ID        string
	PuzzleID  string
	Elapsed   time.Duration
	Assisted  bool
	Session   string
	CreatedAt time.Time
}

// PuzzleStats aggregates completions of a single puzzle.
type PuzzleStats struct {
	PuzzleID    string
	Solves      int
	Unassisted  int
	BestTime    time.Duration // fastest unassisted solve, zero if none
	AverageTime time.Duration
	LastSolved  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS puzzles (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			author TEXT NOT NULL DEFAULT '',
			source BLOB NOT NULL,
			imported_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS completions (
			id TEXT PRIMARY KEY,
			puzzle_id TEXT NOT NULL,
			elapsed_secs INTEGER NOT NULL,
			assisted INTEGER NOT NULL DEFAULT 0,
			session TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_completions_puzzle ON completions(puzzle_id);
		CREATE INDEX IF NOT EXISTS idx_completions_fastest ON completions(puzzle_id, assisted, elapsed_secs);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePuzzle inserts or replaces a library puzzle.
func (s *Store) SavePuzzle(p PuzzleRecord) error {
	if p.ID == "" {
		return errors.New("storage: puzzle id is empty")
	}
	_, err := s.db.Exec(
		`INSERT INTO puzzles (id, title, author, source) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   title = excluded.title,
		   author = excluded.author,
		   source = excluded.source,
		   imported_at = CURRENT_TIMESTAMP`,
		p.ID, p.Title, p.Author, p.Source,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save puzzle: %w", err)
	}
	return nil
}

// Puzzle returns the library puzzle with the given ID.
func (s *Store) Puzzle(id string) (PuzzleRecord, error) {
	var p PuzzleRecord
	var importedAt any
	err := s.db.QueryRow(
		`SELECT id, title, author, source, imported_at FROM puzzles WHERE id = ?`,
		id,
	).Scan(&p.ID, &p.Title, &p.Author, &p.Source, &importedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return PuzzleRecord{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	if err != nil {
		return PuzzleRecord{}, fmt.Errorf("storage: cannot query puzzle: %w", err)
	}
	p.ImportedAt = parseTime(importedAt)
	return p, nil
}

// ListPuzzles returns every library puzzle ordered by ID.
func (s *Store) ListPuzzles() ([]PuzzleRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, title, author, source, imported_at FROM puzzles ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query puzzles: %w", err)
	}
	defer rows.Close()

	var records []PuzzleRecord
	for rows.Next() {
		var p PuzzleRecord
		var importedAt any
		if err := rows.Scan(&p.ID, &p.Title, &p.Author, &p.Source, &importedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		p.ImportedAt = parseTime(importedAt)
		records = append(records, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// DeletePuzzle removes a library puzzle. Its completions are kept.
func (s *Store) DeletePuzzle(id string) error {
	res, err := s.db.Exec("DELETE FROM puzzles WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete puzzle: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot count deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return nil
}

// SaveCompletion records a finished solve and returns its generated ID.
func (s *Store) SaveCompletion(c Completion) (string, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	_, err := s.db.Exec(
		`INSERT INTO completions (id, puzzle_id, elapsed_secs, assisted, session)
		 VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.PuzzleID, int64(c.Elapsed/time.Second), c.Assisted, c.Session,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save completion: %w", err)
	}
	return c.ID, nil
}

// Completions returns the most recent solves of a puzzle, newest first.
func (s *Store) Completions(puzzleID string, limit int) ([]Completion, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, puzzle_id, elapsed_secs, assisted, session, created_at
		 FROM completions
		 WHERE puzzle_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		puzzleID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query completions: %w", err)
	}
	defer rows.Close()

	var entries []Completion
	for rows.Next() {
		var c Completion
		var secs int64
		var createdAt any
		if err := rows.Scan(&c.ID, &c.PuzzleID, &secs, &c.Assisted, &c.Session, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		c.Elapsed = time.Duration(secs) * time.Second
		c.CreatedAt = parseTime(createdAt)
		entries = append(entries, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestTime returns the fastest unassisted solve of a puzzle.
// Returns false if the puzzle has never been solved without help.
func (s *Store) BestTime(puzzleID string) (time.Duration, bool, error) {
	var secs sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(elapsed_secs) FROM completions WHERE puzzle_id = ? AND assisted = 0",
		puzzleID,
	).Scan(&secs)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best time: %w", err)
	}
	if !secs.Valid {
		return 0, false, nil
	}
	return time.Duration(secs.Int64) * time.Second, true, nil
}

// PuzzleStats retrieves aggregated statistics for a single puzzle.
func (s *Store) PuzzleStats(puzzleID string) (*PuzzleStats, error) {
	stats := &PuzzleStats{PuzzleID: puzzleID}

	var best sql.NullInt64
	var avg float64
	var last any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN assisted = 0 THEN 1 ELSE 0 END), 0),
		        MIN(CASE WHEN assisted = 0 THEN elapsed_secs END),
		        COALESCE(AVG(elapsed_secs), 0),
		        MAX(created_at)
		 FROM completions WHERE puzzle_id = ?`,
		puzzleID,
	).Scan(&stats.Solves, &stats.Unassisted, &best, &avg, &last)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get puzzle stats: %w", err)
	}

	if best.Valid {
		stats.BestTime = time.Duration(best.Int64) * time.Second
	}
	stats.AverageTime = time.Duration(avg * float64(time.Second))
	stats.LastSolved = parseTime(last)
	return stats, nil
}

// AllPuzzleStats retrieves statistics for every puzzle that has been solved.
func (s *Store) AllPuzzleStats() (map[string]*PuzzleStats, error) {
	rows, err := s.db.Query(
		`SELECT puzzle_id,
		        COUNT(*),
		        SUM(CASE WHEN assisted = 0 THEN 1 ELSE 0 END),
		        MIN(CASE WHEN assisted = 0 THEN elapsed_secs END),
		        AVG(elapsed_secs),
		        MAX(created_at)
		 FROM completions
		 GROUP BY puzzle_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all puzzle stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*PuzzleStats)
	for rows.Next() {
		var ps PuzzleStats
		var best sql.NullInt64
		var avg float64
		var last any
		if err := rows.Scan(&ps.PuzzleID, &ps.Solves, &ps.Unassisted, &best, &avg, &last); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		if best.Valid {
			ps.BestTime = time.Duration(best.Int64) * time.Second
		}
		ps.AverageTime = time.Duration(avg * float64(time.Second))
		ps.LastSolved = parseTime(last)
		stats[ps.PuzzleID] = &ps
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
