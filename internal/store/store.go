// Package store provides SQLite persistence for read-state, so marks
// survive process restarts without a manual export. The in-memory
// progress map stays authoritative; this is a write-behind cache.
package store

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
	_ "modernc.org/sqlite"
)

// Store handles SQLite persistence. NOT an interface - concrete type.
// Thread-safety: all methods are safe for concurrent use via internal
// mutex, although the UI drives it from a single goroutine.
type Store struct {
	db      *sql.DB
	mu      sync.Mutex
	flusher *rate.Limiter // coalesces bursts of toggle-driven saves
}

// Open creates a new Store at the given database path, creating the
// schema if needed. WAL mode is enabled for file-based databases.
func Open(dbPath string) (*Store, error) {
	connStr := dbPath
	if dbPath == ":memory:" {
		// Shared cache so every pooled connection sees the same
		// in-memory database.
		connStr = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if dbPath != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
	}

	s := &Store{
		db: db,
		// At most one flush every two seconds; Close always writes.
		flusher: rate.NewLimiter(rate.Every(2*time.Second), 1),
	}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return s, nil
}

func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS progress (
		record_key TEXT PRIMARY KEY,
		read INTEGER NOT NULL DEFAULT 0
	);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// LoadAll returns the persisted read-state mapping.
func (s *Store) LoadAll() (map[string]bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query("SELECT record_key, read FROM progress")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	m := make(map[string]bool)
	for rows.Next() {
		var key string
		var readInt int
		if err := rows.Scan(&key, &readInt); err != nil {
			return nil, err
		}
		m[key] = readInt != 0
	}
	return m, rows.Err()
}

// SaveAll replaces the persisted mapping with the given one, in a
// single transaction. The progress map never shrinks during a session,
// so a full replace is safe and keeps imports coherent.
func (s *Store) SaveAll(m map[string]bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(m)
}

func (s *Store) saveLocked(m map[string]bool) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM progress"); err != nil {
		return err
	}
	stmt, err := tx.Prepare("INSERT INTO progress (record_key, read) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for key, read := range m {
		if _, err := stmt.Exec(key, boolToInt(read)); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Flush persists the mapping unless a flush already ran within the
// limiter window. Returns whether a write happened. Rapid toggling
// therefore costs one write per window, not one per keypress.
func (s *Store) Flush(m map[string]bool) (bool, error) {
	if !s.flusher.Allow() {
		return false, nil
	}
	return true, s.SaveAll(m)
}

// Close writes the final state and closes the database.
func (s *Store) Close(m map[string]bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m != nil {
		if err := s.saveLocked(m); err != nil {
			s.db.Close()
			return fmt.Errorf("final save: %w", err)
		}
	}
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
