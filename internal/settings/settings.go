// Package settings persists user configuration as a key-value table in
// SQLite. Values are whole JSON documents replaced on every write; there is
// no partial-update API. Missing keys are materialized from their defaults
// on first read.
package settings

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

// Store owns the settings database and the change listeners.
type Store struct {
	db *sql.DB

	mu       sync.Mutex
	watchers []func(key string)
	applying bool
}

// NewStore opens (creating if needed) the settings database at path.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, err
		}
	}

	schema := `
		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY NOT NULL,
			value TEXT NOT NULL
		);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get reads a key into out. A missing key is populated from its registered
// default first, so later readers and external contexts see the same value.
func (s *Store) Get(key string, out any) error {
	var raw string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		def, ok := defaults[key]
		if !ok {
			return fmt.Errorf("unknown settings key %q", key)
		}
		encoded, err := json.Marshal(def())
		if err != nil {
			return err
		}
		if _, err := s.db.Exec(
			"INSERT OR IGNORE INTO settings (key, value) VALUES (?, ?)", key, string(encoded),
		); err != nil {
			return err
		}
		return json.Unmarshal(encoded, out)
	}
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(raw), out)
}

// Set replaces a key's whole value and notifies watchers. Writes issued
// while an external change is being applied are dropped, so a watcher that
// mirrors changes back into the store cannot echo.
func (s *Store) Set(key string, value any) error {
	s.mu.Lock()
	if s.applying {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if _, err := s.db.Exec(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, string(encoded)); err != nil {
		return err
	}
	s.notify(key)
	return nil
}

// ApplyExternal installs a change that originated in another context. The
// write-listener pause is active for the duration of the watcher callbacks.
func (s *Store) ApplyExternal(key string, value json.RawMessage) error {
	s.mu.Lock()
	s.applying = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.applying = false
		s.mu.Unlock()
	}()

	if _, err := s.db.Exec(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, string(value)); err != nil {
		return err
	}
	s.notify(key)
	return nil
}

// Watch registers a listener called with the key of every applied change.
func (s *Store) Watch(fn func(key string)) {
	s.mu.Lock()
	s.watchers = append(s.watchers, fn)
	s.mu.Unlock()
}

func (s *Store) notify(key string) {
	s.mu.Lock()
	watchers := make([]func(string), len(s.watchers))
	copy(watchers, s.watchers)
	s.mu.Unlock()
	for _, fn := range watchers {
		fn(key)
	}
}

// DefaultStorePath returns the default database path: ~/.config/tabdeck/settings.db
func DefaultStorePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "tabdeck", "settings.db"), nil
}
