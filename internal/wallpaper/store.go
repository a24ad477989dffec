// Package wallpaper persists the wallpaper collections in SQLite. Three
// tables share one schema: the local library, the recently-used list and the
// favorites. Records are content-addressed; the hash of the payload is the
// primary key and the sole deduplication key.
package wallpaper

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// ErrDuplicate reports a content hash that is already present in a table
// that rejects duplicates.
var ErrDuplicate = errors.New("wallpaper already exists")

// RecentTTL is the hard lifetime of a recently-used record. Eviction runs
// before every read of the recent table.
const RecentTTL = 7 * 24 * time.Hour

// Kind distinguishes the two payload shapes.
type Kind string

const (
	KindImage Kind = "image"
	KindColor Kind = "color"
)

// Table names the three wallpaper collections.
type Table string

const (
	TableLocal    Table = "local_wallpapers"
	TableRecent   Table = "recent_wallpapers"
	TableFavorite Table = "favorite_wallpapers"
)

var tables = []Table{TableLocal, TableRecent, TableFavorite}

// Payload is the content being stored: either an image blob with its MIME
// type, or a CSS color string.
type Payload struct {
	Kind  Kind
	MIME  string
	Data  []byte
	Color string
}

// Hash derives the content address of the payload.
func (p Payload) Hash() string {
	if p.Kind == KindColor {
		return SimpleHash(p.Color)
	}
	return BlobHash(p.Data, p.MIME)
}

// Record is one stored wallpaper. DisplayPath points at a process-local file
// materialized on load for image records; it is not persisted and is removed
// when the record is deleted or its table cleared.
type Record struct {
	ID          string
	Kind        Kind
	MIME        string
	Size        int64
	Color       string
	DisplayPath string
	CreatedAt   time.Time
	UsedAt      time.Time
}

// DisplayName is the human-readable label for a record: the color value for
// color records, otherwise the base name of the materialized display file.
func (r Record) DisplayName() string {
	if r.Kind == KindColor {
		return r.Color
	}
	if r.DisplayPath != "" {
		return filepath.Base(r.DisplayPath)
	}
	return r.ID + extension(r.MIME)
}

// Store owns the wallpaper database and the display files derived from it.
type Store struct {
	db         *sql.DB
	displayDir string

	// Now is the clock used for timestamps and TTL eviction. Nil means
	// time.Now.
	Now func() time.Time

	mu       sync.Mutex
	displays map[string]string
}

// NewStore opens (creating if needed) the wallpaper database at path and a
// sibling directory for display files.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	displayDir := filepath.Join(dir, "display")
	if err := os.MkdirAll(displayDir, 0755); err != nil {
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

	s := &Store{db: db, displayDir: displayDir, displays: map[string]string{}}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the display files and the database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	for key, path := range s.displays {
		os.Remove(path)
		delete(s.displays, key)
	}
	s.mu.Unlock()
	return s.db.Close()
}

func (s *Store) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Store) migrate() error {
	for _, table := range tables {
		schema := fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id TEXT PRIMARY KEY NOT NULL,
				kind TEXT NOT NULL,
				mime TEXT NOT NULL DEFAULT '',
				size INTEGER NOT NULL DEFAULT 0,
				color TEXT NOT NULL DEFAULT '',
				data BLOB,
				created_at TEXT NOT NULL,
				used_at TEXT NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_%s_used_at ON %s(used_at);
		`, table, table, table)
		if _, err := s.db.Exec(schema); err != nil {
			return err
		}
	}
	return nil
}

// ExistsByContent reports whether the payload's hash is already stored.
func (s *Store) ExistsByContent(table Table, p Payload) (bool, error) {
	return s.exists(table, p.Hash())
}

func (s *Store) exists(table Table, id string) (bool, error) {
	var one int
	err := s.db.QueryRow(
		fmt.Sprintf("SELECT 1 FROM %s WHERE id = ?", table), id,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Add stores a payload in a table and returns its content hash.
//
// The tables disagree about duplicates: the favorite table rejects them with
// ErrDuplicate, the recent table treats them as a touch of used_at, and the
// local library silently returns the existing id.
func (s *Store) Add(table Table, p Payload) (string, error) {
	id := p.Hash()
	now := s.now().UTC().Format(time.RFC3339)

	present, err := s.exists(table, id)
	if err != nil {
		return "", err
	}
	if present {
		switch table {
		case TableFavorite:
			return "", ErrDuplicate
		case TableRecent:
			_, err := s.db.Exec(
				fmt.Sprintf("UPDATE %s SET used_at = ? WHERE id = ?", table), now, id,
			)
			return id, err
		default:
			return id, nil
		}
	}

	_, err = s.db.Exec(
		fmt.Sprintf(`
			INSERT INTO %s (id, kind, mime, size, color, data, created_at, used_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, table),
		id, string(p.Kind), p.MIME, len(p.Data), p.Color, p.Data, now, now,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// List returns a table's records ordered by recency, newest first. Reading
// the recent table first evicts everything older than RecentTTL. Image
// records come back with a freshly materialized display file.
func (s *Store) List(table Table) ([]Record, error) {
	if table == TableRecent {
		if err := s.evictExpired(); err != nil {
			return nil, err
		}
	}

	rows, err := s.db.Query(fmt.Sprintf(`
		SELECT id, kind, mime, size, color, data, created_at, used_at
		FROM %s
		ORDER BY used_at DESC, id
	`, table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			r         Record
			kind      string
			data      []byte
			createdAt string
			usedAt    string
		)
		if err := rows.Scan(&r.ID, &kind, &r.MIME, &r.Size, &r.Color, &data, &createdAt, &usedAt); err != nil {
			return nil, err
		}
		r.Kind = Kind(kind)
		r.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		r.UsedAt, _ = time.Parse(time.RFC3339, usedAt)

		if r.Kind == KindImage {
			path, err := s.materialize(table, r.ID, r.MIME, data)
			if err != nil {
				return nil, err
			}
			r.DisplayPath = path
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Remove deletes one record and its display file.
func (s *Store) Remove(table Table, id string) error {
	if _, err := s.db.Exec(
		fmt.Sprintf("DELETE FROM %s WHERE id = ?", table), id,
	); err != nil {
		return err
	}
	s.release(displayKey(table, id))
	return nil
}

// Clear empties a table and releases all its display files.
func (s *Store) Clear(table Table) error {
	if _, err := s.db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
		return err
	}
	s.mu.Lock()
	prefix := string(table) + "/"
	for key, path := range s.displays {
		if strings.HasPrefix(key, prefix) {
			os.Remove(path)
			delete(s.displays, key)
		}
	}
	s.mu.Unlock()
	return nil
}

// UsedAt reads one record's used_at timestamp.
func (s *Store) UsedAt(table Table, id string) (time.Time, error) {
	var raw string
	err := s.db.QueryRow(
		fmt.Sprintf("SELECT used_at FROM %s WHERE id = ?", table), id,
	).Scan(&raw)
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339, raw)
}

func (s *Store) evictExpired() error {
	cutoff := s.now().UTC().Add(-RecentTTL).Format(time.RFC3339)
	rows, err := s.db.Query(
		fmt.Sprintf("SELECT id FROM %s WHERE used_at < ?", TableRecent), cutoff,
	)
	if err != nil {
		return err
	}
	var expired []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return err
		}
		expired = append(expired, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	for _, id := range expired {
		if err := s.Remove(TableRecent, id); err != nil {
			return err
		}
	}
	return nil
}

// materialize writes the blob to the display directory so callers can hand
// the path to an image viewer. Re-listing overwrites in place.
func (s *Store) materialize(table Table, id, mime string, data []byte) (string, error) {
	name := fmt.Sprintf("%s-%s%s", table, id, extension(mime))
	path := filepath.Join(s.displayDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	s.mu.Lock()
	s.displays[displayKey(table, id)] = path
	s.mu.Unlock()
	return path, nil
}

func (s *Store) release(key string) {
	s.mu.Lock()
	if path, ok := s.displays[key]; ok {
		os.Remove(path)
		delete(s.displays, key)
	}
	s.mu.Unlock()
}

func displayKey(table Table, id string) string {
	return string(table) + "/" + id
}

func extension(mime string) string {
	switch mime {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".img"
	}
}

// DefaultStorePath returns the default database path: ~/.config/tabdeck/wallpapers.db
func DefaultStorePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "tabdeck", "wallpapers.db"), nil
}
