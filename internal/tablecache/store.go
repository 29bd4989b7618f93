// Package tablecache persists the two-phase solver's move and
// pruning tables to disk so a process only has to pay the
// construction cost once. Tables are stored as one row per named
// table in a SQLite database, keyed by name, never as a single
// ordered blob: the original reference implementation (Python
// pickle of an ordered tuple) reloads an ordered list and zips it
// back against table names by position, which silently produces a
// wrong pairing if the on-disk order and the in-memory load order
// ever drift apart, e.g. after adding or reordering a table. Keying
// by name instead makes that class of bug structurally impossible:
// a lookup by name can only return that table's own blob or nothing.
package tablecache

import (
	"bytes"
	"database/sql"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/mhess/twophase/internal/cube"
)

// Store wraps the SQLite database holding cached tables.
type Store struct {
	db   *sql.DB
	path string
}

// DefaultPath returns the cache database path under the user's home
// directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	dir := filepath.Join(home, ".twophase")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}
	return filepath.Join(dir, "tables.db"), nil
}

// Open opens (creating if necessary) the table cache at path.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open table cache: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS tables (
		name TEXT PRIMARY KEY,
		blob BLOB NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// OpenDefault opens the cache at DefaultPath.
func OpenDefault() (*Store, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Open(path)
}

// Path returns the cache database's file path.
func (s *Store) Path() string { return s.path }

// Close closes the underlying database connection.
func (s *Store) Close() error { return s.db.Close() }

// tableNames enumerates the ten cached tables by key.
var tableNames = []string{
	"twist_move", "flip_move", "udslice_move",
	"edge4_move", "edge8_move", "corner_move",
	"udslice_twist_prune", "udslice_flip_prune",
	"edge4_edge8_prune", "edge4_corner_prune",
}

func encode(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decode(data []byte, v interface{}) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

func (s *Store) put(name string, v interface{}) error {
	blob, err := encode(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	_, err = s.db.Exec(`INSERT INTO tables (name, blob) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET blob = excluded.blob`, name, blob)
	if err != nil {
		return fmt.Errorf("storing %s: %w", name, err)
	}
	return nil
}

func (s *Store) get(name string, v interface{}) (bool, error) {
	var blob []byte
	err := s.db.QueryRow(`SELECT blob FROM tables WHERE name = ?`, name).Scan(&blob)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", name, err)
	}
	if err := decode(blob, v); err != nil {
		return false, fmt.Errorf("decoding %s: %w", name, err)
	}
	return true, nil
}

// Save writes every move and pruning table to the cache, each under
// its own name, replacing any previous contents for that name.
func (s *Store) Save(t *cube.Tables) error {
	values := map[string]interface{}{
		"twist_move":          t.Move.Twist,
		"flip_move":           t.Move.Flip,
		"udslice_move":        t.Move.UDSlice,
		"edge4_move":          t.Move.Edge4,
		"edge8_move":          t.Move.Edge8,
		"corner_move":         t.Move.Corner,
		"udslice_twist_prune": t.Prune.UDSliceTwist,
		"udslice_flip_prune":  t.Prune.UDSliceFlip,
		"edge4_edge8_prune":   t.Prune.Edge4Edge8,
		"edge4_corner_prune":  t.Prune.Edge4Corner,
	}
	for _, name := range tableNames {
		if err := s.put(name, values[name]); err != nil {
			return err
		}
	}
	return nil
}

// Load reads every table from the cache. ok is false if any table is
// missing, in which case callers should rebuild and Save instead.
func (s *Store) Load() (t *cube.Tables, ok bool, err error) {
	mt := &cube.MoveTables{}
	pt := &cube.PruningTables{}
	targets := map[string]interface{}{
		"twist_move":          &mt.Twist,
		"flip_move":           &mt.Flip,
		"udslice_move":        &mt.UDSlice,
		"edge4_move":          &mt.Edge4,
		"edge8_move":          &mt.Edge8,
		"corner_move":         &mt.Corner,
		"udslice_twist_prune": &pt.UDSliceTwist,
		"udslice_flip_prune":  &pt.UDSliceFlip,
		"edge4_edge8_prune":   &pt.Edge4Edge8,
		"edge4_corner_prune":  &pt.Edge4Corner,
	}
	for _, name := range tableNames {
		found, err := s.get(name, targets[name])
		if err != nil {
			return nil, false, err
		}
		if !found {
			return nil, false, nil
		}
	}
	return &cube.Tables{Move: mt, Prune: pt}, true, nil
}

// LoadOrBuild returns the cached tables if present, otherwise builds
// and persists a fresh set. progress, if non-nil, is called with a
// short label each time a construction stage completes.
func LoadOrBuild(s *Store, progress func(stage string)) (*cube.Tables, error) {
	if t, ok, err := s.Load(); err != nil {
		return nil, err
	} else if ok {
		return t, nil
	}

	notify := func(stage string) {
		if progress != nil {
			progress(stage)
		}
	}

	mt := cube.BuildMoveTables()
	notify("move tables")
	pt := cube.BuildPruningTables(mt)
	notify("pruning tables")

	t := &cube.Tables{Move: mt, Prune: pt}
	if err := s.Save(t); err != nil {
		return nil, err
	}
	notify("saved to cache")
	return t, nil
}
