// Package store persists user-facing session state: saved and liked job
// ids, the active filter, the local profile, and the theme flag. It is a
// plain key-value sink; the aggregation core never touches it.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/devhire/devhire/internal/model"
)

const (
	keySavedJobs = "saved_jobs"
	keyLikedJobs = "liked_jobs"
	keyFilter    = "filter"
	keyProfile   = "profile"
	keyTheme     = "theme"
)

// SQLiteStore is a key-value store backed by a single SQLite table. Values
// are JSON-encoded.
type SQLiteStore struct {
	db *sql.DB
}

var _ model.ProfileStore = (*SQLiteStore)(nil)

// NewSQLiteStore opens (or creates) a SQLite database at dbPath and ensures
// the kv table exists.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Verify the connection is alive.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite db: %w", err)
	}

	createTable := `CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`
	if _, err := db.Exec(createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating kv table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// get unmarshals the value stored under key into dst. Returns false if the
// key has never been written.
func (s *SQLiteStore) get(key string, dst any) (bool, error) {
	var raw string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, fmt.Errorf("decoding %s: %w", key, err)
	}
	return true, nil
}

// set writes the JSON encoding of v under key, replacing any prior value.
func (s *SQLiteStore) set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	_, err = s.db.Exec(
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, string(raw),
	)
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) idSet(key string) ([]string, error) {
	var ids []string
	if _, err := s.get(key, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *SQLiteStore) addID(key, jobID string) error {
	ids, err := s.idSet(key)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id == jobID {
			return nil
		}
	}
	return s.set(key, append(ids, jobID))
}

func (s *SQLiteStore) removeID(key, jobID string) error {
	ids, err := s.idSet(key)
	if err != nil {
		return err
	}
	kept := ids[:0]
	for _, id := range ids {
		if id != jobID {
			kept = append(kept, id)
		}
	}
	return s.set(key, kept)
}

// SavedJobs returns the saved job id set, in insertion order.
func (s *SQLiteStore) SavedJobs() ([]string, error) { return s.idSet(keySavedJobs) }

// SaveJob adds a job id to the saved set. Idempotent.
func (s *SQLiteStore) SaveJob(jobID string) error { return s.addID(keySavedJobs, jobID) }

// UnsaveJob removes a job id from the saved set.
func (s *SQLiteStore) UnsaveJob(jobID string) error { return s.removeID(keySavedJobs, jobID) }

// LikedJobs returns the liked job id set, in insertion order.
func (s *SQLiteStore) LikedJobs() ([]string, error) { return s.idSet(keyLikedJobs) }

// LikeJob adds a job id to the liked set. Idempotent.
func (s *SQLiteStore) LikeJob(jobID string) error { return s.addID(keyLikedJobs, jobID) }

// UnlikeJob removes a job id from the liked set.
func (s *SQLiteStore) UnlikeJob(jobID string) error { return s.removeID(keyLikedJobs, jobID) }

// Filter returns the persisted filter state; the zero filter if never set.
func (s *SQLiteStore) Filter() (model.Filter, error) {
	var f model.Filter
	if _, err := s.get(keyFilter, &f); err != nil {
		return model.Filter{}, err
	}
	return f, nil
}

// SetFilter persists the filter state.
func (s *SQLiteStore) SetFilter(f model.Filter) error { return s.set(keyFilter, f) }

// Profile returns the local user profile, or nil if none was created.
func (s *SQLiteStore) Profile() (*model.User, error) {
	var u model.User
	ok, err := s.get(keyProfile, &u)
	if err != nil || !ok {
		return nil, err
	}
	return &u, nil
}

// SetProfile persists the local user profile.
func (s *SQLiteStore) SetProfile(u model.User) error { return s.set(keyProfile, u) }

// Theme returns the persisted theme mode, defaulting to "dark".
func (s *SQLiteStore) Theme() (string, error) {
	var mode string
	ok, err := s.get(keyTheme, &mode)
	if err != nil {
		return "", err
	}
	if !ok || mode == "" {
		return "dark", nil
	}
	return mode, nil
}

// SetTheme persists the theme mode.
func (s *SQLiteStore) SetTheme(mode string) error { return s.set(keyTheme, mode) }

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
