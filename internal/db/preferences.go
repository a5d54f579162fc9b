package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// PreferenceStore is a key-value store backed by the preferences table.
// It satisfies theme.Store.
type PreferenceStore struct {
	db  *sql.DB
	now func() time.Time
}

// Preferences returns the preference store.
func (d *DB) Preferences() *PreferenceStore {
	return &PreferenceStore{db: d.sql, now: time.Now}
}

func (s *PreferenceStore) Get(key string) (string, bool, error) {
	var v string
	err := s.db.QueryRow(`SELECT value FROM preferences WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading preference %q: %w", key, err)
	}
	return v, true, nil
}

func (s *PreferenceStore) Set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, s.now().Unix())
	if err != nil {
		return fmt.Errorf("writing preference %q: %w", key, err)
	}
	return nil
}
