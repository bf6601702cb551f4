package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	folioerrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

const createPreferencesTable = `CREATE TABLE IF NOT EXISTS preferences (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// SQLiteStore keeps preferences in a single-table SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, folioerrors.NewStorageError(string(BackendSQLite), "open", "", fmt.Errorf("create directory: %w", err))
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, folioerrors.NewStorageError(string(BackendSQLite), "open", "", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createPreferencesTable); err != nil {
		_ = db.Close()
		return nil, folioerrors.NewStorageError(string(BackendSQLite), "migrate", "", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Get implements Store.
func (s *SQLiteStore) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, folioerrors.NewStorageError(string(BackendSQLite), "get", key, err)
	}
	return value, true, nil
}

// Set implements Store.
func (s *SQLiteStore) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO preferences (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return folioerrors.NewStorageError(string(BackendSQLite), "set", key, err)
	}
	return nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var _ Store = (*SQLiteStore)(nil)
