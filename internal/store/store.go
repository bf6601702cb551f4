// Package store persists small string preferences between sessions.
package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store is a key-value persistence facility for string preferences.
type Store interface {
	// Get returns the stored value and whether the key was present.
	Get(key string) (string, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
}

// Backend names a Store implementation.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

// Open constructs the store for backend at path. Memory stores ignore path.
func Open(backend Backend, path string) (Store, error) {
	switch backend {
	case BackendFile, "":
		s, err := NewFileStore(path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case BackendSQLite:
		s, err := NewSQLiteStore(path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}

// DefaultPath returns ~/.folio/<name>.
func DefaultPath(name string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".folio", name), nil
}
