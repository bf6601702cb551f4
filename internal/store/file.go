package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	folioerrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

const fileVersion = "1.0"

// preferencesFile is the on-disk layout of a FileStore.
type preferencesFile struct {
	Version string            `json:"version"`
	Values  map[string]string `json:"values"`
}

// FileStore keeps preferences in a JSON document written atomically on every
// Set.
type FileStore struct {
	path   string
	mu     sync.RWMutex
	values map[string]string
	// loadErr is reported by Get when the file exists but cannot be parsed.
	loadErr error
}

// NewFileStore opens the store at path, creating its directory. A missing
// file starts empty; an unreadable one is kept and reported on Get.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path:   path,
		values: make(map[string]string),
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, folioerrors.NewStorageError(string(BackendFile), "open", "", fmt.Errorf("create directory: %w", err))
	}

	if err := s.load(); err != nil && !os.IsNotExist(err) {
		s.loadErr = err
	}

	return s, nil
}

func (s *FileStore) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var file preferencesFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse preferences: %w", err)
	}

	s.values = file.Values
	if s.values == nil {
		s.values = make(map[string]string)
	}

	return nil
}

// Get implements Store.
func (s *FileStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.loadErr != nil {
		return "", false, folioerrors.NewStorageError(string(BackendFile), "get", key, s.loadErr)
	}

	value, ok := s.values[key]
	return value, ok, nil
}

// Set implements Store. A successful write replaces a previously corrupt
// file.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(map[string]string, len(s.values)+1)
	for k, v := range s.values {
		next[k] = v
	}
	next[key] = value

	if err := s.write(next); err != nil {
		return folioerrors.NewStorageError(string(BackendFile), "set", key, err)
	}

	s.values = next
	s.loadErr = nil
	return nil
}

func (s *FileStore) write(values map[string]string) error {
	data, err := json.MarshalIndent(preferencesFile{Version: fileVersion, Values: values}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

var _ Store = (*FileStore)(nil)
