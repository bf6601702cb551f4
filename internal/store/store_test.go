package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	folioerrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

func TestStoreBackendsRoundTrip(t *testing.T) {
	t.Parallel()

	backends := []struct {
		name string
		open func(t *testing.T) Store
	}{
		{"memory", func(t *testing.T) Store { return NewMemoryStore() }},
		{"file", func(t *testing.T) Store {
			s, err := NewFileStore(filepath.Join(t.TempDir(), "prefs.json"))
			require.NoError(t, err)
			return s
		}},
		{"sqlite", func(t *testing.T) Store {
			s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "prefs.db"))
			require.NoError(t, err)
			t.Cleanup(func() { _ = s.Close() })
			return s
		}},
	}

	for _, tc := range backends {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s := tc.open(t)

			_, ok, err := s.Get("theme")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.Set("theme", "light"))
			require.NoError(t, s.Set("theme", "dark"))

			value, ok, err := s.Get("theme")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "dark", value)
		})
	}
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "prefs.json")
	first, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Set("theme", "light"))

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temporary file should be renamed away")

	second, err := NewFileStore(path)
	require.NoError(t, err)
	value, ok, err := second.Get("theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", value)
}

func TestFileStoreCorruptFileFailsReadUntilRewritten(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s, err := NewFileStore(path)
	require.NoError(t, err)

	_, _, err = s.Get("theme")
	var storageErr *folioerrors.StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "get", storageErr.Op)

	require.NoError(t, s.Set("theme", "dark"))
	value, ok, err := s.Get("theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", value)
}

func TestSQLiteStorePersistsAcrossInstances(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "prefs.db")
	first, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Set("theme", "light"))
	require.NoError(t, first.Close())

	second, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer second.Close()

	value, ok, err := second.Get("theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", value)
}

func TestOpen(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	s, err := Open(BackendMemory, "")
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	s, err = Open(BackendFile, filepath.Join(dir, "prefs.json"))
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, s)

	s, err = Open(BackendSQLite, filepath.Join(dir, "prefs.db"))
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, s)
	require.NoError(t, s.(*SQLiteStore).Close())

	_, err = Open("redis", "")
	require.Error(t, err)
}
