package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	folioerrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "file", cfg.Store.Backend)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr)
	assert.Equal(t, "public", cfg.Build.Output)
	assert.Equal(t, 50*time.Millisecond, cfg.Typing.Interval)
	assert.InDelta(t, 0.1, cfg.Reveal.Threshold, 1e-9)
	assert.True(t, cfg.Unicode)
	require.NoError(t, Validate(cfg))
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "folio.yaml", `
logLevel: debug
store:
  backend: sqlite
  path: /tmp/prefs.db
typing:
  interval: 20ms
unicode: false
`)

	cfg, err := Load(LoadOptions{File: path, EnvFile: writeFile(t, dir, ".env", "")})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "sqlite", cfg.Store.Backend)
	assert.Equal(t, 20*time.Millisecond, cfg.Typing.Interval)
	assert.False(t, cfg.Unicode)
	assert.Equal(t, "public", cfg.Build.Output)

	storePath, err := cfg.StorePath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/prefs.db", storePath)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "folio.yaml", "server:\n  addr: 127.0.0.1:9000\n")
	t.Setenv("FOLIO_SERVER_ADDR", "0.0.0.0:7000")

	cfg, err := Load(LoadOptions{File: path, EnvFile: writeFile(t, dir, ".env", "")})
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:7000", cfg.Server.Addr)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := writeFile(t, dir, "test.env", "FOLIO_BUILD_OUTPUT=dist\n")
	t.Setenv("FOLIO_BUILD_OUTPUT", "")
	require.NoError(t, os.Unsetenv("FOLIO_BUILD_OUTPUT"))

	cfg, err := Load(LoadOptions{File: writeFile(t, dir, "folio.yaml", "{}\n"), EnvFile: envFile})
	require.NoError(t, err)
	assert.Equal(t, "dist", cfg.Build.Output)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	emptyEnv := writeFile(t, dir, ".env", "")

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load(LoadOptions{File: filepath.Join(dir, "nope.yaml"), EnvFile: emptyEnv})
		require.Error(t, err)
	})

	t.Run("missing explicit env file", func(t *testing.T) {
		_, err := Load(LoadOptions{File: writeFile(t, dir, "ok.yaml", "{}\n"), EnvFile: filepath.Join(dir, "nope.env")})
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(LoadOptions{File: writeFile(t, dir, "bad.yaml", "store: [\n"), EnvFile: emptyEnv})
		var perr *folioerrors.ParseError
		require.ErrorAs(t, err, &perr)
	})

	t.Run("invalid backend", func(t *testing.T) {
		_, err := Load(LoadOptions{File: writeFile(t, dir, "backend.yaml", "store:\n  backend: redis\n"), EnvFile: emptyEnv})
		var verr *folioerrors.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "store.backend", verr.Field)
	})

	t.Run("threshold out of range", func(t *testing.T) {
		for _, value := range []string{"2", "0", "-0.5"} {
			file := writeFile(t, dir, "threshold.yaml", "reveal:\n  threshold: "+value+"\n")
			_, err := Load(LoadOptions{File: file, EnvFile: emptyEnv})
			var verr *folioerrors.ValidationError
			require.ErrorAs(t, err, &verr, "threshold %s", value)
			assert.Equal(t, "reveal.threshold", verr.Field)
		}
	})

	t.Run("threshold at the upper bound", func(t *testing.T) {
		cfg, err := Load(LoadOptions{File: writeFile(t, dir, "full.yaml", "reveal:\n  threshold: 1\n"), EnvFile: emptyEnv})
		require.NoError(t, err)
		assert.InDelta(t, 1.0, cfg.Reveal.Threshold, 1e-9)
	})
}

func TestStorePathDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := Default()
	path, err := cfg.StorePath()
	require.NoError(t, err)
	assert.Equal(t, "preferences.json", filepath.Base(path))

	cfg.Store.Backend = "sqlite"
	path, err = cfg.StorePath()
	require.NoError(t, err)
	assert.Equal(t, "preferences.db", filepath.Base(path))

	cfg.Store.Backend = "memory"
	path, err = cfg.StorePath()
	require.NoError(t, err)
	assert.Empty(t, path)
}
