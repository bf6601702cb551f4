package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every path the CLI touches at a temporary directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestThemeCommands(t *testing.T) {
	dir := isolate(t)

	out, err := execute(t, "theme", "get")
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)

	out, err = execute(t, "theme", "toggle")
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)

	out, err = execute(t, "theme", "get")
	require.NoError(t, err)
	assert.Equal(t, "light\n", out, "toggle must persist")
	assert.FileExists(t, filepath.Join(dir, ".folio", "preferences.json"))

	out, err = execute(t, "theme", "set", "dark")
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)

	_, err = execute(t, "theme", "set", "blue")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be dark or light")
}

func TestThemeUsesConfigFile(t *testing.T) {
	dir := isolate(t)

	dbPath := filepath.Join(dir, "prefs.db")
	cfg := "store:\n  backend: sqlite\n  path: " + dbPath + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "folio.yaml"), []byte(cfg), 0o644))

	_, err := execute(t, "theme", "set", "light")
	require.NoError(t, err)
	assert.FileExists(t, dbPath)

	out, err := execute(t, "theme", "get")
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)
}

func TestInvalidConfigFails(t *testing.T) {
	isolate(t)
	t.Setenv("FOLIO_STORE_BACKEND", "redis")

	_, err := execute(t, "theme", "get")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store.backend")
}

func TestBuildWritesSite(t *testing.T) {
	dir := isolate(t)
	output := filepath.Join(dir, "site")

	out, err := execute(t, "build", "--output", output, "--theme", "light")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(output, "index.html"))

	page, err := os.ReadFile(filepath.Join(output, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), `data-theme="light"`)
	assert.FileExists(t, filepath.Join(output, "static", "site.css"))
	assert.FileExists(t, filepath.Join(output, "static", "site.js"))
}

func TestBuildUsesPersistedTheme(t *testing.T) {
	dir := isolate(t)
	_, err := execute(t, "theme", "set", "light")
	require.NoError(t, err)

	_, err = execute(t, "build", "-o", filepath.Join(dir, "out"))
	require.NoError(t, err)

	page, err := os.ReadFile(filepath.Join(dir, "out", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), `data-theme="light"`)
}

func TestBuildRejectsInvalidTheme(t *testing.T) {
	dir := isolate(t)
	_, err := execute(t, "build", "-o", filepath.Join(dir, "out"), "--theme", "sepia")
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "out", "index.html"))
}

func TestViewPrintsPageWithoutTerminal(t *testing.T) {
	isolate(t)

	out, err := execute(t, "view", "--width", "72")
	require.NoError(t, err)
	assert.Contains(t, out, "Tanishq Mahra")
	assert.Contains(t, out, "CHESS-RATING")
	assert.NotContains(t, out, "\x1b[?1049h", "plain output never enters the alternate screen")
}

func TestRootDefaultsToView(t *testing.T) {
	isolate(t)

	out, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Tanishq Mahra")
}

func TestValidateCommand(t *testing.T) {
	dir := isolate(t)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("personal:\n  name: [\n"), 0o644))
	_, err := execute(t, "validate", broken)
	require.Error(t, err)

	missing := filepath.Join(dir, "missing.yaml")
	require.NoError(t, os.WriteFile(missing, []byte("personal:\n  name: Someone\n"), 0o644))
	_, err = execute(t, "validate", missing)
	require.Error(t, err)

	good := filepath.Join(dir, "portfolio.yaml")
	require.NoError(t, os.WriteFile(good, []byte(validTable), 0o644))
	out, err := execute(t, "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid: 1 experiences, 1 projects")
}

const validTable = `personal:
  name: Someone
  email: someone@example.com
  phone: "+1-555-0100"
education:
  institution: Example University
  degree: BSc Computer Science
experiences:
  - id: acme
    company: Acme
    position: Engineer
    responsibilities:
      - Built things
projects:
  - id: widget
    title: Widget
    description: A **small** widget.
    technologies: [Go]
skills:
  programming: [Go]
`

func TestUnavailableStoreFallsBackToDefaultTheme(t *testing.T) {
	dir := isolate(t)
	home := filepath.Join(dir, "home")
	require.NoError(t, os.WriteFile(home, []byte("not a directory"), 0o644))
	t.Setenv("HOME", home)

	out, err := execute(t, "view", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "Tanishq Mahra")

	out, err = execute(t, "theme", "get")
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)

	out, err = execute(t, "theme", "toggle")
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)

	out, err = execute(t, "theme", "get")
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out, "nothing was persisted")

	output := filepath.Join(dir, "site")
	_, err = execute(t, "build", "-o", output)
	require.NoError(t, err)
	page, err := os.ReadFile(filepath.Join(output, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), `data-theme="dark"`)
}
