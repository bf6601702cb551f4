package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alexisbeaulieu97/folio/internal/config"
	"github.com/alexisbeaulieu97/folio/internal/logger"
	"github.com/alexisbeaulieu97/folio/internal/portfolio"
	"github.com/alexisbeaulieu97/folio/internal/store"
	"github.com/alexisbeaulieu97/folio/internal/theme"
)

// appContext bundles what a command needs once configuration is resolved.
type appContext struct {
	cfg *config.Config
	log *logger.Logger

	closers []io.Closer
}

func loadApp(flags *rootFlags, command string, logOut io.Writer) (*appContext, error) {
	cfg, err := config.Load(config.LoadOptions{File: flags.configFile, EnvFile: flags.envFile})
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if flags.logLevel != "" {
		level = flags.logLevel
	}

	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: logOut})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	return &appContext{cfg: cfg, log: log.ForCommand(command)}, nil
}

// portfolio returns the configured data file, or the embedded table.
func (a *appContext) portfolio() (*portfolio.Portfolio, error) {
	if a.cfg.DataFile == "" {
		return portfolio.Default()
	}
	return portfolio.Load(a.cfg.DataFile)
}

func (a *appContext) openStore() (store.Store, error) {
	path, err := a.cfg.StorePath()
	if err != nil {
		return nil, fmt.Errorf("resolve store path: %w", err)
	}

	s, err := store.Open(store.Backend(a.cfg.Store.Backend), path)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", a.cfg.Store.Backend, err)
	}
	if c, ok := s.(io.Closer); ok {
		a.closers = append(a.closers, c)
	}
	return s, nil
}

// themeProvider opens the configured store and resolves the persisted theme.
// A store that cannot be opened leaves the provider in memory only, on the
// default theme.
func (a *appContext) themeProvider() *theme.Provider {
	s, err := a.openStore()
	if err != nil {
		a.log.WarnErr(err, "theme preference unavailable, using the default")
		return theme.NewProvider(nil, theme.WithLogger(a.log))
	}
	return theme.NewProvider(s, theme.WithLogger(a.log))
}

func (a *appContext) Close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.log.WarnErr(err, "close store")
		}
	}
	a.closers = nil
}

// openLogFile returns ~/.folio/folio.log for appending.
func openLogFile() (*os.File, error) {
	path, err := store.DefaultPath("folio.log")
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
