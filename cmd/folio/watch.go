package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/folio/internal/logger"
)

const watchDebounce = 500 * time.Millisecond

// watchFile calls onChange once per burst of changes to path until ctx is
// done. The parent directory is watched so editors that replace the file
// are still seen.
func watchFile(ctx context.Context, path string, debounce time.Duration, log *logger.Logger, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer watcher.Close()

	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	log.WithFields(map[string]any{"path": target}).Info("watching data file")

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			log.WithFields(map[string]any{"path": event.Name, "op": event.Op.String()}).Debug("change detected")
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, onChange)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.WarnErr(err, "file watcher error")
		}
	}
}
