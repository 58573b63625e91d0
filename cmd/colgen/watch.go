package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/hupe1980/colstore"
)

// watchDebounce coalesces the burst of events an editor save produces.
var watchDebounce = 100 * time.Millisecond

// watchSchema calls regen after every change to the schema file until ctx
// is done. It watches the parent directory so atomic renames by editors
// are seen. Generation errors are logged and the loop continues.
func watchSchema(ctx context.Context, schema string, logger *colstore.Logger, regen func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("colgen: watch: %w", err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(schema)
	if err != nil {
		return fmt.Errorf("colgen: watch: %w", err)
	}
	dir := filepath.Dir(abs)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("colgen: watch %s: %w", dir, err)
	}

	logger.Info("watching schema", "file", abs)

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("schema changed", "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
			} else {
				timer.Reset(watchDebounce)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			if err := regen(); err != nil {
				logger.Warn("regeneration failed", "error", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)

		case <-ctx.Done():
			logger.Debug("watch stopped")
			return nil
		}
	}
}
