package cards

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDelay coalesces the burst of events a single file replacement
// produces.
const reloadDelay = 250 * time.Millisecond

// Watch reloads the repository whenever the file at path is written or
// replaced and hands the new repository to onReload. A failed reload is
// logged and the previous repository stays in use. Watch blocks until ctx
// is done.
func Watch(ctx context.Context, path string, logger *slog.Logger, onReload func(*Repository)) error {
	if logger == nil {
		logger = slog.Default()
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	relevant, dir := watchTarget(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	timer := time.NewTimer(reloadDelay)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(ev.Name) {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				timer.Reset(reloadDelay)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("card file watcher error", "error", err)
		case <-timer.C:
			repo, err := Load(ctx, path, logger)
			if err != nil {
				logger.Warn("card reload failed, keeping previous data", "path", path, "error", err)
				continue
			}
			onReload(repo)
		}
	}
}

// watchTarget returns the directory to watch and a filter for the events
// that should trigger a reload. A single file is watched through its
// parent directory so atomic renames over it are seen.
func watchTarget(path string) (func(name string) bool, string) {
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		return func(name string) bool {
			return slices.Contains(csvFiles, filepath.Base(name))
		}, path
	}
	target := filepath.Clean(path)
	return func(name string) bool { return filepath.Clean(name) == target }, filepath.Dir(path)
}
