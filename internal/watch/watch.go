// Package watch re-runs a function whenever one of a set of files changes.
// Parent directories are watched rather than the files themselves so that
// editors which save by renaming a temp file over the original are noticed.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is the quiet period after the last change before fn runs.
const DefaultDebounce = 100 * time.Millisecond

// Func is invoked after a watched file changes. A returned error is logged
// and watching continues.
type Func func() error

// Run watches paths until ctx is cancelled.
func Run(ctx context.Context, paths []string, debounce time.Duration, logger *zap.Logger, fn Func) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	targets := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", p, err)
		}
		targets[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
		logger.Debug("watching directory", zap.String("dir", dir))
	}

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !targets[ev.Name] || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			logger.Debug("change detected", zap.String("file", ev.Name), zap.String("op", ev.Op.String()))
			pending = time.After(debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", zap.Error(err))

		case <-pending:
			pending = nil
			if err := fn(); err != nil {
				logger.Error("re-render failed", zap.Error(err))
			}
		}
	}
}
