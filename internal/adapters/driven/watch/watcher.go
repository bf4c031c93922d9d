// Package watch reloads the catalogue when its file changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/coastline-labs/shoal-cli/internal/logger"
)

// reloadInterval caps how often a burst of file events triggers a reload.
// Editors typically emit several write/rename events per save.
const reloadInterval = 500 * time.Millisecond

// Watcher watches a single catalogue file and invokes onChange when it is
// written or replaced. The parent directory is watched rather than the file
// itself because most editors save by renaming a temporary file over the
// original, which drops an inode-level watch.
type Watcher struct {
	path     string
	onChange func()
	limiter  *rate.Limiter
	fsw      *fsnotify.Watcher
	done     chan struct{}
	stopOnce sync.Once
}

// New creates a watcher for the given file. onChange is called from the
// watch goroutine; callers needing serialisation must provide it.
func New(path string, onChange func()) *Watcher {
	return &Watcher{
		path:     filepath.Clean(path),
		onChange: onChange,
		limiter:  rate.NewLimiter(rate.Every(reloadInterval), 1),
		done:     make(chan struct{}),
	}
}

// Start begins watching. It returns once the watch is established; events
// are handled on a background goroutine until ctx is cancelled or Stop is
// called.
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.fsw = fsw

	logger.Debug("Watching %s for catalogue changes", w.path)
	go w.loop(ctx)
	return nil
}

// loop dispatches file events until the watcher is stopped.
func (w *Watcher) loop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if !w.limiter.Allow() {
				continue
			}
			logger.Info("Catalogue changed (%s), reloading", ev.Op)
			w.onChange()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("Watch error: %v", err)
		}
	}
}

// Stop stops watching. Safe to call more than once.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.done)
		if w.fsw != nil {
			err = w.fsw.Close()
		}
	})
	return err
}
