// Package watch reloads the profile collection when its file changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/profdir/internal/core/ports/driven"
	"github.com/custodia-labs/profdir/internal/logger"
)

// Ensure FileWatcher implements the interface.
var _ driven.ProfileWatcher = (*FileWatcher)(nil)

// DefaultDebounce batches the burst of events editors emit on save.
const DefaultDebounce = 200 * time.Millisecond

// FileWatcher watches a single file. It watches the parent directory
// so that editors which save by rename are still seen.
type FileWatcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	closed   bool
}

// NewFileWatcher creates a watcher for path. A non-positive debounce
// uses DefaultDebounce.
func NewFileWatcher(path string, debounce time.Duration) (*FileWatcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &FileWatcher{
		watcher:  w,
		path:     abs,
		debounce: debounce,
	}, nil
}

// Watch blocks until ctx is cancelled or the watcher is closed. onChange
// runs on the watcher goroutine once per debounced burst of events.
func (fw *FileWatcher) Watch(ctx context.Context, onChange func()) error {
	timer := time.NewTimer(fw.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			if !fw.relevant(event) {
				continue
			}
			logger.Debug("Watch: %s %s", event.Op, event.Name)
			timer.Reset(fw.debounce)

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watch error: %v", err)

		case <-timer.C:
			onChange()
		}
	}
}

// relevant filters events down to writes, creates and renames of the file.
func (fw *FileWatcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != fw.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

// Path returns the watched file.
func (fw *FileWatcher) Path() string {
	return fw.path
}

// Close stops the underlying watcher. It is safe to call more than once.
func (fw *FileWatcher) Close() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	if fw.closed {
		return nil
	}
	fw.closed = true
	return fw.watcher.Close()
}
