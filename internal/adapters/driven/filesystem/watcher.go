// Package filesystem provides the local-filesystem adapters: the
// fsnotify-backed directory watcher, the file reader and the
// post-sync disposers.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"github.com/bon-clevique/NotionSync/internal/core/domain"
	"github.com/bon-clevique/NotionSync/internal/core/ports/driven"
	"github.com/bon-clevique/NotionSync/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.FileWatcher = (*Watcher)(nil)

// eventBuffer sizes the outgoing channel so a briefly slow consumer
// does not stall fsnotify delivery.
const eventBuffer = 64

// Watcher delivers creation events for a fixed set of directories.
// Watching is non-recursive: entries created inside subdirectories,
// archived/ included, never produce events.
type Watcher struct {
	dirs      []string
	fsWatcher *fsnotify.Watcher

	events    chan domain.FileEvent
	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewWatcher creates a watcher for the given directories. Validation
// happens later, in Watch.
func NewWatcher(dirs []string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fs watcher: %w", err)
	}
	return &Watcher{
		dirs:      dirs,
		fsWatcher: fsWatcher,
		events:    make(chan domain.FileEvent, eventBuffer),
		done:      make(chan struct{}),
	}, nil
}

// Watch validates every directory, creating missing ones, then starts
// delivering creation events until ctx is cancelled or Close is
// called. Any directory that cannot be made watchable is fatal.
func (w *Watcher) Watch(ctx context.Context) (<-chan domain.FileEvent, error) {
	for _, dir := range w.dirs {
		if err := ensureDir(dir); err != nil {
			return nil, err
		}
		if err := w.fsWatcher.Add(dir); err != nil {
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
		logger.Info("Watching directory: %s", dir)
	}

	w.wg.Add(1)
	go w.loop(ctx)

	return w.events, nil
}

// loop translates fsnotify notifications into domain events. Each
// creation gets a fresh correlation id here, at the boundary.
func (w *Watcher) loop(ctx context.Context) {
	defer w.wg.Done()
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Create) {
				continue
			}
			ev := domain.FileEvent{ID: uuid.NewString(), Path: event.Name}
			select {
			case w.events <- ev:
			case <-ctx.Done():
				return
			case <-w.done:
				return
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			logger.Warn("Watch error: %v", err)
		}
	}
}

// Close stops event delivery and releases the underlying watcher.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsWatcher.Close()
		w.wg.Wait()
	})
	return err
}

// ensureDir makes sure dir exists, is a directory and is readable,
// creating it (and any parents) when missing.
func ensureDir(dir string) error {
	info, err := os.Stat(dir)
	switch {
	case os.IsNotExist(err):
		logger.Warn("Watch directory does not exist, creating: %s", dir)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create watch directory %s: %w", dir, err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("stat watch directory %s: %w", dir, err)
	case !info.IsDir():
		return fmt.Errorf("watch path %s is not a directory", dir)
	}

	// Opening a directory fails without read permission.
	f, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf("watch directory %s is not readable: %w", dir, err)
	}
	return f.Close()
}
