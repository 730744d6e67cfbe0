package editor

import (
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultSettle is how long Stop keeps collecting events queued by the
// kernel before the editor exited.
const defaultSettle = 100 * time.Millisecond

// ChangeWatcher records whether a file was written while it ran.
//
// The parent directory is watched instead of the file itself, because many
// editors save by writing a temporary file and renaming it over the original.
type ChangeWatcher struct {
	watcher *fsnotify.Watcher
	target  string
	settle  time.Duration
	changed atomic.Bool
	done    chan struct{}
	stop    sync.Once
}

// WatchOption configures a ChangeWatcher.
type WatchOption func(*ChangeWatcher)

// WithSettle overrides how long Stop waits for late events.
func WithSettle(settle time.Duration) WatchOption {
	return func(w *ChangeWatcher) {
		w.settle = settle
	}
}

// WatchFile starts watching path. The parent directory of path must exist.
// A symlinked path is watched at the file it points to.
func WatchFile(path string, opts ...WatchOption) (*ChangeWatcher, error) {
	target, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	// Editors write to the link target, which may live in another directory.
	if resolved, evalErr := filepath.EvalSymlinks(target); evalErr == nil {
		target = resolved
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	err = fsw.Add(filepath.Dir(target))
	if err != nil {
		_ = fsw.Close()

		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	w := &ChangeWatcher{
		watcher: fsw,
		target:  target,
		settle:  defaultSettle,
		done:    make(chan struct{}),
	}

	for _, opt := range opts {
		opt(w)
	}

	go w.loop()

	return w, nil
}

// Changed reports whether a write to the target has been observed so far.
func (w *ChangeWatcher) Changed() bool {
	return w.changed.Load()
}

// Stop waits for late events, stops watching and reports whether the target
// was written. It is safe to call more than once.
func (w *ChangeWatcher) Stop() bool {
	w.stop.Do(func() {
		if w.settle > 0 && !w.changed.Load() {
			time.Sleep(w.settle)
		}

		_ = w.watcher.Close()
		<-w.done
	})

	return w.changed.Load()
}

func (w *ChangeWatcher) loop() {
	defer close(w.done)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if filepath.Clean(event.Name) != w.target {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.changed.Store(true)
			}
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}
