// Package watcher triggers rebuilds when a scene file changes on disk.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// SceneWatcher watches a single scene file and invokes a callback on
// change, debounced so editor write bursts trigger one rebuild.
// Watching the directory rather than the file survives the
// rename-and-replace save strategy most editors use.
type SceneWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	callback func()
	debounce time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// New creates a watcher for the given scene file
func New(path string, debounce time.Duration, callback func()) (*SceneWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := w.Add(filepath.Dir(absPath)); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	return &SceneWatcher{
		watcher:  w,
		path:     absPath,
		callback: callback,
		debounce: debounce,
	}, nil
}

// Start begins delivering change events. Errors from the underlying
// watcher are reported through the returned channel.
func (sw *SceneWatcher) Start() <-chan error {
	errs := make(chan error, 1)

	go func() {
		for {
			select {
			case event, ok := <-sw.watcher.Events:
				if !ok {
					return
				}
				if event.Name != sw.path {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					sw.fileChanged()
				}

			case err, ok := <-sw.watcher.Errors:
				if !ok {
					return
				}
				select {
				case errs <- err:
				default:
				}
			}
		}
	}()

	return errs
}

// fileChanged schedules the callback after the debounce interval,
// resetting the clock on every new event
func (sw *SceneWatcher) fileChanged() {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	if sw.timer != nil {
		sw.timer.Stop()
	}
	sw.timer = time.AfterFunc(sw.debounce, sw.callback)
}

// Close stops the watcher
func (sw *SceneWatcher) Close() error {
	sw.mu.Lock()
	if sw.timer != nil {
		sw.timer.Stop()
	}
	sw.mu.Unlock()
	return sw.watcher.Close()
}
