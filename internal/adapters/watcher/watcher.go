// Package watcher implements file watching for sync --watch using fsnotify.
package watcher

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.skilldock.io/skilldock/internal/core/ports"
)

var _ ports.Watcher = (*Watcher)(nil)

// DefaultDebounceWindow coalesces bursts of file events into one callback.
// Editors routinely produce several events per save.
const DefaultDebounceWindow = 250 * time.Millisecond

// skipDirNames are directory names never worth watching.
var skipDirNames = map[string]bool{
	".git":         true,
	".tmp":         true,
	"node_modules": true,
}

// Watcher implements ports.Watcher. Watching a file actually watches its
// parent directory and filters by name, so atomic rename-replace writes are
// still observed.
type Watcher struct {
	debounce time.Duration
}

// New creates a Watcher with the default debounce window.
func New() *Watcher {
	return &Watcher{debounce: DefaultDebounceWindow}
}

// Watch blocks, invoking onChange (debounced) whenever the path changes,
// until the context is cancelled.
func (w *Watcher) Watch(ctx context.Context, path string, onChange func()) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = fw.Close() }()

	var filterName string
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		if err := addRecursive(fw, path); err != nil {
			return err
		}
	} else {
		filterName = filepath.Clean(path)
		if err := fw.Add(filepath.Dir(path)); err != nil {
			return err
		}
	}

	d := newDebouncer(w.debounce, onChange)
	defer d.stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filterName != "" && filepath.Clean(event.Name) != filterName {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			d.bump()

			// New directories inside a watched tree are added on the fly.
			if filterName == "" && event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = addRecursive(fw, event.Name)
				}
			}
		case _, ok := <-fw.Errors:
			if !ok {
				return nil
			}
		}
	}
}

// addRecursive registers root and every directory below it.
func addRecursive(fw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // unreadable subtrees are skipped, not fatal
		}
		if !d.IsDir() {
			return nil
		}
		if skipDirNames[d.Name()] {
			return fs.SkipDir
		}
		return fw.Add(path)
	})
}
