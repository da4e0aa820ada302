// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// =============================================================================
// CONFIG FILE WATCHER
// =============================================================================

// Watcher reloads the config file when it changes on disk and delivers
// the result to a callback. Editors tend to fire several events per save
// (write, chmod, rename), so changes are debounced before reloading.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
	onChange func(*Config, error)

	mu      sync.Mutex
	pending time.Time

	ctx    context.Context
	cancel context.CancelFunc
}

// NewWatcher creates a watcher for the config file at path. onChange is
// called from a background goroutine after each settled change with the
// reloaded config, or with a nil config and the load error.
func NewWatcher(path string, debounce time.Duration, onChange func(*Config, error)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Watcher{
		path:     path,
		watcher:  fsw,
		debounce: debounce,
		onChange: onChange,
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// Watch starts watching for config changes.
func (w *Watcher) Watch() error {
	// Watch the directory, not the file: save-via-rename replaces the
	// inode and a file-level watch would go stale after the first save.
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}

	go w.processEvents()
	go w.processPending()

	return nil
}

// Close stops watching and releases resources.
func (w *Watcher) Close() error {
	w.cancel()
	return w.watcher.Close()
}

// processEvents marks the config pending on each relevant event.
func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.mu.Lock()
			w.pending = time.Now()
			w.mu.Unlock()

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; the next event still arrives.
		}
	}
}

// processPending fires the reload once the debounce window has passed.
func (w *Watcher) processPending() {
	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return

		case <-ticker.C:
			w.mu.Lock()
			due := !w.pending.IsZero() && time.Since(w.pending) >= w.debounce
			if due {
				w.pending = time.Time{}
			}
			w.mu.Unlock()

			if due {
				cfg, err := LoadFrom(w.path)
				w.onChange(cfg, err)
			}
		}
	}
}
