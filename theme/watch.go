// Copyright © 2025 Texelkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: theme/watch.go
// Summary: Hot reload for theme files. Watches the parent directory so
// editor rename-and-replace saves are caught, debounces bursts, and
// delivers reload results on a channel.

package theme

import (
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Update is one reload result. Theme is nil when the reload failed; Err
// explains why. The previously loaded theme stays valid either way.
type Update struct {
	Theme *Theme
	Err   error
}

// Watcher monitors a theme file for changes.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	updates  chan Update
	done     chan struct{}
}

// Watch starts monitoring path. The file does not need to exist yet; the
// first update arrives once it is created or written.
func Watch(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher:  fw,
		path:     path,
		debounce: 100 * time.Millisecond,
		updates:  make(chan Update, 1),
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Updates delivers reload results. The channel holds at most one pending
// update; rapid saves coalesce.
func (w *Watcher) Updates() <-chan Update {
	return w.updates
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	var timer *time.Timer
	base := filepath.Base(w.path)
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, w.reload)
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *Watcher) reload() {
	loaded, err := Load(w.path)
	if err != nil {
		log.Printf("theme: reload of %s failed: %v", w.path, err)
	}
	update := Update{Theme: loaded, Err: err}

	// Coalesce: drop a stale pending update, then deliver.
	select {
	case <-w.updates:
	default:
	}
	select {
	case w.updates <- update:
	case <-w.done:
	}
}
