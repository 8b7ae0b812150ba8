// Copyright 2018 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package watch uses the fsnotify library to watch icon source directories
// for changes.
package watch

import (
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watcher watches a set of directories. Changes are coalesced until the
// directories have been quiet for the debounce interval, and then the
// changed directories are sent on Updates, sorted.
type Watcher struct {
	Updates <-chan []string
	Errors  <-chan error

	fswatcher *fsnotify.Watcher
	dirs      []string
	debounce  time.Duration
	logger    *log.Logger

	updates  chan []string
	errorCh  chan error
	stop     chan struct{}
	stopOnce sync.Once
}

// Dirs starts watching dirs, which must all exist.
func Dirs(dirs []string, debounce time.Duration, logger *log.Logger) (*Watcher, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	fswatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fswatcher: fswatcher,
		debounce:  debounce,
		logger:    logger,
		updates:   make(chan []string),
		errorCh:   make(chan error, 1),
		stop:      make(chan struct{}),
	}
	w.Updates, w.Errors = w.updates, w.errorCh
	for _, d := range dirs {
		d = filepath.Clean(d)
		if err := fswatcher.Add(d); err != nil {
			fswatcher.Close()
			return nil, fmt.Errorf("watching %s: %w", d, err)
		}
		logger.Debug("watch added", "dir", d)
		w.dirs = append(w.dirs, d)
	}
	go w.watchLoop()
	return w, nil
}

// Unsubscribe stops watching and closes Updates.
func (w *Watcher) Unsubscribe() {
	w.stopOnce.Do(func() {
		w.logger.Debug("watch done")
		close(w.stop)
		w.fswatcher.Close()
	})
}

// dirFor maps an event to the watched directory it belongs to.
func (w *Watcher) dirFor(name string) string {
	name = filepath.Clean(name)
	if slices.Contains(w.dirs, name) {
		return name
	}
	return filepath.Dir(name)
}

func (w *Watcher) watchLoop() {
	defer close(w.updates)
	pending := map[string]bool{}
	var settled <-chan time.Time
	for {
		select {
		case <-w.stop:
			return
		case event, ok := <-w.fswatcher.Events:
			if !ok {
				return
			}
			w.logger.Debug("notified", "event", event)
			// Permission changes cannot alter icon markup.
			if event.Op == fsnotify.Chmod {
				continue
			}
			pending[w.dirFor(event.Name)] = true
			settled = time.After(w.debounce)
		case <-settled:
			settled = nil
			var changed []string
			for d := range pending {
				changed = append(changed, d)
			}
			slices.Sort(changed)
			clear(pending)
			select {
			case w.updates <- changed:
			case <-w.stop:
				return
			}
		case err, ok := <-w.fswatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", "err", err)
			select {
			case w.errorCh <- err:
			default:
			}
		}
	}
}
