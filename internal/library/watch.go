package library

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces bursts of filesystem events into one change
// notification.
const DefaultDebounce = 200 * time.Millisecond

// Watcher notifies about external changes to the library file, so the UI
// can re-derive its board list. Editors and other processes may replace
// the file atomically, so the parent directory is watched rather than the
// file itself.
type Watcher struct {
	path     string
	debounce time.Duration

	fw      *fsnotify.Watcher
	changes chan struct{}

	mu     sync.Mutex
	closed bool
	timer  *time.Timer
}

// Watch starts watching the library file for changes.
func Watch(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:     filepath.Clean(path),
		debounce: DefaultDebounce,
		fw:       fw,
		changes:  make(chan struct{}, 1),
	}

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		fw.Close()
		return nil, err
	}

	go w.loop()
	return w, nil
}

// Changes returns a channel that receives a signal after the library file
// changes. Signals are debounced and coalesced.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	return w.fw.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
				w.scheduleNotify()
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			log.Warn("library watcher error", "err", err)
		}
	}
}

func (w *Watcher) scheduleNotify() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case w.changes <- struct{}{}:
		default:
		}
	})
}
