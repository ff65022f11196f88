package deck

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultDebounce coalesces the event bursts editors produce when
// saving (write + chmod, or remove + rename for atomic saves).
const defaultDebounce = 250 * time.Millisecond

// Watcher reloads a deck file whenever it changes on disk and hands
// the result to a callback. The callback runs on the watcher's
// goroutine; keep it cheap (marquee's just updates the state store).
type Watcher struct {
	fsw      *fsnotify.Watcher
	path     string
	debounce time.Duration
	onReload func(Deck, error)
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// Watch starts watching the deck file at path. The file's directory is
// watched rather than the file itself, so editors that replace the
// file on save keep triggering reloads.
func Watch(path string, onReload func(Deck, error)) (*Watcher, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("init deck watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(resolved)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch deck dir: %w", err)
	}

	w := &Watcher{
		fsw:      fsw,
		path:     resolved,
		debounce: defaultDebounce,
		onReload: onReload,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher and waits for its goroutine to exit. No
// callbacks fire after Close returns.
func (w *Watcher) Close() error {
	close(w.stopCh)
	err := w.fsw.Close()
	<-w.doneCh
	return err
}

func (w *Watcher) run() {
	defer close(w.doneCh)

	var pending <-chan time.Time
	for {
		select {
		case <-w.stopCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			pending = time.After(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("deck watch error: %v", err)

		case <-pending:
			pending = nil
			d, err := Load(w.path)
			if err != nil {
				log.Printf("deck reload failed: %v", err)
			} else {
				log.Printf("deck reloaded: %d slides", d.Len())
			}
			w.onReload(d, err)
		}
	}
}
