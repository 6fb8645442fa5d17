package watch

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

// FileWatcher reports changes to a single snapshot file. It watches the
// parent directory so that editors which replace the file on save are seen.
type FileWatcher struct {
	Path    string
	Changes <-chan struct{}

	changes chan struct{}
	done    chan struct{}
	watcher *fsnotify.Watcher
}

func NewFileWatcher(path string) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	ch := make(chan struct{}, 1)
	return &FileWatcher{
		Path:    abs,
		Changes: ch,
		changes: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}, nil
}

func (w *FileWatcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.Path)); err != nil {
		return fmt.Errorf("watching %s: %w", w.Path, err)
	}
	go w.loop()
	return nil
}

// Stop closes the watcher and waits for the event loop to exit.
func (w *FileWatcher) Stop() {
	w.watcher.Close()
	<-w.done
	close(w.changes)
}

func (w *FileWatcher) loop() {
	defer close(w.done)

	var pending time.Time
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.Path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending = time.Now()
			}

		case now := <-ticker.C:
			if !pending.IsZero() && now.Sub(pending) >= debounce {
				pending = time.Time{}
				w.emit()
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// emit coalesces bursts: a change already waiting to be read is enough.
func (w *FileWatcher) emit() {
	select {
	case w.changes <- struct{}{}:
	default:
	}
}
