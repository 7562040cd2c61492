package theme

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the active theme when its file in the user theme
// directory changes. Bundled themes only start reloading once a user file
// with the same name appears.
type Watcher struct {
	themeName string
	onChange  func(*Theme)

	watcher *fsnotify.Watcher
	done    chan struct{}
	mu      sync.Mutex
	running bool
}

// NewWatcher creates a watcher for the named theme. onChange runs on the
// watcher goroutine for every successful reload.
func NewWatcher(themeName string, onChange func(*Theme)) *Watcher {
	return &Watcher{
		themeName: themeName,
		onChange:  onChange,
	}
}

// Start begins watching the user theme directory.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	dir := ThemesDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	// Watch the directory, not the file: editors replace files on save.
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return err
	}

	w.watcher = watcher
	w.done = make(chan struct{})
	w.running = true
	go w.watch()
	return nil
}

func (w *Watcher) watch() {
	filename := w.themeName + ".toml"

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filename {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				slog.Debug("theme file changed, reloading", "theme", w.themeName)
				t, err := Load(w.themeName)
				if err != nil {
					slog.Warn("failed to reload theme", "theme", w.themeName, "error", err)
					continue
				}
				w.onChange(t)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("theme watcher error", "error", err)

		case <-w.done:
			return
		}
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return nil
	}
	w.running = false
	close(w.done)
	return w.watcher.Close()
}
