package theme

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches the user themes directory and reloads the current theme
// when its file is written or created.
type Watcher struct {
	mu       sync.Mutex
	logger   *slog.Logger
	loader   *Loader
	watcher  *fsnotify.Watcher
	onChange func(*Theme)
	done     chan struct{}
	running  bool
}

// NewWatcher creates a watcher for the loader's themes directory.
func NewWatcher(loader *Loader, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		logger:  logger,
		loader:  loader,
		watcher: fw,
		done:    make(chan struct{}),
	}, nil
}

// SetChangeCallback sets the callback invoked with the reloaded theme.
func (w *Watcher) SetChangeCallback(callback func(*Theme)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = callback
}

// Start begins watching. It returns the error from adding the directory,
// which is usually that it does not exist.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.mu.Unlock()

	dir := w.loader.Dir()
	if err := w.watcher.Add(dir); err != nil {
		return err
	}

	w.mu.Lock()
	w.running = true
	w.mu.Unlock()

	go w.watch(ctx)
	w.logger.Debug("theme watcher started", "dir", dir)
	return nil
}

func (w *Watcher) watch(ctx context.Context) {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.handle(event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("theme watcher error", "error", err)

		case <-ctx.Done():
			return
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) handle(path string) {
	current := DefaultThemeName
	if t := w.loader.Current(); t != nil {
		current = t.Name
	}
	if filepath.Base(path) != current+".yaml" {
		return
	}

	w.logger.Info("theme file changed, reloading", "path", path)
	t, err := w.loader.Reload()
	if err != nil {
		w.logger.Warn("failed to reload theme", "path", path, "error", err)
		return
	}

	w.mu.Lock()
	callback := w.onChange
	w.mu.Unlock()
	if callback != nil {
		callback(t)
	}
}

// Stop stops the watcher and releases its resources.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return w.watcher.Close()
	}
	w.running = false
	close(w.done)
	return w.watcher.Close()
}

// IsRunning reports whether the watcher is active.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}
