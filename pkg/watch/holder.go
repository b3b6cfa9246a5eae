// Package watch keeps a compiled property table in sync with its source file.
package watch

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/fsnotify/fsnotify"

	"github.com/rpi-demonstrator/vhal-go/pkg/vehicle"
)

// Watch errors.
var (
	// ErrStopped is returned when watching is requested on a stopped Holder.
	ErrStopped = errors.New("holder stopped")
	// ErrWatching is returned when WatchFile is called on a Holder that is
	// already watching its file.
	ErrWatching = errors.New("holder already watching")
)

// FileLoader compiles a configuration file. *jsonconfig.Loader satisfies it.
type FileLoader interface {
	LoadFile(path string) (vehicle.Table, error)
}

// Holder provides thread-safe access to the last successfully compiled table
// of a configuration file.
type Holder struct {
	mu       sync.RWMutex
	table    vehicle.Table
	path     string
	loader   FileLoader
	logger   *slog.Logger
	watcher  *fsnotify.Watcher
	onChange []func(vehicle.Table)

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewHolder compiles path and returns a Holder for the result. A nil logger
// discards output.
func NewHolder(path string, loader FileLoader, logger *slog.Logger) (*Holder, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	table, err := loader.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("absolute path: %w", err)
	}

	return &Holder{
		table:  table,
		path:   absPath,
		loader: loader,
		logger: logger.With("path", absPath),
		stopCh: make(chan struct{}),
	}, nil
}

// Path returns the absolute path of the watched file.
func (h *Holder) Path() string {
	return h.path
}

// Table returns the current table. Callers must not modify it.
func (h *Holder) Table() vehicle.Table {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.table
}

// Reload recompiles the file. On failure the previous table is kept and the
// error is returned.
func (h *Holder) Reload() error {
	h.logger.Info("reloading property config")

	next, err := h.loader.LoadFile(h.path)
	if err != nil {
		h.logger.Error("property config reload failed, keeping old table", "error", err)
		return fmt.Errorf("reload config: %w", err)
	}

	h.mu.Lock()
	prev := h.table
	h.table = next
	callbacks := append([]func(vehicle.Table){}, h.onChange...)
	h.mu.Unlock()

	h.logChanges(prev, next)

	for _, fn := range callbacks {
		fn(next)
	}

	h.logger.Info("property config reloaded", "properties", len(next))
	return nil
}

// OnChange registers fn to be called with the new table after every
// successful reload.
func (h *Holder) OnChange(fn func(vehicle.Table)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onChange = append(h.onChange, fn)
}

// WatchFile starts reloading whenever the file is written or recreated.
func (h *Holder) WatchFile() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	select {
	case <-h.stopCh:
		return ErrStopped
	default:
	}
	if h.watcher != nil {
		return ErrWatching
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	// The directory is watched so editors that replace the file are seen.
	if err := watcher.Add(filepath.Dir(h.path)); err != nil {
		watcher.Close()
		return fmt.Errorf("watch directory: %w", err)
	}

	h.watcher = watcher
	h.doneCh = make(chan struct{})
	go h.watchLoop(watcher, h.doneCh)

	h.logger.Info("watching property config for changes")
	return nil
}

// WatchSignals reloads on SIGHUP until the Holder is stopped.
func (h *Holder) WatchSignals() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGHUP)

	go func() {
		for {
			select {
			case <-sigCh:
				h.logger.Info("received SIGHUP, reloading property config")
				_ = h.Reload()
			case <-h.stopCh:
				signal.Stop(sigCh)
				return
			}
		}
	}()
}

// Stop ends file and signal watching. It is safe to call more than once.
func (h *Holder) Stop() {
	h.stopOnce.Do(func() {
		close(h.stopCh)

		h.mu.Lock()
		watcher, done := h.watcher, h.doneCh
		h.mu.Unlock()

		if watcher != nil {
			watcher.Close()
			<-done
		}
	})
}

func (h *Holder) watchLoop(watcher *fsnotify.Watcher, done chan struct{}) {
	defer close(done)
	filename := filepath.Base(h.path)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filename {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			h.logger.Debug("property config changed", "event", event.Op.String())
			_ = h.Reload()

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			h.logger.Error("file watcher error", "error", err)

		case <-h.stopCh:
			return
		}
	}
}

func (h *Holder) logChanges(prev, next vehicle.Table) {
	var added, removed int
	for id := range next {
		if _, ok := prev[id]; !ok {
			added++
		}
	}
	for id := range prev {
		if _, ok := next[id]; !ok {
			removed++
		}
	}
	if added > 0 || removed > 0 {
		h.logger.Info("property set changed", "added", added, "removed", removed)
	}
}
