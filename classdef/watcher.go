package classdef

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/teranos/classbuilder/errors"
	"github.com/teranos/classbuilder/logger"
)

// Watcher reloads a definition file when it changes and hands the result to
// registered callbacks
type Watcher struct {
	path           string
	watcher        *fsnotify.Watcher
	callbacks      []ChangeCallback
	mu             sync.RWMutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
	logger         *zap.SugaredLogger
	done           chan struct{}
}

// ChangeCallback is called with every successfully reloaded definition
type ChangeCallback func(*Definition) error

// NewWatcher creates a watcher for a definition file. The parent directory is
// watched so editors that save by rename are still seen.
func NewWatcher(path string, debounce time.Duration, log *zap.SugaredLogger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s", path)
	}
	if _, err := FormatFromPath(abs); err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, errors.Wrapf(err, "failed to watch directory of %s", path)
	}

	return &Watcher{
		path:           abs,
		watcher:        fw,
		debouncePeriod: debounce,
		logger:         logger.OrNop(log),
		done:           make(chan struct{}),
	}, nil
}

// OnChange registers a callback to be called when the definition is reloaded
func (w *Watcher) OnChange(callback ChangeCallback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// Start begins watching for changes
func (w *Watcher) Start() {
	go w.watchLoop()
}

// Done is closed when the watch loop exits
func (w *Watcher) Done() <-chan struct{} {
	return w.done
}

func (w *Watcher) watchLoop() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}

			// Only reload on Write or Create events
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.logger.Debugw("Definition change detected",
					logger.FieldFile, event.Name,
					logger.FieldOp, event.Op.String())
				w.scheduleReload()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warnw("Definition watcher error",
				logger.FieldError, err)
		}
	}
}

// scheduleReload debounces rapid file changes and triggers reload
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debouncePeriod, func() {
		if err := w.reload(); err != nil {
			w.logger.Errorw("Definition reload failed",
				logger.FieldFile, w.path,
				logger.FieldError, err)
		}
	})
}

// reload loads the definition and calls all callbacks
func (w *Watcher) reload() error {
	def, err := Load(w.path)
	if err != nil {
		return err
	}

	w.logger.Infow("Definition reloaded",
		logger.FieldFile, w.path,
		logger.FieldClass, def.Name)

	w.mu.RLock()
	callbacks := make([]ChangeCallback, len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.RUnlock()

	for _, callback := range callbacks {
		if err := callback(def); err != nil {
			w.logger.Warnw("Definition change callback error",
				logger.FieldFile, w.path,
				logger.FieldError, err)
			// Continue calling other callbacks even if one fails
		}
	}
	return nil
}

// Stop stops watching for changes
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.mu.Unlock()
	return w.watcher.Close()
}
