package feed

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Replacer receives a fresh topic list.
type Replacer interface {
	Replace(texts []string)
}

// Watcher reloads a topics file into a Replacer whenever the file changes.
// It watches the file's directory so editors that save by rename are seen.
type Watcher struct {
	path     string
	target   Replacer
	log      *zap.Logger
	debounce time.Duration

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
}

// NewWatcher creates a watcher for path. Nothing happens until Start.
func NewWatcher(path string, target Replacer, log *zap.Logger) *Watcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Watcher{
		path:     filepath.Clean(path),
		target:   target,
		log:      log,
		debounce: 100 * time.Millisecond,
	}
}

// Load reads the file once and hands its topics to the target.
func (w *Watcher) Load() error {
	f, err := os.Open(w.path)
	if err != nil {
		return fmt.Errorf("open topics %s: %w", w.path, err)
	}
	defer f.Close()

	texts, err := ParseLines(f)
	if err != nil {
		return fmt.Errorf("%s: %w", w.path, err)
	}
	w.target.Replace(texts)
	w.log.Info("topics loaded", zap.String("path", w.path), zap.Int("topics", len(texts)))
	return nil
}

// Start begins watching. It is non-blocking; the loop runs until Stop or
// ctx is done.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		fw.Close()
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}

	w.watcher = fw
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	w.running = true

	go w.run(ctx, fw, w.stopCh, w.doneCh)
	w.log.Debug("watching topics", zap.String("path", w.path))
	return nil
}

// Stop stops the watcher and waits for its loop to exit. Once ctx is done
// the loop shuts itself down and Stop has nothing left to do.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	close(w.stopCh)
	fw, done := w.watcher, w.doneCh
	w.mu.Unlock()

	<-done
	w.closeWatcher(fw)
}

// Running reports whether the watch loop is active.
func (w *Watcher) Running() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// release marks the watcher stopped after ctx ended. It reports false when
// Stop got there first and owns the close.
func (w *Watcher) release(fw *fsnotify.Watcher) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running || w.watcher != fw {
		return false
	}
	w.running = false
	return true
}

func (w *Watcher) closeWatcher(fw *fsnotify.Watcher) {
	if err := fw.Close(); err != nil {
		w.log.Warn("closing topics watcher", zap.Error(err))
	}
}

func (w *Watcher) run(ctx context.Context, fw *fsnotify.Watcher, stopCh <-chan struct{}, doneCh chan struct{}) {
	defer close(doneCh)

	// Editors often write a file in several steps; reload once things settle.
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			if w.release(fw) {
				w.closeWatcher(fw)
			}
			return
		case <-stopCh:
			return

		case ev, ok := <-fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.log.Warn("topics watcher error", zap.Error(err))

		case <-timer.C:
			if err := w.Load(); err != nil {
				// A rename-based save can leave a short window without the file.
				w.log.Warn("reloading topics", zap.Error(err))
			}
		}
	}
}
