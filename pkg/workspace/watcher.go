package workspace

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher rebuilds a workspace when its token sources change.
//
// Events are debounced: a burst of writes triggers a single rebuild once
// the workspace has been quiet for the debounce interval.
//
// Usage:
//
//	w, err := NewWatcher(builder, cfg, logger, onBuild)
//	if err != nil {
//	    return err
//	}
//	if err := w.Start(); err != nil {
//	    return err
//	}
//	defer w.Stop()
type Watcher struct {
	watcher *fsnotify.Watcher
	builder *Builder
	cfg     Config
	logger  *slog.Logger
	onBuild func(*BuildResult, error)

	debounce   time.Duration
	timer      *time.Timer
	debounceMu sync.Mutex

	stopChan chan struct{}
	stopped  bool
	mu       sync.Mutex
}

// NewWatcher creates a watcher for builder's root. onBuild, if non-nil, is
// called after every rebuild.
func NewWatcher(builder *Builder, cfg Config, logger *slog.Logger, onBuild func(*BuildResult, error)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.DebounceMs <= 0 {
		cfg.DebounceMs = 200
	}

	return &Watcher{
		watcher:  fsw,
		builder:  builder,
		cfg:      cfg.withOutputExcluded(builder.Root()),
		logger:   logger,
		onBuild:  onBuild,
		debounce: time.Duration(cfg.DebounceMs) * time.Millisecond,
		stopChan: make(chan struct{}),
	}, nil
}

// Start registers every non-excluded directory under the root and begins
// processing events in the background.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return fmt.Errorf("watcher already stopped")
	}
	w.mu.Unlock()

	root := w.builder.Root()
	if _, err := w.addTree(root); err != nil {
		return fmt.Errorf("failed to setup watches: %w", err)
	}

	w.logger.Info("token watcher started", "root", root)
	go w.eventLoop()
	return nil
}

// Stop stops the watcher. Safe to call more than once.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.stopChan)

	w.debounceMu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.debounceMu.Unlock()

	err := w.watcher.Close()
	w.logger.Info("token watcher stopped")
	return err
}

// addTree watches dir and every non-excluded directory below it. It reports
// whether any token source already exists in the tree.
func (w *Watcher) addTree(dir string) (bool, error) {
	root := w.builder.Root()
	found := false
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		rel := w.rel(path)
		if path != root && isExcluded(rel, w.cfg.Exclude) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() {
			if isIncluded(rel, w.cfg.Include) {
				found = true
			}
			return nil
		}
		if err := w.watcher.Add(path); err != nil {
			w.logger.Warn("failed to watch directory", "path", path, "error", err)
		}
		return nil
	})
	return found, err
}

func (w *Watcher) rel(path string) string {
	rel, err := filepath.Rel(w.builder.Root(), path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

func (w *Watcher) eventLoop() {
	for {
		select {
		case <-w.stopChan:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("file watcher error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	rel := w.rel(event.Name)
	if isExcluded(rel, w.cfg.Exclude) {
		return
	}

	// Files can land in a new directory before its watch exists, so the
	// tree is scanned once when it is added.
	if event.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			found, err := w.addTree(event.Name)
			if err != nil {
				w.logger.Warn("failed to watch new directory", "path", event.Name, "error", err)
			}
			w.logger.Debug("watching new directory", "path", event.Name, "has_sources", found)
			if found {
				w.scheduleRebuild()
			}
			return
		}
	}

	if !isIncluded(rel, w.cfg.Include) {
		return
	}

	w.logger.Debug("token source event", "op", event.Op.String(), "file", rel)
	w.scheduleRebuild()
}

func (w *Watcher) scheduleRebuild() {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.rebuild)
}

func (w *Watcher) rebuild() {
	w.mu.Lock()
	stopped := w.stopped
	w.mu.Unlock()
	if stopped {
		return
	}

	result, err := w.builder.Build(context.Background())
	if err != nil {
		w.logger.Error("token rebuild failed", "error", err)
	}
	if w.onBuild != nil {
		w.onBuild(result, err)
	}
}
