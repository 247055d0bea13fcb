package agent

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nstehr/striker/rules"
)

// Tuner watches a tuning file and swaps the engine's rule set whenever the
// file changes. A file that fails to load or compile leaves the old rules
// active.
type Tuner struct {
	engine   *rules.Engine
	path     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
	reloaded chan rules.Tuning
}

// NewTuner creates a tuner for path. The parent directory is watched, not
// the file itself, so editors that save via rename keep triggering reloads.
func NewTuner(engine *rules.Engine, path string) (*Tuner, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve tuning path: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	return &Tuner{
		engine:   engine,
		path:     abs,
		watcher:  watcher,
		debounce: 200 * time.Millisecond,
		reloaded: make(chan rules.Tuning, 1),
	}, nil
}

// Reloaded delivers each successfully applied tuning. Sends never block;
// a reader that falls behind only sees the latest.
func (t *Tuner) Reloaded() <-chan rules.Tuning { return t.reloaded }

// Start runs the watch loop. It blocks until ctx is cancelled and closes the
// watcher on return.
func (t *Tuner) Start(ctx context.Context) {
	defer t.watcher.Close()
	slog.Info("tuner started", "path", t.path)

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			slog.Info("tuner stopped")
			return
		case event, ok := <-t.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != t.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			// Debounce bursts of writes from a single save.
			if timer == nil {
				timer = time.NewTimer(t.debounce)
			} else {
				timer.Reset(t.debounce)
			}
			fire = timer.C
		case err, ok := <-t.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("tuner watch error", "error", err)
		case <-fire:
			fire = nil
			t.reload()
		}
	}
}

func (t *Tuner) reload() {
	tuning, err := rules.LoadTuning(t.path)
	if err != nil {
		slog.Error("tuning reload failed", "path", t.path, "error", err)
		return
	}
	if err := t.engine.Swap(tuning); err != nil {
		slog.Error("tuning swap failed", "path", t.path, "error", err)
		return
	}
	select {
	case <-t.reloaded:
	default:
	}
	select {
	case t.reloaded <- tuning:
	default:
	}
}
