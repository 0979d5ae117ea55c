// Package watch re-runs a callback whenever a hands file changes.
package watch

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/fsnotify/fsnotify"
)

// Watcher monitors one file. Bursts of writes within Debounce collapse into a
// single OnChange call.
type Watcher struct {
	Path     string
	Debounce time.Duration
	OnChange func(ctx context.Context) error
	Clock    quartz.Clock
	Logger   *log.Logger
}

// Run calls OnChange once for the current contents, then after every change
// until ctx is done. Errors from OnChange are logged, not returned.
func (w *Watcher) Run(ctx context.Context) error {
	clock := w.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	logger := w.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fsw.Close()

	// Watch the directory: editors often replace the file instead of writing it.
	dir, name := filepath.Split(filepath.Clean(w.Path))
	if dir == "" {
		dir = "."
	}
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	w.fire(ctx, logger)

	fired := make(chan struct{}, 1)
	var timer *quartz.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logger.Debug("File changed", "path", event.Name, "op", event.Op.String())
			if timer != nil {
				timer.Stop()
			}
			timer = clock.AfterFunc(w.Debounce, func() {
				select {
				case fired <- struct{}{}:
				default:
				}
			})

		case <-fired:
			w.fire(ctx, logger)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error", "error", err)
		}
	}
}

func (w *Watcher) fire(ctx context.Context, logger *log.Logger) {
	if err := w.OnChange(ctx); err != nil {
		logger.Error("Re-ranking failed", "path", w.Path, "error", err)
	}
}
