// Package watch runs an action whenever files land in a directory.
//
// It watches the directory with fsnotify, waits for Create and Write
// events to settle for a debounce delay, then invokes the handler. The
// handler always runs on the goroutine that called Run, so two runs never
// overlap.
package watch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Handler is invoked after the watched directory changes.
type Handler func(ctx context.Context) error

// Config holds watcher settings.
type Config struct {
	// Dir is the directory to watch. Subdirectories are not watched.
	Dir string

	// Debounce is how long events must be quiet before Handler runs.
	// Default: 500 milliseconds
	Debounce time.Duration

	// RunImmediately runs Handler once before waiting for events.
	RunImmediately bool
}

// Watcher triggers a Handler on directory changes.
type Watcher struct {
	cfg     Config
	handler Handler
	logger  zerolog.Logger

	mu       sync.Mutex
	debounce *time.Timer
	trigger  chan struct{}
}

// New creates a Watcher. Call Run to start watching.
func New(cfg Config, handler Handler, logger zerolog.Logger) *Watcher {
	if cfg.Debounce <= 0 {
		cfg.Debounce = 500 * time.Millisecond
	}
	return &Watcher{
		cfg:     cfg,
		handler: handler,
		logger:  logger,
		trigger: make(chan struct{}, 1),
	}
}

// Run blocks until ctx is cancelled or the underlying watcher fails.
// Handler errors are logged and do not stop the watch.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.cfg.Dir); err != nil {
		return fmt.Errorf("watch %q: %w", w.cfg.Dir, err)
	}
	defer w.stopTimer()

	w.logger.Info().Str("dir", w.cfg.Dir).Dur("debounce", w.cfg.Debounce).Msg("watching for new files")

	if w.cfg.RunImmediately {
		w.run(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			// Files moved in arrive as Create. Moves out of dir must not
			// trigger another run.
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			w.logger.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("change detected")
			w.schedule()

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error().Err(err).Msg("watcher error")

		case <-w.trigger:
			w.run(ctx)
		}
	}
}

func (w *Watcher) run(ctx context.Context) {
	if err := w.handler(ctx); err != nil {
		w.logger.Error().Err(err).Msg("watch handler failed")
	}
}

// schedule (re)starts the debounce timer. When it fires a single pending
// trigger is queued; extra triggers collapse into it.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(w.cfg.Debounce, func() {
		select {
		case w.trigger <- struct{}{}:
		default:
		}
	})
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
}
