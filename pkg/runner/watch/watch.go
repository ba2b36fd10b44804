// Package watch keeps the generated site in step with the source sheet.
package watch

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/ihic/pkg/logging"
	"tableflip.dev/ihic/pkg/runner/generate"
	"tableflip.dev/ihic/pkg/store"
)

// RunFunc performs one generation run.
type RunFunc func(ctx context.Context) (*generate.Summary, error)

// Watch re-runs generation whenever the source file changes. Runs never
// overlap; changes seen during a run queue a single follow-up run.
type Watch struct {
	Source string
	Run    RunFunc
	Logger *zap.Logger

	// Report is called after each successful run.
	Report func(*generate.Summary)
	// Throttle coalesces bursts of writes. Zero means store.DefaultThrottle.
	Throttle time.Duration
	// Events replaces the filesystem watcher.
	Events <-chan store.Event
}

// Do blocks until ctx is cancelled or the event stream ends. Failed runs
// are logged and watching continues.
func (w *Watch) Do(ctx context.Context) error {
	if w.Run == nil {
		return errors.New("watch: run function required")
	}
	log := logging.OrNop(w.Logger)

	events := w.Events
	if events == nil {
		var err error
		if events, err = store.Watch(ctx, w.Source, w.Throttle); err != nil {
			return err
		}
	}
	log.Info("Watching for CSV changes", zap.String("source", w.Source))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			w.handle(ctx, log, ev)
		}
	}
}

func (w *Watch) handle(ctx context.Context, log *zap.Logger, ev store.Event) {
	if ev.Type == store.EventWatchError {
		log.Warn("Watcher error, regenerating", zap.Error(ev.Err))
	} else {
		log.Info("CSV changed, regenerating", zap.String("path", ev.Path))
	}

	sum, err := w.Run(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		log.Error("Build failed", zap.Error(err))
		return
	}
	if w.Report != nil {
		w.Report(sum)
	}
}
