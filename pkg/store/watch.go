package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrNoSource is returned when asked to watch an empty path.
var ErrNoSource = errors.New("store: source path unknown")

// EventType describes the nature of a source change notification.
type EventType int

const (
	// EventSourceChanged indicates the watched file was written, created,
	// replaced or removed.
	EventSourceChanged EventType = iota

	// EventWatchError reports a watcher failure. Consumers should treat it
	// like a change, since the file state is unknown.
	EventWatchError
)

// Event is emitted by Watch when the source file changes.
type Event struct {
	Type EventType
	Path string
	Err  error
}

// DefaultThrottle coalesces bursts of writes from a single save.
const DefaultThrottle = 100 * time.Millisecond

// Watch streams change events for the file at path until ctx is cancelled.
// The parent directory is watched so editors that save by rename are seen.
// The returned channel holds at most one pending event; further changes that
// arrive before it is drained are folded into it. The channel is closed once
// ctx is done or the watcher fails to start reading.
func Watch(ctx context.Context, path string, delay time.Duration) (<-chan Event, error) {
	if path == "" {
		return nil, ErrNoSource
	}
	target, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("store: resolve %s: %w", path, err)
	}
	if delay <= 0 {
		delay = DefaultThrottle
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	dir := filepath.Dir(target)
	if err := watcher.Add(dir); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", dir, err)
	}

	events := make(chan Event, 1)

	go func() {
		defer close(events)
		defer closeWatcher()

		var sendMu sync.Mutex
		closed := false
		send := func(ev Event) {
			sendMu.Lock()
			defer sendMu.Unlock()
			if closed {
				return
			}
			select {
			case events <- ev:
			default:
				// A change is already queued; the consumer regenerates from
				// the current file anyway.
			}
		}

		throttle := newEventThrottle(delay)
		defer func() {
			throttle.Stop()
			sendMu.Lock()
			closed = true
			sendMu.Unlock()
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				throttle.Enqueue(Event{Type: EventWatchError, Path: target, Err: err}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != target {
					continue
				}
				if evt.Op == fsnotify.Chmod {
					continue
				}
				throttle.Enqueue(Event{Type: EventSourceChanged, Path: target}, send)
			}
		}
	}()

	return events, nil
}

// eventThrottle coalesces rapid change notifications so one save triggers
// one regeneration instead of one per write call.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending *Event
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{delay: delay}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	// A plain change wins over an error so consumers see the common case.
	if t.pending == nil || t.pending.Type == EventWatchError {
		e := ev
		t.pending = &e
	}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = nil
	t.timer = nil
	t.mu.Unlock()

	if pending != nil {
		send(*pending)
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.pending = nil
	t.mu.Unlock()
}
