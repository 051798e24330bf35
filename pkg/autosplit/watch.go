package autosplit

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/autosplit/autosplit-go/internal/tailer"
	"github.com/autosplit/autosplit-go/pkg/autosplit/event"
)

// Watcher is the channel-based counterpart to LogWatcher for hosts that
// prefer push delivery over polling. Lines are tailed on a background
// goroutine, so the split cursor is mutex-guarded: cursor adjustments from
// the reconciler stay atomic with respect to in-flight line matching.
type Watcher struct {
	path string
	cfg  *watchConfig

	mu       sync.Mutex
	matcher  *matcher
	closed   bool
	watching bool
	cancel   context.CancelFunc
	doneCh   chan struct{}
}

// NewWatcher creates a streaming watcher for the log file at path.
// Validates that the file exists but starts no goroutines (cheap to call).
func NewWatcher(path string, triggers TriggerSet, opts ...WatchOption) (*Watcher, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat log file: %w", err)
	}

	return &Watcher{
		path:    path,
		cfg:     applyWatchOptions(opts),
		matcher: newMatcher(triggers),
	}, nil
}

// Watch starts tailing and returns the event and error channels. Both close
// when ctx is cancelled, Close is called, or the tailer fails fatally.
// Watch can only be called once per Watcher instance.
func (w *Watcher) Watch(ctx context.Context) (<-chan event.Event, <-chan error) {
	w.mu.Lock()
	if w.closed || w.watching {
		w.mu.Unlock()
		eventCh := make(chan event.Event)
		errCh := make(chan error)
		close(eventCh)
		close(errCh)
		return eventCh, errCh
	}
	w.watching = true

	ctx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.doneCh = make(chan struct{})
	w.mu.Unlock()

	eventCh := make(chan event.Event)
	errCh := make(chan error, 1)

	go w.run(ctx, eventCh, errCh)

	return eventCh, errCh
}

// Close stops the watcher and releases resources. Safe to call multiple
// times. Blocks until the tailing goroutine has exited.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true

	if w.cancel != nil {
		w.cancel()
	}
	doneCh := w.doneCh
	w.mu.Unlock()

	if doneCh != nil {
		<-doneCh
	}
	return nil
}

// SplitIndex returns the index of the next split whose trigger is expected.
func (w *Watcher) SplitIndex() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.matcher.splitIndex()
}

// ResetSplitIndex rewinds the split cursor to the first split.
func (w *Watcher) ResetSplitIndex() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.matcher.setSplitIndex(0)
}

// SetSplitIndex force-sets the split cursor, typically to the timer's split
// index after a manual undo or skip.
func (w *Watcher) SetSplitIndex(index int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.matcher.setSplitIndex(index)
}

func (w *Watcher) run(ctx context.Context, eventCh chan<- event.Event, errCh chan<- error) {
	defer close(w.doneCh)
	defer close(eventCh)
	defer close(errCh)

	t, err := tailer.New(ctx, w.path, tailer.Config{Poll: w.cfg.poll})
	if err != nil {
		sendError(errCh, fmt.Errorf("starting tailer: %w", err))
		return
	}
	defer func() { _ = t.Stop() }()

	w.cfg.logger.Debug("watching log file", "path", w.path)

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-t.Lines():
			if !ok {
				return
			}
			ev, ok := w.matchLine(line)
			if !ok {
				continue
			}
			w.cfg.logger.Debug("trigger matched", "type", ev.Type, "split_index", ev.SplitIndex)
			select {
			case eventCh <- ev:
			case <-ctx.Done():
				return
			}
		case err, ok := <-t.Errors():
			if !ok {
				return
			}
			sendError(errCh, err)
		}
	}
}

// matchLine classifies one line under the cursor lock.
func (w *Watcher) matchLine(line string) (event.Event, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	ev, ok := w.matcher.match(trimLine(line))
	if ok && w.cfg.includeRawLine {
		ev.RawLine = line
	}
	return ev, ok
}

// sendError sends an error non-blocking, dropping it if the buffer is full.
func sendError(errCh chan<- error, err error) {
	select {
	case errCh <- err:
	default:
	}
}

// Watch is a convenience function that creates a streaming watcher and
// starts it. Returns an error immediately for initialization failures.
func Watch(ctx context.Context, path string, triggers TriggerSet, opts ...WatchOption) (<-chan event.Event, <-chan error, error) {
	w, err := NewWatcher(path, triggers, opts...)
	if err != nil {
		return nil, nil, err
	}
	events, errs := w.Watch(ctx)
	return events, errs, nil
}
