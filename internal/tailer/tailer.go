// Package tailer follows a growing game log file and delivers its lines.
package tailer

import (
	"context"
	"fmt"
	"sync"

	"github.com/nxadm/tail"
)

// errBuffer is the buffer size for the error channel. A small buffer keeps
// errors from being lost while the consumer is busy matching lines.
const errBuffer = 16

// Config holds tailing configuration.
type Config struct {
	// Poll uses polling instead of inotify (more compatible, less efficient).
	Poll bool

	// FromStart reads from the beginning of the file instead of the end.
	// Trigger watching always tails from the end; this exists for tests and
	// diagnostic replays.
	FromStart bool
}

// Tailer wraps nxadm/tail for game log files. The file is followed and
// reopened when the game truncates or recreates it, so a log rotation mid-run
// does not stop the line stream.
type Tailer struct {
	t      *tail.Tail
	ctx    context.Context
	cancel context.CancelFunc
	lines  chan string
	errors chan error
	doneCh chan struct{}

	mu      sync.Mutex
	stopped bool
}

// New starts tailing filepath. The provided context controls the tailer's
// lifecycle. The file must exist; a missing log file means the game is not
// writing where the configuration says it does, which the caller should
// surface instead of silently waiting.
func New(ctx context.Context, filepath string, cfg Config) (*Tailer, error) {
	location := &tail.SeekInfo{Offset: 0, Whence: 2} // end of file
	if cfg.FromStart {
		location = &tail.SeekInfo{Offset: 0, Whence: 0}
	}

	t, err := tail.TailFile(filepath, tail.Config{
		Follow:    true,
		ReOpen:    true,
		Poll:      cfg.Poll,
		MustExist: true,
		Location:  location,
	})
	if err != nil {
		return nil, fmt.Errorf("opening tail: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)

	tailer := &Tailer{
		t:      t,
		ctx:    ctx,
		cancel: cancel,
		lines:  make(chan string),
		errors: make(chan error, errBuffer),
		doneCh: make(chan struct{}),
	}

	go tailer.run()

	return tailer, nil
}

// Lines returns the channel of log lines, without trailing newlines.
func (t *Tailer) Lines() <-chan string {
	return t.lines
}

// Errors returns the channel of tailing errors. Sends are non-blocking; an
// unread full buffer drops further errors.
func (t *Tailer) Errors() <-chan error {
	return t.errors
}

// Stop stops tailing and closes all channels. Safe to call multiple times.
func (t *Tailer) Stop() error {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return nil
	}
	t.stopped = true
	t.mu.Unlock()

	t.cancel()
	<-t.doneCh
	return t.t.Stop()
}

func (t *Tailer) run() {
	defer close(t.doneCh)
	defer close(t.lines)
	defer close(t.errors)

	for {
		select {
		case <-t.ctx.Done():
			return
		case line, ok := <-t.t.Lines:
			if !ok {
				return
			}
			if line.Err != nil {
				select {
				case t.errors <- fmt.Errorf("tail: %w", line.Err):
				case <-t.ctx.Done():
					return
				default:
				}
				continue
			}
			select {
			case t.lines <- line.Text:
			case <-t.ctx.Done():
				return
			}
		}
	}
}
