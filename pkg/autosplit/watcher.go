package autosplit

import (
	"bytes"
	"fmt"
	"os"

	"github.com/autosplit/autosplit-go/pkg/autosplit/event"
)

// readChunkSize bounds a single read from the log file. Poll loops until the
// file is drained, so the value only affects allocation, not correctness.
const readChunkSize = 64 * 1024

// LogWatcher incrementally reads newly appended lines from a single log file
// and matches them against configured triggers.
//
// The watcher is poll-based and single-threaded by design: the file handle,
// read offset, and split cursor are owned exclusively by the loop that calls
// Poll. Hosts that poll from one goroutine and issue cursor adjustments from
// another must wrap the watcher in their own lock, or use Watch instead.
type LogWatcher struct {
	path    string
	file    *os.File
	offset  int64  // byte offset of the next read; monotonic until truncation
	pending []byte // trailing bytes of a not-yet-terminated line
	matcher *matcher

	includeRawLine bool
}

// NewLogWatcher opens path and seeks to its current end, so only content
// appended after construction is ever considered. Historical log content is
// not replayed. Returns an error if the file cannot be opened or sized.
func NewLogWatcher(path string, triggers TriggerSet) (*LogWatcher, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("sizing log file: %w", err)
	}

	return &LogWatcher{
		path:    path,
		file:    file,
		offset:  info.Size(),
		matcher: newMatcher(triggers),
	}, nil
}

// SetIncludeRawLine controls whether emitted events carry the matched line.
func (w *LogWatcher) SetIncludeRawLine(include bool) {
	w.includeRawLine = include
}

// Poll reads every complete line appended since the previous call and returns
// the events they produced, in file order. It never blocks: reads are bounded
// by currently available bytes, and a partial trailing line is held back until
// its newline arrives.
//
// Transient read errors end the current call early; the watcher keeps its
// state and retries from the same position on the next call.
func (w *LogWatcher) Poll() []event.Event {
	w.recoverTruncation()

	var events []event.Event
	buf := make([]byte, readChunkSize)
	for {
		n, err := w.file.ReadAt(buf, w.offset)
		if n > 0 {
			w.offset += int64(n)
			w.pending = append(w.pending, buf[:n]...)
			events = w.drainLines(events)
		}
		if err != nil {
			// io.EOF is the normal end of new data; anything else is
			// treated the same and retried on the next call.
			return events
		}
	}
}

// recoverTruncation reopens the file from the beginning when it has shrunk
// below the stored read position (log rotation or truncation by the game).
// A growing file is read incrementally and needs no recovery.
func (w *LogWatcher) recoverTruncation() {
	info, err := os.Stat(w.path)
	if err != nil || info.Size() >= w.offset {
		return
	}

	file, err := os.Open(w.path)
	if err != nil {
		// Keep the old handle; the next Poll retries.
		return
	}
	w.file.Close()
	w.file = file
	w.offset = 0
	w.pending = nil
}

// drainLines consumes complete lines from the pending buffer, appending any
// events they produce. Bytes after the last newline stay pending.
func (w *LogWatcher) drainLines(events []event.Event) []event.Event {
	for {
		i := bytes.IndexByte(w.pending, '\n')
		if i < 0 {
			return events
		}
		line := trimLine(string(w.pending[:i]))
		w.pending = w.pending[i+1:]

		if ev, ok := w.matcher.match(line); ok {
			if w.includeRawLine {
				ev.RawLine = line
			}
			events = append(events, ev)
		}
	}
}

// SplitIndex returns the index of the next split whose trigger is expected.
func (w *LogWatcher) SplitIndex() int {
	return w.matcher.splitIndex()
}

// ResetSplitIndex rewinds the split cursor to the first split. Called after
// a manual reset so the next run re-arms from the top.
func (w *LogWatcher) ResetSplitIndex() {
	w.matcher.setSplitIndex(0)
}

// SetSplitIndex force-sets the split cursor. Called after manual undo or
// skip so the cursor tracks the timer's new split index instead of drifting.
func (w *LogWatcher) SetSplitIndex(index int) {
	w.matcher.setSplitIndex(index)
}

// Close releases the underlying file handle. The watcher must not be polled
// after Close.
func (w *LogWatcher) Close() error {
	return w.file.Close()
}
