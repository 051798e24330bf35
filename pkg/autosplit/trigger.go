package autosplit

import (
	"strings"

	"github.com/autosplit/autosplit-go/pkg/autosplit/event"
)

// Trigger is an optional substring pattern looked for in log lines.
//
// The zero value is "no trigger". A present trigger with empty text is
// distinct from an absent one, so splits without automatic triggers cannot
// be confused with triggers that happen to be empty.
type Trigger struct {
	text string
	set  bool
}

// NewTrigger returns a present trigger matching lines that contain text.
func NewTrigger(text string) Trigger {
	return Trigger{text: text, set: true}
}

// TriggerFrom converts an optional string (nil = no trigger) to a Trigger.
func TriggerFrom(s *string) Trigger {
	if s == nil {
		return Trigger{}
	}
	return NewTrigger(*s)
}

// IsSet reports whether the trigger is present.
func (t Trigger) IsSet() bool { return t.set }

// Text returns the trigger substring and whether it is present.
func (t Trigger) Text() (string, bool) { return t.text, t.set }

// Matches reports whether the trigger is present and line contains its text.
// Matching is plain case-sensitive substring containment, not patterns.
func (t Trigger) Matches(line string) bool {
	return t.set && strings.Contains(line, t.text)
}

// TriggerSet holds the full trigger configuration for one run definition:
// optional start and reset triggers plus one optional trigger per split.
type TriggerSet struct {
	// Start fires a start event when its text appears.
	Start Trigger

	// Reset fires a reset event when its text appears.
	Reset Trigger

	// Splits holds one trigger per configured split, in split order.
	Splits []Trigger
}

// trimLine strips surrounding whitespace from a log line, including the
// carriage return CRLF logs leave behind.
func trimLine(line string) string {
	return strings.TrimSpace(line)
}

// matcher classifies log lines against a TriggerSet while tracking which
// split's trigger is expected next. It is the shared core of the poll-based
// LogWatcher and the channel-based streaming watcher; it performs no I/O and
// no locking of its own.
type matcher struct {
	triggers TriggerSet
	current  int
}

func newMatcher(triggers TriggerSet) *matcher {
	return &matcher{triggers: triggers}
}

// match classifies a single line. Checks run in fixed priority order and the
// first match wins: reset beats start beats the current split's trigger, so
// a line carrying both a reset keyword and a stale split keyword cannot
// produce false progress. Returns ok=false for lines that match nothing.
func (m *matcher) match(line string) (event.Event, bool) {
	if m.triggers.Reset.Matches(line) {
		// Cursor rewinds immediately, not deferred to the consumer.
		m.current = 0
		return event.NewReset(), true
	}

	if m.triggers.Start.Matches(line) {
		return event.NewStart(), true
	}

	if m.current < len(m.triggers.Splits) && m.triggers.Splits[m.current].Matches(line) {
		ev := event.NewSplit(m.current)
		m.current++
		return ev, true
	}

	return event.Event{}, false
}

// splitIndex returns the index of the next split whose trigger is expected.
// It is always a valid index into the trigger list or equal to its length,
// meaning no more auto-splits are pending.
func (m *matcher) splitIndex() int { return m.current }

// setSplitIndex force-synchronizes the cursor, clamping to the valid range
// [0, len(splits)].
func (m *matcher) setSplitIndex(index int) {
	if index < 0 {
		index = 0
	}
	if n := len(m.triggers.Splits); index > n {
		index = n
	}
	m.current = index
}
