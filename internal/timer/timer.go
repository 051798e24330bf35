// Package timer implements the run timer: a phase state machine with
// per-split cumulative times and best-segment comparison data.
//
// The timer owns its own split pointer. Auto-split events and manual
// commands reach it through autosplit.TimerControl; it knows nothing about
// log files or trigger cursors.
package timer

import (
	"errors"
	"time"

	"github.com/autosplit/autosplit-go/pkg/autosplit"
)

// ErrNoSegments is returned when a timer is created without any splits.
var ErrNoSegments = errors.New("timer needs at least one segment")

type segment struct {
	name      string
	best      *time.Duration // best recorded segment time, comparison baseline
	splitTime *time.Duration // cumulative time of this attempt, nil until split
}

// Timer is a run timer. It is not safe for concurrent use; the hosting loop
// owns it, per the single-threaded polling model.
type Timer struct {
	segments []segment
	phase    autosplit.Phase
	current  int

	startedAt   time.Time
	pausedAt    time.Time
	pausedTotal time.Duration
	finalTime   time.Duration

	now func() time.Time // injectable clock for tests
}

// New creates a timer with the given split names and best-segment times.
// bests may be shorter than names; missing entries mean no comparison.
func New(names []string, bests []*time.Duration) (*Timer, error) {
	if len(names) == 0 {
		return nil, ErrNoSegments
	}

	segments := make([]segment, len(names))
	for i, name := range names {
		segments[i] = segment{name: name}
		if i < len(bests) && bests[i] != nil {
			d := *bests[i]
			segments[i].best = &d
		}
	}

	return &Timer{
		segments: segments,
		phase:    autosplit.PhaseNotRunning,
		now:      time.Now,
	}, nil
}

// Start begins a new attempt. No-op unless the timer is idle.
func (t *Timer) Start() {
	if t.phase != autosplit.PhaseNotRunning {
		return
	}
	t.phase = autosplit.PhaseRunning
	t.current = 0
	t.startedAt = t.now()
	t.pausedTotal = 0
	for i := range t.segments {
		t.segments[i].splitTime = nil
	}
}

// Split records the current split's cumulative time and advances to the
// next split. Recording the final split ends the run. No-op unless running.
func (t *Timer) Split() {
	if t.phase != autosplit.PhaseRunning {
		return
	}
	elapsed := t.Elapsed()
	t.segments[t.current].splitTime = &elapsed
	t.current++
	if t.current == len(t.segments) {
		t.phase = autosplit.PhaseEnded
		t.finalTime = elapsed
	}
}

// Pause stops the clock. No-op unless running.
func (t *Timer) Pause() {
	if t.phase != autosplit.PhaseRunning {
		return
	}
	t.phase = autosplit.PhasePaused
	t.pausedAt = t.now()
}

// Resume restarts the clock after a pause. Paused time does not count
// toward the run.
func (t *Timer) Resume() {
	if t.phase != autosplit.PhasePaused {
		return
	}
	t.pausedTotal += t.now().Sub(t.pausedAt)
	t.phase = autosplit.PhaseRunning
}

// Reset abandons the attempt and returns to idle from any phase. With
// discard=false, segment times from the attempt are first folded into the
// best-segment comparison data (in memory only).
func (t *Timer) Reset(discard bool) {
	if !discard {
		t.updateBestSegments()
	}
	t.phase = autosplit.PhaseNotRunning
	t.current = 0
	t.pausedTotal = 0
	for i := range t.segments {
		t.segments[i].splitTime = nil
	}
}

// updateBestSegments folds the attempt's completed segment times into the
// per-split bests.
func (t *Timer) updateBestSegments() {
	records := autosplit.BuildSegments(t.Names(), t.SplitTimes(), t.BestSegments())
	for i, rec := range records {
		if rec.Segment == nil {
			continue
		}
		if t.segments[i].best == nil || *rec.Segment < *t.segments[i].best {
			d := *rec.Segment
			t.segments[i].best = &d
		}
	}
}

// UndoSplit rolls the split pointer back by one, clearing the recorded
// time. Undoing the final split of an ended run resumes it.
func (t *Timer) UndoSplit() {
	if t.phase != autosplit.PhaseRunning && t.phase != autosplit.PhaseEnded {
		return
	}
	if t.current == 0 {
		return
	}
	t.current--
	t.segments[t.current].splitTime = nil
	if t.phase == autosplit.PhaseEnded {
		t.phase = autosplit.PhaseRunning
	}
}

// SkipSplit advances past the current split without recording a time. The
// final split cannot be skipped; it can only be split or undone.
func (t *Timer) SkipSplit() {
	if t.phase != autosplit.PhaseRunning {
		return
	}
	if t.current >= len(t.segments)-1 {
		return
	}
	t.segments[t.current].splitTime = nil
	t.current++
}

// CurrentPhase returns the timer's lifecycle phase.
func (t *Timer) CurrentPhase() autosplit.Phase {
	return t.phase
}

// CurrentSplitIndex returns the active split index. ok is false when no
// attempt is in progress (idle or ended).
func (t *Timer) CurrentSplitIndex() (int, bool) {
	switch t.phase {
	case autosplit.PhaseRunning, autosplit.PhasePaused:
		return t.current, true
	default:
		return 0, false
	}
}

// Elapsed returns the attempt's run time: zero when idle, frozen while
// paused, and fixed at the final split time once ended.
func (t *Timer) Elapsed() time.Duration {
	switch t.phase {
	case autosplit.PhaseRunning:
		return t.now().Sub(t.startedAt) - t.pausedTotal
	case autosplit.PhasePaused:
		return t.pausedAt.Sub(t.startedAt) - t.pausedTotal
	case autosplit.PhaseEnded:
		return t.finalTime
	default:
		return 0
	}
}

// Names returns the split names in order.
func (t *Timer) Names() []string {
	names := make([]string, len(t.segments))
	for i, s := range t.segments {
		names[i] = s.name
	}
	return names
}

// SplitTimes returns the attempt's cumulative split times, nil where the
// split has not been recorded.
func (t *Timer) SplitTimes() []*time.Duration {
	times := make([]*time.Duration, len(t.segments))
	for i, s := range t.segments {
		if s.splitTime != nil {
			d := *s.splitTime
			times[i] = &d
		}
	}
	return times
}

// BestSegments returns the per-split best segment times, nil where absent.
func (t *Timer) BestSegments() []*time.Duration {
	bests := make([]*time.Duration, len(t.segments))
	for i, s := range t.segments {
		if s.best != nil {
			d := *s.best
			bests[i] = &d
		}
	}
	return bests
}

// Snapshot is a point-in-time view of the timer for rendering.
type Snapshot struct {
	Phase        autosplit.Phase
	Elapsed      time.Duration
	SplitIndex   int // active split; meaningful only when InProgress
	InProgress   bool
	Names        []string
	SplitTimes   []*time.Duration
	BestSegments []*time.Duration
}

// Snapshot captures the timer's current state.
func (t *Timer) Snapshot() Snapshot {
	idx, ok := t.CurrentSplitIndex()
	return Snapshot{
		Phase:        t.phase,
		Elapsed:      t.Elapsed(),
		SplitIndex:   idx,
		InProgress:   ok,
		Names:        t.Names(),
		SplitTimes:   t.SplitTimes(),
		BestSegments: t.BestSegments(),
	}
}
