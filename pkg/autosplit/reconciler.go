package autosplit

import (
	"github.com/autosplit/autosplit-go/pkg/autosplit/event"
)

// Phase is a run timer's lifecycle phase.
type Phase int

const (
	// PhaseNotRunning means no attempt is in progress.
	PhaseNotRunning Phase = iota
	// PhaseRunning means an attempt is timing.
	PhaseRunning
	// PhasePaused means an attempt is in progress but the clock is stopped.
	PhasePaused
	// PhaseEnded means the final split has been recorded.
	PhaseEnded
)

// String returns the phase name for logs and rendering.
func (p Phase) String() string {
	switch p {
	case PhaseNotRunning:
		return "not_running"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// TimerControl is the surface the reconciler drives on the externally-owned
// run timer. The timer keeps its own split pointer; the reconciler never
// passes indices into it, only commands.
type TimerControl interface {
	Start()
	Split()
	Pause()
	Resume()

	// Reset abandons the current attempt. With discard=false the timer may
	// fold the attempt's segment times into its comparison data.
	Reset(discard bool)

	UndoSplit()
	SkipSplit()

	CurrentPhase() Phase

	// CurrentSplitIndex returns the timer's split pointer and whether an
	// attempt is in progress. ok=false means no split is active.
	CurrentSplitIndex() (int, bool)
}

// Cursor is the watcher-side split cursor the reconciler keeps in sync with
// the timer. *LogWatcher and *Watcher both satisfy it.
type Cursor interface {
	ResetSplitIndex()
	SetSplitIndex(index int)
}

// Reconciler applies watch events and manual commands to a timer while
// keeping the watcher's split cursor consistent with the timer's own split
// pointer.
//
// The two indices are deliberately separate authorities: the cursor tracks
// file-parsing progress, the timer tracks run progress. Every manual command
// that moves the timer's pointer non-monotonically (undo) or past a split
// (skip) is mirrored into the cursor here, so the two never drift for longer
// than one command.
type Reconciler struct {
	timer  TimerControl
	cursor Cursor
}

// NewReconciler creates a reconciler for the given timer. cursor may be nil
// when no log watcher is configured; manual commands then drive the timer
// alone.
func NewReconciler(timer TimerControl, cursor Cursor) *Reconciler {
	return &Reconciler{timer: timer, cursor: cursor}
}

// Apply applies a single watch event, respecting the timer's phase legality.
// Ignoring an illegal event is policy, not an error: a stray start keyword
// must not restart a running attempt, and an auto-split must not fire while
// the clock is paused, ended, or not yet started.
func (r *Reconciler) Apply(ev event.Event) {
	switch ev.Type {
	case event.Start:
		if r.timer.CurrentPhase() == PhaseNotRunning {
			r.timer.Start()
		}
	case event.Split:
		// The event's index is informational; the timer advances its own
		// pointer.
		if r.timer.CurrentPhase() == PhaseRunning {
			r.timer.Split()
		}
	case event.Reset:
		r.timer.Reset(true)
		if r.cursor != nil {
			r.cursor.ResetSplitIndex()
		}
	}
}

// ApplyAll applies a polled batch of events in order.
func (r *Reconciler) ApplyAll(events []event.Event) {
	for _, ev := range events {
		r.Apply(ev)
	}
}

// StartSplitResume is the primary manual action: start when idle, split when
// running, resume when paused. No cursor adjustment is needed; these moves
// go the direction the cursor already expects.
func (r *Reconciler) StartSplitResume() {
	switch r.timer.CurrentPhase() {
	case PhaseNotRunning:
		r.timer.Start()
	case PhaseRunning:
		r.timer.Split()
	case PhasePaused:
		r.timer.Resume()
	case PhaseEnded:
		// Nothing to do until a reset.
	}
}

// TogglePause pauses a running attempt or resumes a paused one.
func (r *Reconciler) TogglePause() {
	switch r.timer.CurrentPhase() {
	case PhaseRunning:
		r.timer.Pause()
	case PhasePaused:
		r.timer.Resume()
	}
}

// Reset abandons the attempt and rewinds the watcher cursor, same as a
// reset trigger seen in the log.
func (r *Reconciler) Reset(discard bool) {
	r.timer.Reset(discard)
	if r.cursor != nil {
		r.cursor.ResetSplitIndex()
	}
}

// UndoSplit rolls the timer's split pointer back by one and force-sets the
// watcher cursor to the timer's new index, so the next matching trigger
// re-arms for the undone split instead of skipping ahead.
func (r *Reconciler) UndoSplit() {
	r.timer.UndoSplit()
	r.syncCursor()
}

// SkipSplit advances the timer past the current split without recording a
// time, then force-sets the watcher cursor to match. Leaving the cursor on
// the skipped split would demand its trigger text appear twice.
func (r *Reconciler) SkipSplit() {
	r.timer.SkipSplit()
	r.syncCursor()
}

func (r *Reconciler) syncCursor() {
	if r.cursor == nil {
		return
	}
	idx, ok := r.timer.CurrentSplitIndex()
	if !ok {
		idx = 0
	}
	r.cursor.SetSplitIndex(idx)
}
