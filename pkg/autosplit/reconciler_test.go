package autosplit

import (
	"testing"

	"github.com/autosplit/autosplit-go/pkg/autosplit/event"
)

// fakeTimer records calls and lets tests script phase and split index.
type fakeTimer struct {
	phase      Phase
	splitIndex int
	inProgress bool

	calls []string
}

func (f *fakeTimer) Start() { f.calls = append(f.calls, "start") }
func (f *fakeTimer) Split() { f.calls = append(f.calls, "split") }
func (f *fakeTimer) Pause() { f.calls = append(f.calls, "pause") }
func (f *fakeTimer) Resume() { f.calls = append(f.calls, "resume") }
func (f *fakeTimer) Reset(discard bool) {
	if discard {
		f.calls = append(f.calls, "reset(discard)")
	} else {
		f.calls = append(f.calls, "reset(keep)")
	}
}
func (f *fakeTimer) UndoSplit() { f.calls = append(f.calls, "undo") }
func (f *fakeTimer) SkipSplit() { f.calls = append(f.calls, "skip") }
func (f *fakeTimer) CurrentPhase() Phase { return f.phase }
func (f *fakeTimer) CurrentSplitIndex() (int, bool) {
	return f.splitIndex, f.inProgress
}

// fakeCursor records cursor synchronization calls.
type fakeCursor struct {
	index  int
	resets int
}

func (c *fakeCursor) ResetSplitIndex() { c.index = 0; c.resets++ }
func (c *fakeCursor) SetSplitIndex(i int) { c.index = i }

func lastCall(f *fakeTimer) string {
	if len(f.calls) == 0 {
		return ""
	}
	return f.calls[len(f.calls)-1]
}

func TestReconciler_StartGatedOnPhase(t *testing.T) {
	tests := []struct {
		phase     Phase
		wantStart bool
	}{
		{PhaseNotRunning, true},
		{PhaseRunning, false},
		{PhasePaused, false},
		{PhaseEnded, false},
	}

	for _, tt := range tests {
		t.Run(tt.phase.String(), func(t *testing.T) {
			tm := &fakeTimer{phase: tt.phase}
			rec := NewReconciler(tm, &fakeCursor{})

			rec.Apply(event.NewStart())

			started := lastCall(tm) == "start"
			if started != tt.wantStart {
				t.Errorf("start applied = %v in phase %v, want %v", started, tt.phase, tt.wantStart)
			}
		})
	}
}

func TestReconciler_SplitGatedOnRunning(t *testing.T) {
	tests := []struct {
		phase     Phase
		wantSplit bool
	}{
		{PhaseRunning, true},
		{PhaseNotRunning, false},
		{PhasePaused, false},
		{PhaseEnded, false},
	}

	for _, tt := range tests {
		t.Run(tt.phase.String(), func(t *testing.T) {
			tm := &fakeTimer{phase: tt.phase}
			rec := NewReconciler(tm, &fakeCursor{})

			rec.Apply(event.NewSplit(3))

			split := lastCall(tm) == "split"
			if split != tt.wantSplit {
				t.Errorf("split applied = %v in phase %v, want %v", split, tt.phase, tt.wantSplit)
			}
		})
	}
}

func TestReconciler_ResetUnconditional(t *testing.T) {
	for _, phase := range []Phase{PhaseNotRunning, PhaseRunning, PhasePaused, PhaseEnded} {
		t.Run(phase.String(), func(t *testing.T) {
			tm := &fakeTimer{phase: phase}
			cursor := &fakeCursor{index: 4}
			rec := NewReconciler(tm, cursor)

			rec.Apply(event.NewReset())

			if got := lastCall(tm); got != "reset(discard)" {
				t.Errorf("last call = %q, want reset(discard)", got)
			}
			if cursor.index != 0 || cursor.resets != 1 {
				t.Errorf("cursor = %+v, want reset to 0", cursor)
			}
		})
	}
}

func TestReconciler_UndoSyncsCursor(t *testing.T) {
	// Timer rolled back from split 3 to 2; the cursor must follow to 2,
	// not stay at 3.
	tm := &fakeTimer{phase: PhaseRunning, splitIndex: 2, inProgress: true}
	cursor := &fakeCursor{index: 3}
	rec := NewReconciler(tm, cursor)

	rec.UndoSplit()

	if got := lastCall(tm); got != "undo" {
		t.Fatalf("last call = %q, want undo", got)
	}
	if cursor.index != 2 {
		t.Errorf("cursor index = %d, want 2", cursor.index)
	}
}

func TestReconciler_SkipSyncsCursor(t *testing.T) {
	tm := &fakeTimer{phase: PhaseRunning, splitIndex: 5, inProgress: true}
	cursor := &fakeCursor{index: 4}
	rec := NewReconciler(tm, cursor)

	rec.SkipSplit()

	if cursor.index != 5 {
		t.Errorf("cursor index = %d, want 5", cursor.index)
	}
}

func TestReconciler_SyncWithoutActiveSplit(t *testing.T) {
	// ok=false from the timer means cursor 0.
	tm := &fakeTimer{phase: PhaseEnded, splitIndex: 7, inProgress: false}
	cursor := &fakeCursor{index: 7}
	rec := NewReconciler(tm, cursor)

	rec.UndoSplit()

	if cursor.index != 0 {
		t.Errorf("cursor index = %d, want 0", cursor.index)
	}
}

func TestReconciler_NilCursor(t *testing.T) {
	tm := &fakeTimer{phase: PhaseRunning, inProgress: true}
	rec := NewReconciler(tm, nil)

	// None of these may panic without a watcher.
	rec.Apply(event.NewReset())
	rec.Reset(true)
	rec.UndoSplit()
	rec.SkipSplit()

	if len(tm.calls) == 0 {
		t.Error("timer received no calls")
	}
}

func TestReconciler_StartSplitResume(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseNotRunning, "start"},
		{PhaseRunning, "split"},
		{PhasePaused, "resume"},
		{PhaseEnded, ""},
	}

	for _, tt := range tests {
		t.Run(tt.phase.String(), func(t *testing.T) {
			tm := &fakeTimer{phase: tt.phase}
			rec := NewReconciler(tm, nil)

			rec.StartSplitResume()

			if got := lastCall(tm); got != tt.want {
				t.Errorf("last call = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReconciler_TogglePause(t *testing.T) {
	tm := &fakeTimer{phase: PhaseRunning}
	rec := NewReconciler(tm, nil)

	rec.TogglePause()
	if got := lastCall(tm); got != "pause" {
		t.Fatalf("last call = %q, want pause", got)
	}

	tm.phase = PhasePaused
	rec.TogglePause()
	if got := lastCall(tm); got != "resume" {
		t.Fatalf("last call = %q, want resume", got)
	}

	tm.phase = PhaseNotRunning
	calls := len(tm.calls)
	rec.TogglePause()
	if len(tm.calls) != calls {
		t.Error("TogglePause acted on an idle timer")
	}
}

func TestReconciler_ApplyAllOrder(t *testing.T) {
	tm := &fakeTimer{phase: PhaseNotRunning}
	rec := NewReconciler(tm, &fakeCursor{})

	// Start is legal while idle; the split right after is not, because the
	// fake's phase never changes. Order and gating must both hold.
	rec.ApplyAll([]event.Event{event.NewStart(), event.NewSplit(0)})

	if len(tm.calls) != 1 || tm.calls[0] != "start" {
		t.Errorf("calls = %v, want [start]", tm.calls)
	}
}
