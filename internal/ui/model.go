// Package ui renders the split timer in the terminal.
//
// A single Bubble Tea model owns the timer, the watcher, and the reconciler,
// so every mutation happens on the update goroutine: the tick message polls
// the watcher and key messages drive manual commands, never concurrently.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/autosplit/autosplit-go/internal/splits"
	"github.com/autosplit/autosplit-go/internal/timer"
	"github.com/autosplit/autosplit-go/pkg/autosplit"
)

// tickInterval is the render/poll cadence. Fast enough for a smooth clock,
// slow enough to stay idle-cheap.
const tickInterval = 33 * time.Millisecond

// tickMsg drives watcher polling and clock refresh.
type tickMsg struct{}

// Model is the root Bubble Tea model.
type Model struct {
	run     *splits.File
	tm      *timer.Timer
	watcher *autosplit.LogWatcher // nil when no log is watched
	rec     *autosplit.Reconciler

	keys  keyMap
	help  help.Model
	theme theme
	width int
}

// New creates the app model. watcher may be nil; the timer then runs from
// manual commands alone.
func New(run *splits.File, tm *timer.Timer, watcher *autosplit.LogWatcher) Model {
	var cursor autosplit.Cursor
	if watcher != nil {
		cursor = watcher
	}

	return Model{
		run:     run,
		tm:      tm,
		watcher: watcher,
		rec:     autosplit.NewReconciler(tm, cursor),
		keys:    newKeyMap(),
		help:    help.New(),
		theme:   newTheme(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		if m.watcher != nil {
			m.rec.ApplyAll(m.watcher.Poll())
		}
		return m, tick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.watcher != nil {
			m.watcher.Close()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.StartSplit):
		m.rec.StartSplitResume()

	case key.Matches(msg, m.keys.Pause):
		m.rec.TogglePause()

	case key.Matches(msg, m.keys.Reset):
		// A finished run keeps its golds; an abandoned one is discarded.
		m.rec.Reset(m.tm.CurrentPhase() != autosplit.PhaseEnded)

	case key.Matches(msg, m.keys.Undo):
		m.rec.UndoSplit()

	case key.Matches(msg, m.keys.Skip):
		m.rec.SkipSplit()
	}

	return m, nil
}

// View renders the UI.
func (m Model) View() string {
	snap := m.tm.Snapshot()
	records := autosplit.BuildSegments(snap.Names, snap.SplitTimes, snap.BestSegments)

	var b strings.Builder

	b.WriteString(" " + m.theme.title.Render(m.run.Game))
	b.WriteString("  " + m.theme.subtitle.Render(m.run.Category))
	b.WriteString("\n\n")

	for i, rec := range records {
		b.WriteString(m.renderSplit(i, rec, snap))
		b.WriteString("\n")
	}

	b.WriteString("\n " + m.renderClock(snap) + "  " + m.renderStatus(snap.Phase) + "\n\n")

	b.WriteString(" " + m.help.View(m.keys) + "\n")
	if m.watcher != nil {
		b.WriteString(" " + m.theme.accent.Render("auto-split active") + "\n")
	}

	return b.String()
}

func (m Model) renderSplit(i int, rec autosplit.SegmentRecord, snap timer.Snapshot) string {
	isCurrent := snap.InProgress && i == snap.SplitIndex
	isDone := rec.SplitTime != nil

	style := m.theme.splitPending
	marker := " "
	switch {
	case isCurrent:
		style = m.theme.splitCurrent
		marker = ">"
	case isDone:
		style = m.theme.splitDone
		marker = "+"
	}

	name := style.Render(fmt.Sprintf(" %s %-24s", marker, rec.Name))

	switch {
	case isDone:
		row := name + fmt.Sprintf("  %10s", formatSplitTime(rec.SplitTime))
		if cmp, ok := rec.Comparison(); ok {
			row += "  " + m.deltaStyle(cmp).Render(formatDelta(*rec.Delta))
		}
		return row
	case rec.BestSegment != nil:
		// Upcoming splits show the comparison time.
		return name + "  " + m.theme.muted.Render(fmt.Sprintf("%10s", formatSplitTime(rec.BestSegment)))
	default:
		return name
	}
}

func (m Model) deltaStyle(cmp autosplit.Comparison) lipgloss.Style {
	switch cmp {
	case autosplit.Ahead:
		return m.theme.ahead
	case autosplit.Behind:
		return m.theme.behind
	default:
		return m.theme.even
	}
}

func (m Model) renderClock(snap timer.Snapshot) string {
	clock := formatClock(snap.Elapsed)
	switch snap.Phase {
	case autosplit.PhaseRunning:
		return m.theme.clockRunning.Render(clock)
	case autosplit.PhasePaused:
		return m.theme.clockPaused.Render(clock)
	case autosplit.PhaseEnded:
		return m.theme.clockEnded.Render(clock)
	default:
		return m.theme.clockIdle.Render(clock)
	}
}

func (m Model) renderStatus(phase autosplit.Phase) string {
	switch phase {
	case autosplit.PhaseRunning:
		return m.theme.clockRunning.Render("[RUNNING]")
	case autosplit.PhasePaused:
		return m.theme.clockPaused.Render("[PAUSED]")
	case autosplit.PhaseEnded:
		return m.theme.clockEnded.Render("[FINISHED]")
	default:
		return m.theme.muted.Render("[READY]")
	}
}
