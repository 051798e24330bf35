// Package event defines the core Event type for trigger watching.
//
// This package is separated from the main autosplit package to avoid import
// cycles between pkg/autosplit and the internal packages that produce events.
package event

import (
	"sort"
	"strings"
)

// Type represents the type of watch event.
type Type string

const (
	// Start indicates the run-start trigger appeared in the log.
	Start Type = "start"

	// Split indicates the current split's trigger appeared in the log.
	Split Type = "split"

	// Reset indicates the reset trigger appeared in the log.
	Reset Type = "reset"
)

// allTypes is the canonical list of all event types.
var allTypes = []Type{Start, Split, Reset}

// TypeNames returns a sorted list of all valid event type names.
// This is the single source of truth for event type enumeration.
func TypeNames() []string {
	names := make([]string, len(allTypes))
	for i, t := range allTypes {
		names[i] = string(t)
	}
	sort.Strings(names)
	return names
}

// typeByName maps lowercase string names to Type for efficient lookup.
var typeByName = func() map[string]Type {
	m := make(map[string]Type, len(allTypes))
	for _, t := range allTypes {
		m[string(t)] = t
	}
	return m
}()

// ParseType converts a string to Type if valid.
// It is case-insensitive and trims leading/trailing whitespace.
// Returns the type and true if found, zero value and false otherwise.
func ParseType(name string) (Type, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	t, ok := typeByName[name]
	return t, ok
}

// Event represents a trigger match observed in the watched log file.
type Event struct {
	// Type is the event type.
	Type Type `json:"type"`

	// SplitIndex is the index of the split whose trigger matched.
	// Only meaningful for Split events; carried for observability, the
	// timer advances its own pointer regardless of this value.
	SplitIndex int `json:"split_index,omitempty"`

	// RawLine is the log line that matched (only included if requested).
	RawLine string `json:"raw_line,omitempty"`
}

// NewStart returns a Start event.
func NewStart() Event {
	return Event{Type: Start}
}

// NewSplit returns a Split event for the given split index.
func NewSplit(index int) Event {
	return Event{Type: Split, SplitIndex: index}
}

// NewReset returns a Reset event.
func NewReset() Event {
	return Event{Type: Reset}
}
