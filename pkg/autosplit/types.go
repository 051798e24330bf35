package autosplit

import "github.com/autosplit/autosplit-go/pkg/autosplit/event"

// Re-export event types for convenience.
// Users can import just "github.com/autosplit/autosplit-go/pkg/autosplit"
// and use autosplit.Event, autosplit.EventSplit, etc.

// Event represents a trigger match observed in the watched log file.
type Event = event.Event

// EventType represents the type of watch event.
type EventType = event.Type

// Event type constants.
const (
	EventStart = event.Start
	EventSplit = event.Split
	EventReset = event.Reset
)
