// Package splits loads run definitions: the ordered list of named splits
// with optional best times and log triggers.
package splits

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/autosplit/autosplit-go/pkg/autosplit"
)

// ErrMalformed is returned when a splits file exists but cannot be parsed.
// Callers are expected to fall back to DefaultRun and keep going.
var ErrMalformed = errors.New("malformed splits file")

// Definition is one named split.
type Definition struct {
	Name string `json:"name"`

	// BestTimeMS is the best recorded segment time in milliseconds,
	// if one exists.
	BestTimeMS *int64 `json:"best_time_ms,omitempty"`

	// Trigger is the substring to watch for in the game log, if this split
	// auto-splits.
	Trigger *string `json:"trigger,omitempty"`
}

// BestSegment returns the best segment time as a duration, nil if absent.
func (d Definition) BestSegment() *time.Duration {
	if d.BestTimeMS == nil {
		return nil
	}
	dur := time.Duration(*d.BestTimeMS) * time.Millisecond
	return &dur
}

// File is a full run definition as stored on disk.
type File struct {
	Game     string       `json:"game"`
	Category string       `json:"category"`
	Splits   []Definition `json:"splits"`

	StartTrigger *string `json:"start_trigger,omitempty"`
	ResetTrigger *string `json:"reset_trigger,omitempty"`
}

// Load reads and parses a splits JSON file.
func Load(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading splits file: %w", err)
	}

	var f File
	if err := json.Unmarshal(content, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(f.Splits) == 0 {
		return nil, fmt.Errorf("%w: no splits defined", ErrMalformed)
	}

	return &f, nil
}

// DefaultRun returns the hard-coded single-split definition used when no
// splits file is provided or the provided one fails to parse.
func DefaultRun() *File {
	return &File{
		Game:     "Game",
		Category: "Any%",
		Splits: []Definition{
			{Name: "Split 1"},
		},
	}
}

// Names returns the split names in order.
func (f *File) Names() []string {
	names := make([]string, len(f.Splits))
	for i, s := range f.Splits {
		names[i] = s.Name
	}
	return names
}

// BestSegments returns the per-split best segment times, nil where absent.
func (f *File) BestSegments() []*time.Duration {
	bests := make([]*time.Duration, len(f.Splits))
	for i, s := range f.Splits {
		bests[i] = s.BestSegment()
	}
	return bests
}

// Triggers assembles the watcher trigger configuration from the definition.
func (f *File) Triggers() autosplit.TriggerSet {
	set := autosplit.TriggerSet{
		Start:  autosplit.TriggerFrom(f.StartTrigger),
		Reset:  autosplit.TriggerFrom(f.ResetTrigger),
		Splits: make([]autosplit.Trigger, len(f.Splits)),
	}
	for i, s := range f.Splits {
		set.Splits[i] = autosplit.TriggerFrom(s.Trigger)
	}
	return set
}
