package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/autosplit/autosplit-go/pkg/autosplit"
)

// ValidFormats maps supported output format names.
var ValidFormats = map[string]bool{
	"jsonl":  true,
	"pretty": true,
}

// OutputEvent writes an event in the requested format.
func OutputEvent(format string, ev autosplit.Event, w io.Writer) error {
	switch format {
	case "pretty":
		return OutputPretty(ev, w)
	default:
		return OutputJSON(ev, w)
	}
}

// OutputJSON writes an event as a single JSON line.
func OutputJSON(ev autosplit.Event, w io.Writer) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

// OutputPretty writes a human-readable one-line summary of an event.
func OutputPretty(ev autosplit.Event, w io.Writer) error {
	var err error
	switch ev.Type {
	case autosplit.EventStart:
		_, err = fmt.Fprintln(w, "> run started")
	case autosplit.EventSplit:
		_, err = fmt.Fprintf(w, "+ split %d\n", ev.SplitIndex)
	case autosplit.EventReset:
		_, err = fmt.Fprintln(w, "x run reset")
	default:
		_, err = fmt.Fprintf(w, "? %s\n", ev.Type)
	}
	if err != nil {
		return err
	}
	if ev.RawLine != "" {
		_, err = fmt.Fprintf(w, "    %s\n", ev.RawLine)
	}
	return err
}
