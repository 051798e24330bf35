package ui

import (
	"fmt"
	"time"
)

// formatClock renders a duration as M:SS.mmm, growing to H:MM:SS.mmm past
// an hour. Negative durations carry a leading sign.
func formatClock(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}

	hours := int(d / time.Hour)
	mins := int(d/time.Minute) % 60
	secs := int(d/time.Second) % 60
	millis := int(d/time.Millisecond) % 1000

	if hours > 0 {
		return fmt.Sprintf("%s%d:%02d:%02d.%03d", sign, hours, mins, secs, millis)
	}
	return fmt.Sprintf("%s%d:%02d.%03d", sign, mins, secs, millis)
}

// formatSplitTime renders an optional cumulative time, with a placeholder
// for splits that have not been reached.
func formatSplitTime(d *time.Duration) string {
	if d == nil {
		return "-:--.---"
	}
	return formatClock(*d)
}

// formatDelta renders a delta in seconds with an explicit sign, +1.50 or
// -0.32 style.
func formatDelta(d time.Duration) string {
	return fmt.Sprintf("%+.2f", d.Seconds())
}
