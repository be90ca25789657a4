// Package format renders meeting times and related values for terminal output.
package format

import (
	"fmt"
	"time"
)

// dateTimeLayout is the layout used for meeting start and end times.
const dateTimeLayout = "2006-01-02 15:04 MST"

// Placeholder is printed for values the server did not send.
const Placeholder = "-"

// DurationHuman formats a duration for human display.
// Examples: "2h", "30m", "1h30m", "45s"
func DurationHuman(d time.Duration) string {
	if d >= time.Hour {
		hours := d / time.Hour
		minutes := (d % time.Hour) / time.Minute
		if minutes > 0 {
			return fmt.Sprintf("%dh%dm", hours, minutes)
		}
		return fmt.Sprintf("%dh", hours)
	}
	if d >= time.Minute {
		return fmt.Sprintf("%dm", d/time.Minute)
	}
	return fmt.Sprintf("%ds", d/time.Second)
}

// DateTime formats t in its own location, or Placeholder for the zero time.
func DateTime(t time.Time) string {
	if t.IsZero() {
		return Placeholder
	}
	return t.Format(dateTimeLayout)
}

// Window formats a meeting's time window with its length.
// Example: "2026-10-17 10:00 UTC to 2026-10-17 11:30 UTC (1h30m)"
// The length is omitted when either bound is missing or end is not after begin.
func Window(begin, end time.Time) string {
	s := DateTime(begin) + " to " + DateTime(end)
	if begin.IsZero() || end.IsZero() || !end.After(begin) {
		return s
	}
	return s + " (" + DurationHuman(end.Sub(begin)) + ")"
}

// Value returns s, or Placeholder when s is empty.
func Value(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}
