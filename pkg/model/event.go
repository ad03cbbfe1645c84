package model

import (
	"fmt"
	"time"
)

// FixedEvent is an immovable, externally owned calendar commitment. The core
// only reads these for conflict comparison; it never mutates or writes them.
type FixedEvent struct {
	Summary string
	Start   time.Time
	End     time.Time
}

// NewFixedEvent resolves a fixed event's interval. When the source data is
// ambiguous about which day the event ends (end at or before start), the end
// is assumed to be on the next day, mirroring the overnight handling for
// schedule entries.
func NewFixedEvent(summary string, start, end time.Time) (FixedEvent, error) {
	if !end.After(start) {
		end = end.Add(24 * time.Hour)
	}
	if !end.After(start) {
		return FixedEvent{}, fmt.Errorf("event %q: end must be after start", summary)
	}
	return FixedEvent{Summary: summary, Start: start, End: end}, nil
}

// Duration is the event's length on the calendar.
func (ev FixedEvent) Duration() time.Duration {
	return ev.End.Sub(ev.Start)
}
