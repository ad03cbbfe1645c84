package model

import (
	"fmt"
	"time"
)

// ScheduleEntry is one proposed placement on the calendar, fully resolved to
// timezone-aware instants. Raw model output becomes a ScheduleEntry only
// after passing through the normalizer and validator.
type ScheduleEntry struct {
	Title string
	Start time.Time
	End   time.Time
	Phase Phase
	// Date is the resolved calendar date in ISO form (YYYY-MM-DD).
	Date string

	TaskID  string
	HabitID string
}

// NewScheduleEntry builds an entry, applying the overnight correction: an end
// instant at or before the start is assumed to cross midnight and is shifted
// forward by 24 hours. An entry that is still not strictly positive in
// duration afterwards is rejected.
func NewScheduleEntry(title string, start, end time.Time, phase Phase, date string) (ScheduleEntry, error) {
	if !end.After(start) {
		end = end.Add(24 * time.Hour)
	}
	if !end.After(start) {
		return ScheduleEntry{}, fmt.Errorf("entry %q: end must be after start", title)
	}
	return ScheduleEntry{Title: title, Start: start, End: end, Phase: phase, Date: date}, nil
}

// Duration is the entry's length on the calendar.
func (e ScheduleEntry) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// Overlaps reports half-open interval intersection with a fixed event:
// [s1,e1) and [s2,e2) conflict iff s1 < e2 and s2 < e1.
func (e ScheduleEntry) Overlaps(ev FixedEvent) bool {
	return e.Start.Before(ev.End) && ev.Start.Before(e.End)
}
