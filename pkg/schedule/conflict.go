package schedule

import (
	"fmt"
	"time"

	"github.com/jelterminator/harmonyday/pkg/model"
)

// FilterConflicts drops every entry whose interval intersects a fixed event
// under half-open semantics: [s1,e1) and [s2,e2) conflict iff s1 < e2 and
// s2 < e1. Each dropped entry's diagnostic names one fixed event it truly
// collides with; the last diagnostic is the aggregate kept/dropped count.
// The fixed-event list is never mutated, and the result is deterministic for
// the same inputs.
func FilterConflicts(entries []model.ScheduleEntry, fixed []model.FixedEvent) ([]model.ScheduleEntry, []string) {
	resolved := make([]model.FixedEvent, 0, len(fixed))
	for _, ev := range fixed {
		// Ambiguous source data: an end at or before the start is taken
		// to mean the event runs past midnight.
		if !ev.End.After(ev.Start) {
			ev.End = ev.End.Add(24 * time.Hour)
		}
		resolved = append(resolved, ev)
	}

	kept := make([]model.ScheduleEntry, 0, len(entries))
	var diags []string
	dropped := 0

	for _, entry := range entries {
		if !entry.End.After(entry.Start) {
			entry.End = entry.End.Add(24 * time.Hour)
		}
		blockedBy, conflict := firstConflict(entry, resolved)
		if conflict {
			dropped++
			diags = append(diags, fmt.Sprintf("dropping %q (%s-%s): overlaps fixed event %q",
				entry.Title,
				entry.Start.Format("15:04"), entry.End.Format("15:04"),
				blockedBy.Summary))
			continue
		}
		kept = append(kept, entry)
	}

	diags = append(diags, fmt.Sprintf("conflict filter: %d kept, %d dropped", len(kept), dropped))
	return kept, diags
}

func firstConflict(entry model.ScheduleEntry, fixed []model.FixedEvent) (model.FixedEvent, bool) {
	for _, ev := range fixed {
		if entry.Start.Before(ev.End) && ev.Start.Before(entry.End) {
			return ev, true
		}
	}
	return model.FixedEvent{}, false
}
