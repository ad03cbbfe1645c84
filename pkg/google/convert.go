package google

import (
	"fmt"
	"strings"
	"time"

	"github.com/jelterminator/harmonyday/pkg/model"
	"google.golang.org/api/calendar/v3"
)

// ResolveEventTime turns a calendar EventDateTime into a timezone-aware
// instant. All-day events carry only a date; those resolve to midnight in
// the target location so a full-day block conflicts with everything that day.
func ResolveEventTime(edt *calendar.EventDateTime, loc *time.Location) (time.Time, error) {
	if edt == nil {
		return time.Time{}, fmt.Errorf("event has no time")
	}
	if edt.DateTime != "" {
		t, err := time.Parse(time.RFC3339, edt.DateTime)
		if err != nil {
			return time.Time{}, fmt.Errorf("unparseable event time %q", edt.DateTime)
		}
		return t.In(loc), nil
	}
	if edt.Date != "" {
		d, err := time.Parse("2006-01-02", edt.Date)
		if err != nil {
			return time.Time{}, fmt.Errorf("unparseable event date %q", edt.Date)
		}
		return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc), nil
	}
	return time.Time{}, fmt.Errorf("event has neither dateTime nor date")
}

// BuildEvent converts a final schedule entry into the calendar event written
// back to Google Calendar: phase color, a descriptive body, and the run
// marker so the event can be recognized and cleared later.
func BuildEvent(entry model.ScheduleEntry, runID string) *calendar.Event {
	var desc strings.Builder
	fmt.Fprintf(&desc, "Phase: %s\n", entry.Phase)
	if entry.TaskID != "" {
		fmt.Fprintf(&desc, "Task: %s\n", entry.TaskID)
	}
	if entry.HabitID != "" {
		fmt.Fprintf(&desc, "Habit: %s\n", entry.HabitID)
	}
	desc.WriteString("Planned by harmonyday")

	return &calendar.Event{
		Summary:     entry.Title,
		ColorId:     entry.Phase.ColorID(),
		Description: desc.String(),
		Start: &calendar.EventDateTime{
			DateTime: entry.Start.Format(time.RFC3339),
		},
		End: &calendar.EventDateTime{
			DateTime: entry.End.Format(time.RFC3339),
		},
		ExtendedProperties: &calendar.EventExtendedProperties{
			Private: map[string]string{
				runMarker: runID,
			},
		},
	}
}
