package google

import (
	"fmt"
	"log"
	"time"

	"github.com/jelterminator/harmonyday/pkg/index"
	"github.com/jelterminator/harmonyday/pkg/model"
	"google.golang.org/api/calendar/v3"
)

// runMarker is the private extended property stamped on every event this
// tool writes, so generated events can be told apart from fixed ones.
const runMarker = "harmonyday_run"

// CalendarClient wraps the Google Calendar API for one calendar.
type CalendarClient struct {
	srv        *calendar.Service
	calendarID string
	ledger     *index.Ledger
	loc        *time.Location
}

func NewCalendarClient(srv *calendar.Service, calendarID string, ledger *index.Ledger, loc *time.Location) *CalendarClient {
	return &CalendarClient{srv: srv, calendarID: calendarID, ledger: ledger, loc: loc}
}

// ListFixedEvents fetches the day's events and resolves them to timezone-
// aware intervals. Events written by a previous run are excluded: only
// externally owned commitments count as fixed. Events whose times cannot be
// resolved are skipped with a diagnostic.
func (c *CalendarClient) ListFixedEvents(date time.Time) ([]model.FixedEvent, []string, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, c.loc)
	dayEnd := dayStart.AddDate(0, 0, 2) // include tomorrow: entries may land there

	result, err := c.srv.Events.List(c.calendarID).
		TimeMin(dayStart.Format(time.RFC3339)).
		TimeMax(dayEnd.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Do()
	if err != nil {
		return nil, nil, fmt.Errorf("unable to retrieve events: %w", err)
	}

	var (
		fixed []model.FixedEvent
		diags []string
	)
	for _, item := range result.Items {
		if isGenerated(item) {
			continue
		}
		start, err := ResolveEventTime(item.Start, c.loc)
		if err != nil {
			diags = append(diags, fmt.Sprintf("skipping event %q: %v", item.Summary, err))
			continue
		}
		end, err := ResolveEventTime(item.End, c.loc)
		if err != nil {
			diags = append(diags, fmt.Sprintf("skipping event %q: %v", item.Summary, err))
			continue
		}
		ev, err := model.NewFixedEvent(item.Summary, start, end)
		if err != nil {
			diags = append(diags, err.Error())
			continue
		}
		fixed = append(fixed, ev)
	}
	return fixed, diags, nil
}

// ClearGenerated deletes the events a previous run wrote for the given day,
// using the local ledger. Deletion failures are logged and skipped: a stale
// event is annoying, not fatal.
func (c *CalendarClient) ClearGenerated(date string) int {
	if c.ledger == nil {
		return 0
	}
	cleared := 0
	for _, id := range c.ledger.Take(date) {
		if err := c.srv.Events.Delete(c.calendarID, id).Do(); err != nil {
			log.Printf("could not delete generated event %s: %v", id, err)
			continue
		}
		cleared++
	}
	return cleared
}

// WriteEntries inserts the final schedule entries as calendar events,
// stamped with the run ID, and records them in the ledger.
func (c *CalendarClient) WriteEntries(entries []model.ScheduleEntry, runID string) (int, error) {
	written := 0
	for _, entry := range entries {
		event := BuildEvent(entry, runID)
		created, err := c.srv.Events.Insert(c.calendarID, event).Do()
		if err != nil {
			return written, fmt.Errorf("inserting %q: %w", entry.Title, err)
		}
		if c.ledger != nil {
			c.ledger.Add(entry.Date, created.Id)
		}
		written++
	}
	return written, nil
}

func isGenerated(item *calendar.Event) bool {
	if item.ExtendedProperties == nil || item.ExtendedProperties.Private == nil {
		return false
	}
	_, ok := item.ExtendedProperties.Private[runMarker]
	return ok
}
