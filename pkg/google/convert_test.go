package google

import (
	"strings"
	"testing"
	"time"

	"google.golang.org/api/calendar/v3"

	"github.com/jelterminator/harmonyday/pkg/model"
)

func TestBuildEvent(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Amsterdam")
	if err != nil {
		t.Fatalf("LoadLocation failed: %v", err)
	}
	entry, err := model.NewScheduleEntry("Deep work",
		time.Date(2025, 11, 18, 9, 0, 0, 0, loc),
		time.Date(2025, 11, 18, 11, 0, 0, 0, loc),
		model.Fire, "2025-11-18")
	if err != nil {
		t.Fatalf("NewScheduleEntry failed: %v", err)
	}
	entry.TaskID = "task-42"

	event := BuildEvent(entry, "run-abc")

	if event.Summary != "Deep work" {
		t.Errorf("Expected summary %q, got %q", "Deep work", event.Summary)
	}
	if event.ColorId != "11" {
		t.Errorf("Expected Fire color ID 11, got %q", event.ColorId)
	}
	if event.ExtendedProperties == nil || event.ExtendedProperties.Private == nil {
		t.Fatal("ExtendedProperties or Private map is nil")
	}
	if val, ok := event.ExtendedProperties.Private[runMarker]; !ok || val != "run-abc" {
		t.Errorf("Expected run marker run-abc, got %v", val)
	}
	if !strings.Contains(event.Description, "Phase: Fire") {
		t.Errorf("Expected description to name the phase, got: %s", event.Description)
	}
	if !strings.Contains(event.Description, "task-42") {
		t.Errorf("Expected description to reference the task, got: %s", event.Description)
	}

	start, err := time.Parse(time.RFC3339, event.Start.DateTime)
	if err != nil {
		t.Fatalf("Event start is not RFC3339: %v", err)
	}
	if !start.Equal(entry.Start) {
		t.Errorf("Expected start %v, got %v", entry.Start, start)
	}
}

func TestResolveEventTime(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Amsterdam")
	if err != nil {
		t.Fatalf("LoadLocation failed: %v", err)
	}

	got, err := ResolveEventTime(&calendar.EventDateTime{DateTime: "2025-11-18T09:00:00+01:00"}, loc)
	if err != nil {
		t.Fatalf("ResolveEventTime failed: %v", err)
	}
	if got.Hour() != 9 || got.Day() != 18 {
		t.Errorf("Unexpected resolved time: %v", got)
	}

	// All-day events carry only a date and resolve to local midnight.
	got, err = ResolveEventTime(&calendar.EventDateTime{Date: "2025-11-18"}, loc)
	if err != nil {
		t.Fatalf("ResolveEventTime failed for all-day event: %v", err)
	}
	if got.Hour() != 0 || got.Day() != 18 || got.Location() != loc {
		t.Errorf("Unexpected all-day resolution: %v", got)
	}

	if _, err := ResolveEventTime(nil, loc); err == nil {
		t.Error("Expected error for nil event time")
	}
	if _, err := ResolveEventTime(&calendar.EventDateTime{}, loc); err == nil {
		t.Error("Expected error for empty event time")
	}
	if _, err := ResolveEventTime(&calendar.EventDateTime{DateTime: "yesterday-ish"}, loc); err == nil {
		t.Error("Expected error for malformed dateTime")
	}
}
