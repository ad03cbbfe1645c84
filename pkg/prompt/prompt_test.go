package prompt

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jelterminator/harmonyday/pkg/config"
	"github.com/jelterminator/harmonyday/pkg/model"
)

func TestWorldSections(t *testing.T) {
	now := time.Date(2025, 11, 18, 8, 30, 0, 0, time.UTC)
	due := time.Date(2025, 11, 19, 23, 59, 59, 0, time.UTC)

	stone := model.Task{Title: "Finish report", EffortHours: 3, Tier: model.T1, Deadline: &due, HoursPerDayNeeded: 3}
	pebble := model.Task{Title: "Draft slides", EffortHours: 2, Tier: model.T4, ParentTitle: "Conference talk"}
	sand := model.Task{Title: "Sort inbox", EffortHours: 0.5, Tier: model.T7}

	out := World(Input{
		Now:     now,
		Anchors: []config.Anchor{{Name: "Lunch", Time: "13:00", Phase: "Earth"}},
		Events: []model.FixedEvent{{
			Summary: "Dentist",
			Start:   time.Date(2025, 11, 18, 10, 0, 0, 0, time.UTC),
			End:     time.Date(2025, 11, 18, 11, 0, 0, 0, time.UTC),
		}},
		Tasks:  []model.Task{stone, pebble, sand},
		Habits: []model.Habit{{Title: "Meditate", DurationMin: 15, IdealPhase: model.Wood}},
	})

	assert.Contains(t, out, "Tuesday, November 18, 2025")
	assert.Contains(t, out, "The current time is 08:30")

	// Every phase is described.
	for _, p := range model.Phases {
		assert.Contains(t, out, string(p)+":")
	}

	assert.Contains(t, out, "13:00: Lunch")
	assert.Contains(t, out, "Dentist (10:00 - 11:00)")

	// Tasks land in the right weight group.
	stones := out[strings.Index(out, "Stones"):strings.Index(out, "Pebbles")]
	assert.Contains(t, stones, "Finish report")
	assert.Contains(t, stones, "due 2025-11-19")
	pebbles := out[strings.Index(out, "Pebbles"):strings.Index(out, "Sand")]
	assert.Contains(t, pebbles, "Draft slides")
	assert.Contains(t, pebbles, "[project: Conference talk]")
	assert.Contains(t, out[strings.Index(out, "Sand"):], "Sort inbox")

	assert.Contains(t, out, "Meditate (15 min, ideal phase Wood)")
	assert.Contains(t, out, `"schedule_entries"`)
	assert.Contains(t, out, "before 08:30")
}

func TestWorldEmptyInputs(t *testing.T) {
	out := World(Input{Now: time.Date(2025, 11, 18, 8, 0, 0, 0, time.UTC)})
	assert.Contains(t, out, "None configured")
	assert.Contains(t, out, "No busy appointments today")
	assert.Contains(t, out, "No tasks to schedule")
	assert.Contains(t, out, "No habits today")
}
