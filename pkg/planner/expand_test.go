package planner

import (
	"fmt"
	"testing"
	"time"

	"github.com/jelterminator/harmonyday/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func subtasks(n int) []model.Task {
	out := make([]model.Task, n)
	for i := range out {
		out[i] = model.Task{
			ID:          fmt.Sprintf("s%d", i+1),
			Title:       fmt.Sprintf("%02d. Step", i+1),
			EffortHours: 1,
			IsSubtask:   true,
		}
	}
	return out
}

func TestExpandRevealCounts(t *testing.T) {
	e := New(DefaultConfig())

	cases := []struct {
		tier model.Tier
		want int
	}{
		{model.T1, 4},
		{model.T2, 3},
		{model.T3, 2},
		{model.T4, 1},
		{model.T5, 1},
		{model.T6, 1},
		{model.T7, 1},
	}
	for _, c := range cases {
		p := Project{
			Parent:   model.Task{ID: "p", Title: "Project"},
			Subtasks: subtasks(6),
			Tier:     c.tier,
		}
		units := e.Expand([]Project{p})
		assert.Len(t, units, c.want, "tier %s", c.tier)
	}
}

func TestExpandSubtaskCarriesProjectMetrics(t *testing.T) {
	e := New(DefaultConfig())
	due := time.Date(2025, 11, 21, 23, 59, 59, 0, time.UTC)
	p := Project{
		Parent:      model.Task{ID: "p", Title: "Thesis"},
		Subtasks:    []model.Task{{ID: "s1", Title: "01. Outline (2h)", EffortHours: 2, IsSubtask: true}},
		Tier:        model.T2,
		Deadline:    &due,
		TotalEffort: 9,
		DaysUntil:   3.2,
		HoursPerDay: 2.8,
	}

	units := e.Expand([]Project{p})
	require.Len(t, units, 1)
	u := units[0]
	assert.Equal(t, model.T2, u.Tier)
	assert.Equal(t, &due, u.Deadline)
	assert.Equal(t, 2.0, u.EffortHours)
	assert.Equal(t, 9.0, u.TotalRemainingEffort)
	assert.Equal(t, 2.8, u.HoursPerDayNeeded)
	assert.Equal(t, "Thesis", u.ParentTitle)
}

func TestExpandStandaloneProject(t *testing.T) {
	e := New(DefaultConfig())
	p := Project{
		Parent:      model.Task{ID: "x", Title: "Fix bike (1h)", EffortHours: 1},
		Tier:        model.T7,
		TotalEffort: 1,
	}
	units := e.Expand([]Project{p})
	require.Len(t, units, 1)
	assert.Equal(t, "x", units[0].ID)
	assert.Equal(t, model.T7, units[0].Tier)
}

func TestExpandBucketsProtectChores(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UrgentCap = 3
	cfg.ChoreCap = 2
	cfg.MaxOutput = 10
	e := New(cfg)

	var projects []Project
	for i := 0; i < 6; i++ {
		projects = append(projects, Project{
			Parent: model.Task{ID: fmt.Sprintf("u%d", i), Title: "Urgent", EffortHours: 1},
			Tier:   model.T1,
		})
	}
	for i := 0; i < 4; i++ {
		projects = append(projects, Project{
			Parent: model.Task{ID: fmt.Sprintf("c%d", i), Title: "Chore", EffortHours: 1},
			Tier:   model.T7,
		})
	}

	units := e.Expand(projects)
	require.Len(t, units, 5)
	// Urgent bucket first, capped at 3; chores survive with their own cap.
	assert.Equal(t, "u0", units[0].ID)
	assert.Equal(t, "u2", units[2].ID)
	assert.Equal(t, "c0", units[3].ID)
	assert.Equal(t, "c1", units[4].ID)
}

func TestExpandOverallCapTruncates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UrgentCap = 10
	cfg.ChoreCap = 10
	cfg.MaxOutput = 4
	e := New(cfg)

	var projects []Project
	for i := 0; i < 8; i++ {
		projects = append(projects, Project{
			Parent: model.Task{ID: fmt.Sprintf("t%d", i), Title: "Task", EffortHours: 1},
			Tier:   model.T3,
		})
	}

	units := e.Expand(projects)
	require.Len(t, units, 4)
	for i, u := range units {
		assert.Equal(t, fmt.Sprintf("t%d", i), u.ID, "truncation must not reorder")
	}
}
