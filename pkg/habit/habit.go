// Package habit turns habit-sheet rows into typed habits and selects the
// ones relevant for a given day.
package habit

import (
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jelterminator/harmonyday/pkg/model"
)

// FromRows parses a sheet range (header row followed by data rows) into
// habits. Rows that fail validation are skipped with a diagnostic; the rest
// of the sheet proceeds.
func FromRows(rows [][]string) ([]model.Habit, []string) {
	if len(rows) < 2 {
		return nil, nil
	}

	header := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		header[strings.ToLower(strings.TrimSpace(name))] = i
	}
	cell := func(row []string, name string) string {
		i, ok := header[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var (
		habits []model.Habit
		diags  []string
	)
	for n, row := range rows[1:] {
		title := cell(row, "title")
		if title == "" {
			continue
		}

		// Sheets hand back durations as strings like "15" or "15.0".
		duration := 15
		if raw := cell(row, "duration_min"); raw != "" {
			if f, err := strconv.ParseFloat(raw, 64); err == nil {
				duration = int(f)
			}
		}

		phase, err := model.ParsePhase(cell(row, "ideal_phase"))
		if err != nil {
			phase = model.Fire
		}

		h, err := model.NewHabit(cell(row, "id"), title, duration, model.ParseFrequency(cell(row, "frequency")), phase)
		if err != nil {
			diags = append(diags, fmt.Sprintf("habit row %d: %v", n+2, err))
			continue
		}
		h.TaskType = cell(row, "task_type")
		h.DueDay = cell(row, "due_day")
		h.Active = looseBool(cell(row, "active"), true)
		habits = append(habits, h)
	}
	return habits, diags
}

// looseBool handles the yes/no, TRUE/FALSE and 1/0 variants sheets produce.
func looseBool(s string, def bool) bool {
	if s == "" {
		return def
	}
	switch strings.ToLower(s) {
	case "yes", "true", "1", "active", "y", "t":
		return true
	}
	return false
}

// FilterForDay keeps the habits that belong on now's weekday: daily habits
// always, weekly habits only on their due day, inactive habits never.
func FilterForDay(habits []model.Habit, now time.Time) []model.Habit {
	weekday := now.Weekday().String()
	var out []model.Habit
	for _, h := range habits {
		if h.ScheduledOn(weekday) {
			out = append(out, h)
		}
	}
	return out
}

// Sample down-selects habits to at most max, using the injected random
// source so runs are reproducible under a fixed seed. Selection keeps the
// original sheet order.
func Sample(habits []model.Habit, max int, rng *rand.Rand) []model.Habit {
	if max <= 0 || len(habits) <= max {
		return habits
	}
	idx := rng.Perm(len(habits))[:max]
	sort.Ints(idx)
	out := make([]model.Habit, 0, max)
	for _, i := range idx {
		out = append(out, habits[i])
	}
	return out
}
