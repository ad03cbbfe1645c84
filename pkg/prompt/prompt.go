// Package prompt assembles the world prompt handed to the placement engine.
// It is a plain string builder: all scheduling intelligence lives on the
// other side of the model call.
package prompt

import (
	"fmt"
	"strings"
	"time"

	"github.com/jelterminator/harmonyday/pkg/config"
	"github.com/jelterminator/harmonyday/pkg/model"
)

// Input carries everything the world prompt is built from.
type Input struct {
	Now     time.Time
	Anchors []config.Anchor
	Events  []model.FixedEvent
	Tasks   []model.Task
	Habits  []model.Habit
}

// System returns the fixed system prompt.
func System() string {
	return "You are an expert life scheduler blending the Harmonious Day philosophy " +
		"with practical task management. You produce a complete, realistic, time-blocked " +
		"schedule for one day as strict JSON. Never schedule over anchors or busy time."
}

// World builds the user prompt: phases, anchors, fixed events, prioritized
// tasks and habits, then the output contract.
func World(in Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Today is %s. The current time is %s.\n\n",
		in.Now.Format("Monday, January 2, 2006"), in.Now.Format("15:04"))

	b.WriteString("## 1. PHASES OF THE DAY\n")
	b.WriteString("Schedule work in its ideal phase when possible.\n")
	for _, p := range model.Phases {
		fmt.Fprintf(&b, "- %s: %s\n", p, p.Qualities())
	}

	b.WriteString("\n## 2. ANCHOR POINTS\n")
	b.WriteString("Non-negotiable pillars of the day. The schedule must flow around them.\n")
	if len(in.Anchors) == 0 {
		b.WriteString("- None configured.\n")
	}
	for _, a := range in.Anchors {
		fmt.Fprintf(&b, "- %s: %s\n", a.Time, a.Name)
	}

	b.WriteString("\n## 3. BUSY TIME (FIXED CALENDAR EVENTS)\n")
	b.WriteString("External appointments. You MUST schedule around them.\n")
	if len(in.Events) == 0 {
		b.WriteString("- No busy appointments today.\n")
	}
	for _, ev := range in.Events {
		fmt.Fprintf(&b, "- %s (%s - %s)\n", ev.Summary,
			ev.Start.Format("15:04"), ev.End.Format("15:04"))
	}

	writeTasks(&b, in.Tasks)
	writeHabits(&b, in.Habits)

	b.WriteString("\n## 6. OUTPUT REQUIREMENTS\n")
	b.WriteString("- Schedule every stone, as many pebbles as realistically fit, then sand.\n")
	b.WriteString("- Plan at least the hours/day each project needs or its deadline slips.\n")
	b.WriteString("- A long task may be split into multiple blocks over the day.\n")
	b.WriteString("- Never double-book; respect anchors and busy time.\n")
	fmt.Fprintf(&b, "- Do not schedule anything before %s today; that time has passed.\n", in.Now.Format("15:04"))
	b.WriteString("\nReturn JSON with this structure:\n")
	b.WriteString(`{"schedule_entries": [{"title": "...", "start_time": "HH:MM", "end_time": "HH:MM", "phase": "Wood|Fire|Earth|Metal|Water", "date": "today|tomorrow"}]}` + "\n")

	return b.String()
}

// writeTasks groups the expanded work units by the stone/pebble/sand
// metaphor: stones are T1-T2, pebbles T3-T5, sand the chore tiers.
func writeTasks(b *strings.Builder, tasks []model.Task) {
	b.WriteString("\n## 4. TASKS TO SCHEDULE\n")
	if len(tasks) == 0 {
		b.WriteString("- No tasks to schedule.\n")
		return
	}

	groups := []struct {
		label string
		match func(model.Tier) bool
	}{
		{"Stones (critical, schedule these first)", func(t model.Tier) bool { return t <= model.T2 }},
		{"Pebbles (important)", func(t model.Tier) bool { return t >= model.T3 && t <= model.T5 }},
		{"Sand (fill gaps)", func(t model.Tier) bool { return t >= model.T6 }},
	}
	for _, g := range groups {
		var lines []string
		for _, t := range tasks {
			if !g.match(t.Tier) {
				continue
			}
			line := fmt.Sprintf("- [%s] %s (%.1fh", t.Tier, t.Title, t.EffortHours)
			if t.Deadline != nil {
				line += fmt.Sprintf(", due %s, needs %.1fh/day", t.DeadlineString(), t.HoursPerDayNeeded)
			}
			line += ")"
			if t.ParentTitle != "" {
				line += fmt.Sprintf(" [project: %s]", t.ParentTitle)
			}
			lines = append(lines, line)
		}
		if len(lines) == 0 {
			continue
		}
		fmt.Fprintf(b, "%s:\n", g.label)
		for _, l := range lines {
			b.WriteString(l + "\n")
		}
	}
}

func writeHabits(b *strings.Builder, habits []model.Habit) {
	b.WriteString("\n## 5. HABITS TO SCHEDULE\n")
	b.WriteString("Tasks take priority; include habits only where they fit. Durations are flexible.\n")
	if len(habits) == 0 {
		b.WriteString("- No habits today.\n")
		return
	}
	for _, h := range habits {
		fmt.Fprintf(b, "- %s (%d min, ideal phase %s)\n", h.Title, h.DurationMin, h.IdealPhase)
	}
}
