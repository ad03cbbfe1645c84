package planner

import "github.com/jelterminator/harmonyday/pkg/model"

// Expand flattens the sorted project list into individually schedulable work
// units. A project without subtasks contributes itself; one with subtasks
// reveals its first few subtasks depending on tier, each stamped with the
// project's tier and deadline-pressure metrics so the placement engine sees
// the urgency of the whole project, not the fragment.
//
// Units are accumulated into two buckets, urgent (T1-T5) and chores (T6-T7),
// each independently capped, then concatenated urgent-first and truncated to
// the overall cap. Truncation never reorders.
func (e *Engine) Expand(projects []Project) []model.Task {
	var urgent, chores []model.Task

	add := func(t model.Task) {
		if t.Tier.Urgent() {
			urgent = append(urgent, t)
		} else {
			chores = append(chores, t)
		}
	}

	for _, p := range projects {
		if len(p.Subtasks) == 0 {
			add(p.unit(p.Parent, p.Parent.EffortHours))
			continue
		}
		count := e.cfg.revealCount(p.Tier)
		if count > len(p.Subtasks) {
			count = len(p.Subtasks)
		}
		for _, sub := range p.Subtasks[:count] {
			u := p.unit(sub, sub.EffortHours)
			u.ParentTitle = p.Parent.Title
			add(u)
		}
	}

	if len(urgent) > e.cfg.UrgentCap {
		urgent = urgent[:e.cfg.UrgentCap]
	}
	if len(chores) > e.cfg.ChoreCap {
		chores = chores[:e.cfg.ChoreCap]
	}
	out := append(urgent, chores...)
	if len(out) > e.cfg.MaxOutput {
		out = out[:e.cfg.MaxOutput]
	}
	return out
}

// unit copies a task and stamps it with the project-level metrics. The
// original task value is left untouched.
func (p Project) unit(t model.Task, ownEffort float64) model.Task {
	t.Tier = p.Tier
	t.Deadline = p.Deadline
	t.EffortHours = ownEffort
	t.DaysUntilDeadline = p.DaysUntil
	t.HoursPerDayNeeded = p.HoursPerDay
	t.TotalRemainingEffort = p.TotalEffort
	return t
}
