package planner

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jelterminator/harmonyday/pkg/model"
)

// Project groups one parent task with its ordered subtasks and carries the
// deadline-pressure metrics computed for the group as a whole.
type Project struct {
	Parent   model.Task
	Subtasks []model.Task

	Tier        model.Tier
	Deadline    *time.Time
	TotalEffort float64
	DaysUntil   float64
	HoursPerDay float64
}

// Engine turns a flat task collection into a prioritized, bounded list of
// schedulable work units. It is pure: same inputs and clock reading, same
// output.
type Engine struct {
	cfg Config
}

func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Process runs the full pipeline: group, prioritize, expand. The returned
// diagnostics describe every task that was dropped or defaulted; a diagnostic
// never aborts the batch.
func (e *Engine) Process(raw []model.RawTask, now time.Time) ([]model.Task, []string) {
	projects, diags := e.Group(raw)
	projects = e.Prioritize(projects, now)
	return e.Expand(projects), diags
}

var (
	effortTitleRe = regexp.MustCompile(`(?i)\((\d+(?:\.\d+)?)[hu]\)`)
	effortNotesRe = regexp.MustCompile(`(?i)\[Effort:\s*(\d+(?:\.\d+)?)[hu]\]`)
	titleNumberRe = regexp.MustCompile(`^\s*(\d+)\.`)
)

// ParseEffort extracts the declared effort from a parenthesized hour marker
// in the title, or an [Effort: Nh] marker in the notes. A missing marker is a
// normal case, not an error: the default is one hour.
func ParseEffort(title, notes string) float64 {
	if m := effortTitleRe.FindStringSubmatch(title); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return v
		}
	}
	if m := effortNotesRe.FindStringSubmatch(notes); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return v
		}
	}
	return 1.0
}

// ParseDeadline parses an ISO-ish due string. A bare date means end of that
// day (23:59:59 UTC). An unparseable string degrades to no deadline.
func ParseDeadline(due string) *time.Time {
	if due == "" {
		return nil
	}
	if strings.Contains(due, "T") {
		if t, err := time.Parse(time.RFC3339, due); err == nil {
			return &t
		}
		if t, err := time.Parse("2006-01-02T15:04:05", due); err == nil {
			t = t.UTC()
			return &t
		}
		return nil
	}
	if t, err := time.Parse("2006-01-02", due); err == nil {
		t = time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, time.UTC)
		return &t
	}
	return nil
}

// titleNumber extracts the leading "N." ordering prefix of a subtask title.
// Titles without one sort after all numbered ones.
func titleNumber(title string) float64 {
	if m := titleNumberRe.FindStringSubmatch(strings.TrimSpace(title)); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return float64(n)
		}
	}
	return math.Inf(1)
}

// positionNumber parses the upstream ordering position, used as tie-break.
func positionNumber(pos string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(pos), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// Group partitions the raw collection into projects: parent-less tasks each
// become a project root, and every task whose parent link names another task
// in the collection becomes a subtask of that project. Subtasks are ordered
// by numeric title prefix, then upstream position.
func (e *Engine) Group(raw []model.RawTask) ([]Project, []string) {
	var diags []string

	byID := make(map[string]model.RawTask, len(raw))
	for _, r := range raw {
		byID[r.ID] = r
	}

	build := func(r model.RawTask) (model.Task, bool) {
		t, err := model.NewTask(r.ID, r.Title, ParseEffort(r.Title, r.Notes))
		if err != nil {
			diags = append(diags, err.Error())
			return model.Task{}, false
		}
		t.Deadline = ParseDeadline(r.Due)
		if r.Due != "" && t.Deadline == nil {
			diags = append(diags, fmt.Sprintf("task %q: unparseable due date %q, treating as no deadline", r.Title, r.Due))
		}
		t.Notes = r.Notes
		t.ListName = r.ListName
		t.Position = r.Position
		return t, true
	}

	subsByParent := make(map[string][]model.Task)
	for _, r := range raw {
		if r.Parent == "" {
			continue
		}
		parent, ok := byID[r.Parent]
		if !ok {
			// Orphaned parent link: treat as a standalone task below.
			continue
		}
		sub, ok := build(r)
		if !ok {
			continue
		}
		sub.ParentID = r.Parent
		sub.ParentTitle = parent.Title
		sub.IsSubtask = true
		subsByParent[r.Parent] = append(subsByParent[r.Parent], sub)
	}

	for id, subs := range subsByParent {
		sort.SliceStable(subs, func(i, j int) bool {
			ni, nj := titleNumber(subs[i].Title), titleNumber(subs[j].Title)
			if ni != nj {
				return ni < nj
			}
			return positionNumber(subs[i].Position) < positionNumber(subs[j].Position)
		})
		subsByParent[id] = subs
	}

	var projects []Project
	for _, r := range raw {
		if r.Parent != "" {
			if _, ok := byID[r.Parent]; ok {
				continue
			}
		}
		parent, ok := build(r)
		if !ok {
			continue
		}
		projects = append(projects, Project{Parent: parent, Subtasks: subsByParent[r.ID]})
	}
	return projects, diags
}

// Prioritize computes each project's deadline-pressure metrics and tier, then
// sorts most-urgent-first: tier index ascending, hours-per-day descending.
// The sort is stable so equal projects keep their input order.
func (e *Engine) Prioritize(projects []Project, now time.Time) []Project {
	out := make([]Project, len(projects))
	for i, p := range projects {
		p.TotalEffort = p.Parent.EffortHours
		p.Deadline = p.Parent.Deadline
		if len(p.Subtasks) > 0 {
			p.TotalEffort = 0
			for _, s := range p.Subtasks {
				p.TotalEffort += s.EffortHours
			}
			p.Deadline = earliestDeadline(p.Parent, p.Subtasks)
		}
		p.Tier, p.DaysUntil, p.HoursPerDay = e.tierFor(p.TotalEffort, p.Deadline, now)
		out[i] = p
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Tier != out[j].Tier {
			return out[i].Tier.Index() < out[j].Tier.Index()
		}
		return out[i].HoursPerDay > out[j].HoursPerDay
	})
	return out
}

// earliestDeadline returns the minimum deadline among the parent and all its
// subtasks, or nil if no deadline exists anywhere in the project.
func earliestDeadline(parent model.Task, subs []model.Task) *time.Time {
	var min *time.Time
	consider := func(d *time.Time) {
		if d == nil {
			return
		}
		if min == nil || d.Before(*min) {
			min = d
		}
	}
	consider(parent.Deadline)
	for _, s := range subs {
		consider(s.Deadline)
	}
	return min
}

// tierFor applies the deadline-pressure math. A passed or same-day deadline
// is maximal urgency regardless of effort. Within the last day the whole
// remaining effort must fit in what is left of today.
func (e *Engine) tierFor(totalEffort float64, deadline *time.Time, now time.Time) (model.Tier, float64, float64) {
	if deadline == nil {
		return model.T7, math.Inf(1), 0
	}
	daysUntil := deadline.Sub(now).Hours() / 24
	if daysUntil <= 0 {
		return model.T1, daysUntil, totalEffort
	}
	var hoursPerDay float64
	if daysUntil <= 1 {
		hoursPerDay = totalEffort
	} else {
		hoursPerDay = totalEffort / daysUntil
	}
	switch {
	case daysUntil <= 1 || hoursPerDay > e.cfg.T1Hours:
		return model.T1, daysUntil, hoursPerDay
	case hoursPerDay > e.cfg.T2Hours:
		return model.T2, daysUntil, hoursPerDay
	case hoursPerDay > e.cfg.T3Hours:
		return model.T3, daysUntil, hoursPerDay
	case hoursPerDay > e.cfg.T4Hours:
		return model.T4, daysUntil, hoursPerDay
	case hoursPerDay > e.cfg.T5Hours:
		return model.T5, daysUntil, hoursPerDay
	default:
		return model.T6, daysUntil, hoursPerDay
	}
}
