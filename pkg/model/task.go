package model

import (
	"fmt"
	"time"
)

// RawTask is a task record as the task source hands it over: loosely typed
// strings, before any effort or deadline parsing.
type RawTask struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Due      string `json:"due,omitempty"`
	Notes    string `json:"notes,omitempty"`
	Parent   string `json:"parent,omitempty"`
	Position string `json:"position,omitempty"`
	ListName string `json:"list,omitempty"`
}

// Task is a unit of schedulable work. Instances are built once per fetch
// cycle and are not mutated after urgency calculation; the planner returns
// new values with the derived fields set.
type Task struct {
	ID          string
	Title       string
	EffortHours float64
	Tier        Tier
	Deadline    *time.Time
	ParentID    string
	ParentTitle string
	IsSubtask   bool
	Notes       string
	ListName    string
	Position    string

	// Derived by the urgency engine, set exactly once during processing.
	DaysUntilDeadline    float64
	HoursPerDayNeeded    float64
	TotalRemainingEffort float64
}

// NewTask builds a Task, rejecting structurally invalid input.
// A negative effort estimate is a hard per-item failure; the caller excludes
// the item and the rest of the batch proceeds.
func NewTask(id, title string, effortHours float64) (Task, error) {
	if effortHours < 0 {
		return Task{}, fmt.Errorf("task %q: effort hours cannot be negative (%v)", title, effortHours)
	}
	return Task{ID: id, Title: title, EffortHours: effortHours, Tier: T7}, nil
}

// DeadlineString formats the deadline for prompt and diagnostic output.
func (t Task) DeadlineString() string {
	if t.Deadline == nil {
		return "N/A"
	}
	return t.Deadline.Format("2006-01-02")
}

// Overdue reports whether the task's deadline has passed.
func (t Task) Overdue(now time.Time) bool {
	return t.Deadline != nil && now.After(*t.Deadline)
}
