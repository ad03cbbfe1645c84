package model

import (
	"fmt"
	"strings"
)

// Frequency says how often a habit recurs.
type Frequency string

const (
	Daily   Frequency = "Daily"
	Weekly  Frequency = "Weekly"
	Monthly Frequency = "Monthly"
)

// ParseFrequency normalizes a frequency name; unknown values fall back to Daily.
func ParseFrequency(s string) Frequency {
	for _, f := range []Frequency{Daily, Weekly, Monthly} {
		if strings.EqualFold(s, string(f)) {
			return f
		}
	}
	return Daily
}

// Habit is a recurring activity from the habit sheet.
type Habit struct {
	ID          string
	Title       string
	DurationMin int
	Frequency   Frequency
	IdealPhase  Phase
	TaskType    string
	DueDay      string
	Active      bool
}

// NewHabit validates habit data. A non-positive duration is a hard per-item
// failure; the rest of the sheet proceeds.
func NewHabit(id, title string, durationMin int, freq Frequency, phase Phase) (Habit, error) {
	if durationMin <= 0 {
		return Habit{}, fmt.Errorf("habit %q: duration must be positive (%d)", title, durationMin)
	}
	return Habit{ID: id, Title: title, DurationMin: durationMin, Frequency: freq, IdealPhase: phase, Active: true}, nil
}

// ScheduledOn reports whether the habit belongs on the given weekday.
func (h Habit) ScheduledOn(weekday string) bool {
	if !h.Active {
		return false
	}
	switch h.Frequency {
	case Daily:
		return true
	case Weekly:
		return h.DueDay != "" && strings.EqualFold(h.DueDay, weekday)
	default:
		return false
	}
}
