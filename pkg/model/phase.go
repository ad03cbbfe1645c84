package model

import (
	"fmt"
	"strings"
	"time"
)

// Phase is one of the five Wu Xing segments of the day. Entries are tagged
// with a phase so the placement engine can group work by energy level.
type Phase string

const (
	Wood  Phase = "Wood"
	Fire  Phase = "Fire"
	Earth Phase = "Earth"
	Metal Phase = "Metal"
	Water Phase = "Water"
)

// Phases lists all phases in day order.
var Phases = []Phase{Wood, Fire, Earth, Metal, Water}

// ParsePhase normalizes a phase name to its canonical casing.
// The match is case-insensitive; unknown names return an error.
func ParsePhase(s string) (Phase, error) {
	for _, p := range Phases {
		if strings.EqualFold(s, string(p)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown phase %q", s)
}

// ColorID returns the Google Calendar color ID used for events in this phase.
func (p Phase) ColorID() string {
	switch p {
	case Wood:
		return "10"
	case Fire:
		return "11"
	case Earth:
		return "5"
	case Metal:
		return "8"
	case Water:
		return "9"
	}
	return "1"
}

// Qualities describes what kind of work belongs in this phase.
func (p Phase) Qualities() string {
	switch p {
	case Wood:
		return "Growth, planning, vitality. Spiritual centering & movement."
	case Fire:
		return "Peak energy, expression. Deep work & execution."
	case Earth:
		return "Stability, nourishment. Lunch & restoration."
	case Metal:
		return "Precision, organization. Admin & review."
	case Water:
		return "Rest, consolidation. Wind-down & recovery."
	}
	return ""
}

// PhaseAt maps an instant to its phase by minutes from midnight.
// Boundaries: Wood 05:30-09:00, Fire 09:00-13:00, Earth 13:00-15:00,
// Metal 15:00-18:00, Water everything else.
func PhaseAt(t time.Time) Phase {
	m := t.Hour()*60 + t.Minute()
	switch {
	case m >= 330 && m < 540:
		return Wood
	case m >= 540 && m < 780:
		return Fire
	case m >= 780 && m < 900:
		return Earth
	case m >= 900 && m < 1080:
		return Metal
	default:
		return Water
	}
}
