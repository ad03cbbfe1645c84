package planner

import "github.com/jelterminator/harmonyday/pkg/model"

// Config carries every tuning knob of the urgency and expansion engines.
// It is passed in explicitly so tests can vary thresholds deterministically.
type Config struct {
	// Hours-per-day cutoffs for the urgency tiers, evaluated most urgent
	// first. A project needing more than T1Hours per day (or due within a
	// day) lands in T1, more than T2Hours in T2, and so on. Below T5Hours
	// with a deadline is T6; no deadline at all is T7.
	T1Hours float64
	T2Hours float64
	T3Hours float64
	T4Hours float64
	T5Hours float64

	// RevealCounts says how many subtasks of a project are exposed per
	// planning cycle, keyed by the project's tier. Tiers not present
	// reveal one subtask.
	RevealCounts map[model.Tier]int

	// UrgentCap and ChoreCap bound the urgent (T1-T5) and chore (T6-T7)
	// buckets independently, so chores are never entirely crowded out.
	UrgentCap int
	ChoreCap  int

	// MaxOutput caps the total number of work units handed to the
	// placement engine.
	MaxOutput int
}

// DefaultConfig returns the production thresholds.
func DefaultConfig() Config {
	return Config{
		T1Hours: 8,
		T2Hours: 6,
		T3Hours: 4,
		T4Hours: 2,
		T5Hours: 1,
		RevealCounts: map[model.Tier]int{
			model.T1: 4,
			model.T2: 3,
			model.T3: 2,
		},
		UrgentCap: 18,
		ChoreCap:  6,
		MaxOutput: 24,
	}
}

func (c Config) revealCount(t model.Tier) int {
	if n, ok := c.RevealCounts[t]; ok {
		return n
	}
	return 1
}
