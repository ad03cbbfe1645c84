package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/jelterminator/harmonyday/pkg/model"
)

// Validator checks the structural well-formedness of raw schedule entries:
// required fields present, phase recognized, date resolvable, times parseable
// as real instants. Entries failing any check are dropped and reported
// individually; nothing is silently merged or guessed.
type Validator struct {
	loc   *time.Location
	today time.Time
}

// NewValidator builds a validator anchored at the given "today" in loc.
func NewValidator(loc *time.Location, today time.Time) *Validator {
	today = today.In(loc)
	return &Validator{loc: loc, today: time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, loc)}
}

// dateLayouts are the accepted concrete notations, beyond today/tomorrow.
var dateLayouts = []string{
	"2006-01-02", // ISO
	"02-01-2006", // day-first
	"01/02/2006", // month-first
	"02.01.2006", // dot-separated
}

// resolveDate turns the entry's date token into a concrete calendar date.
func (v *Validator) resolveDate(token string) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "today":
		return v.today, nil
	case "tomorrow":
		return v.today.AddDate(0, 0, 1), nil
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, strings.TrimSpace(token)); err == nil {
			return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, v.loc), nil
		}
	}
	return time.Time{}, fmt.Errorf("unresolvable date token %q", token)
}

// Validate consumes untyped entry records from the model and returns fully
// resolved ScheduleEntry values plus one diagnostic per dropped or flagged
// entry. A past resolved date is kept but flagged. Validating an already
// canonical entry a second time yields it unchanged.
func (v *Validator) Validate(raw []map[string]any) ([]model.ScheduleEntry, []string) {
	var (
		entries []model.ScheduleEntry
		diags   []string
	)

	for i, rec := range raw {
		title := getString(rec, "title")
		label := title
		if label == "" {
			label = fmt.Sprintf("entry %d", i+1)
		}

		missing := missingFields(rec, "title", "start_time", "end_time", "phase", "date")
		if len(missing) > 0 {
			diags = append(diags, fmt.Sprintf("dropping %s: missing fields %s", label, strings.Join(missing, ", ")))
			continue
		}

		phase, err := model.ParsePhase(getString(rec, "phase"))
		if err != nil {
			diags = append(diags, fmt.Sprintf("dropping %s: %v", label, err))
			continue
		}

		date, err := v.resolveDate(getString(rec, "date"))
		if err != nil {
			diags = append(diags, fmt.Sprintf("dropping %s: %v", label, err))
			continue
		}

		norm := NewNormalizer(v.loc, date)
		start, err := v.parseInstant(norm, getString(rec, "start_time"))
		if err != nil {
			diags = append(diags, fmt.Sprintf("dropping %s: bad start time: %v", label, err))
			continue
		}
		end, err := v.parseInstant(norm, getString(rec, "end_time"))
		if err != nil {
			diags = append(diags, fmt.Sprintf("dropping %s: bad end time: %v", label, err))
			continue
		}

		entry, err := model.NewScheduleEntry(title, start, end, phase, date.Format("2006-01-02"))
		if err != nil {
			diags = append(diags, fmt.Sprintf("dropping %s: %v", label, err))
			continue
		}
		entry.TaskID = getString(rec, "task_id")
		entry.HabitID = getString(rec, "habit_id")

		if date.Before(v.today) {
			diags = append(diags, fmt.Sprintf("warning: %s resolves to past date %s", label, entry.Date))
		}
		entries = append(entries, entry)
	}
	return entries, diags
}

func (v *Validator) parseInstant(norm *Normalizer, s string) (time.Time, error) {
	fixed, _ := norm.Fix(strings.TrimSpace(s))
	t, err := time.Parse(time.RFC3339, fixed)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is not a recognizable timestamp", s)
	}
	return t.In(v.loc), nil
}

func getString(rec map[string]any, key string) string {
	if v, ok := rec[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func missingFields(rec map[string]any, keys ...string) []string {
	var missing []string
	for _, k := range keys {
		if getString(rec, k) == "" {
			missing = append(missing, k)
		}
	}
	return missing
}
