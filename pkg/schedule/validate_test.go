package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jelterminator/harmonyday/pkg/model"
)

func record(title, start, end, phase, date string) map[string]any {
	return map[string]any{
		"title":      title,
		"start_time": start,
		"end_time":   end,
		"phase":      phase,
		"date":       date,
	}
}

func TestValidateHappyPath(t *testing.T) {
	loc := amsterdam(t)
	v := NewValidator(loc, time.Date(2025, 11, 18, 8, 0, 0, 0, loc))

	entries, diags := v.Validate([]map[string]any{
		record("Morning pages", "08:00", "08:30", "wood", "today"),
	})
	require.Len(t, entries, 1)
	assert.Empty(t, diags)

	e := entries[0]
	assert.Equal(t, "Morning pages", e.Title)
	assert.Equal(t, model.Wood, e.Phase)
	assert.Equal(t, "2025-11-18", e.Date)
	assert.Equal(t, 8, e.Start.Hour())
	assert.Equal(t, 30*time.Minute, e.Duration())
}

func TestValidateMissingFields(t *testing.T) {
	loc := amsterdam(t)
	v := NewValidator(loc, time.Date(2025, 11, 18, 8, 0, 0, 0, loc))

	entries, diags := v.Validate([]map[string]any{
		{"title": "Incomplete", "start_time": "08:00"},
	})
	assert.Empty(t, entries)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0], "Incomplete")
	assert.Contains(t, diags[0], "end_time")
	assert.Contains(t, diags[0], "phase")
	assert.Contains(t, diags[0], "date")
}

func TestValidateUnknownPhaseDropped(t *testing.T) {
	loc := amsterdam(t)
	v := NewValidator(loc, time.Date(2025, 11, 18, 8, 0, 0, 0, loc))

	entries, diags := v.Validate([]map[string]any{
		record("Mystery", "08:00", "09:00", "plasma", "today"),
	})
	assert.Empty(t, entries)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0], "unknown phase")
}

func TestValidateDateTokens(t *testing.T) {
	loc := amsterdam(t)
	v := NewValidator(loc, time.Date(2025, 11, 18, 8, 0, 0, 0, loc))

	cases := []struct {
		token string
		want  string
	}{
		{"today", "2025-11-18"},
		{"Tomorrow", "2025-11-19"},
		{"2025-11-20", "2025-11-20"},
		{"20-11-2025", "2025-11-20"},
		{"11/20/2025", "2025-11-20"},
		{"20.11.2025", "2025-11-20"},
	}
	for _, tc := range cases {
		entries, _ := v.Validate([]map[string]any{
			record("Walk", "08:00", "09:00", "Wood", tc.token),
		})
		require.Len(t, entries, 1, "token %q", tc.token)
		assert.Equal(t, tc.want, entries[0].Date, "token %q", tc.token)
	}
}

func TestValidateUnresolvableDate(t *testing.T) {
	loc := amsterdam(t)
	v := NewValidator(loc, time.Date(2025, 11, 18, 8, 0, 0, 0, loc))

	entries, diags := v.Validate([]map[string]any{
		record("Walk", "08:00", "09:00", "Wood", "next thursday"),
	})
	assert.Empty(t, entries)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0], "unresolvable date")
}

func TestValidatePastDateKeptWithWarning(t *testing.T) {
	loc := amsterdam(t)
	v := NewValidator(loc, time.Date(2025, 11, 18, 8, 0, 0, 0, loc))

	entries, diags := v.Validate([]map[string]any{
		record("Backfill", "08:00", "09:00", "Fire", "2025-11-10"),
	})
	require.Len(t, entries, 1)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0], "warning")
	assert.Contains(t, diags[0], "2025-11-10")
}

func TestValidateBareTimesLandOnEntryDate(t *testing.T) {
	loc := amsterdam(t)
	v := NewValidator(loc, time.Date(2025, 11, 18, 8, 0, 0, 0, loc))

	entries, _ := v.Validate([]map[string]any{
		record("Evening review", "21:00", "21:30", "Water", "tomorrow"),
	})
	require.Len(t, entries, 1)
	assert.Equal(t, 19, entries[0].Start.Day())
}

func TestValidateIsIdempotent(t *testing.T) {
	loc := amsterdam(t)
	v := NewValidator(loc, time.Date(2025, 11, 18, 8, 0, 0, 0, loc))

	first, diags := v.Validate([]map[string]any{
		record("Deep work", "2025-11-18T09:00:00+01:00", "2025-11-18T11:00:00+01:00", "Fire", "2025-11-18"),
	})
	require.Len(t, first, 1)
	assert.Empty(t, diags)

	again := record("Deep work",
		first[0].Start.Format(time.RFC3339),
		first[0].End.Format(time.RFC3339),
		string(first[0].Phase),
		first[0].Date)
	second, diags := v.Validate([]map[string]any{again})
	require.Len(t, second, 1)
	assert.Empty(t, diags)
	assert.True(t, first[0].Start.Equal(second[0].Start))
	assert.True(t, first[0].End.Equal(second[0].End))
	assert.Equal(t, first[0], second[0])
}

func TestValidateBadTimestampDropped(t *testing.T) {
	loc := amsterdam(t)
	v := NewValidator(loc, time.Date(2025, 11, 18, 8, 0, 0, 0, loc))

	entries, diags := v.Validate([]map[string]any{
		record("Vague", "morning", "09:00", "Wood", "today"),
	})
	assert.Empty(t, entries)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0], "bad start time")
}
