package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONPlain(t *testing.T) {
	obj, err := ExtractJSON(`{"schedule_entries": []}`)
	require.NoError(t, err)
	assert.Contains(t, obj, "schedule_entries")
}

func TestExtractJSONSurroundedByProse(t *testing.T) {
	text := "Here is your schedule for the day.\n" +
		`{"schedule_entries": [{"title": "Morning pages"}]}` +
		"\nLet me know if you want changes."
	obj, err := ExtractJSON(text)
	require.NoError(t, err)
	entries := Entries(obj)
	require.Len(t, entries, 1)
	assert.Equal(t, "Morning pages", entries[0]["title"])
}

func TestExtractJSONEscapedInString(t *testing.T) {
	text := `"{\"schedule_entries\": [{\"title\": \"Deep work\"}]}"`
	obj, err := ExtractJSON(text)
	require.NoError(t, err)
	entries := Entries(obj)
	require.Len(t, entries, 1)
	assert.Equal(t, "Deep work", entries[0]["title"])
}

func TestExtractJSONNoObject(t *testing.T) {
	_, err := ExtractJSON("I could not produce a schedule today.")
	assert.Error(t, err)
}

func TestExtractJSONMalformed(t *testing.T) {
	_, err := ExtractJSON(`{"schedule_entries": [`)
	assert.Error(t, err)
}

func TestEntriesMissingKey(t *testing.T) {
	assert.Nil(t, Entries(map[string]any{"something_else": true}))
}

func TestEntriesSkipsNonObjects(t *testing.T) {
	obj := map[string]any{
		"schedule_entries": []any{
			map[string]any{"title": "Walk"},
			"stray string",
			42.0,
		},
	}
	entries := Entries(obj)
	require.Len(t, entries, 1)
	assert.Equal(t, "Walk", entries[0]["title"])
}
