package llm

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ExtractJSON pulls the last JSON object out of free-form model text. Models
// wrap their answer in reasoning prose, escape it inside a quoted string, or
// double-encode it; each case is tried in turn.
func ExtractJSON(text string) (map[string]any, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object found in model output")
	}
	block := text[start : end+1]

	var obj map[string]any
	if err := json.Unmarshal([]byte(block), &obj); err == nil {
		return obj, nil
	}

	// The object may be escaped inside a quoted string.
	trimmed := strings.Trim(block, `"'`)
	if unquoted, err := strconv.Unquote(`"` + trimmed + `"`); err == nil {
		if err := json.Unmarshal([]byte(unquoted), &obj); err == nil {
			return obj, nil
		}
	}

	// Double-encoded: the whole block is a JSON string containing JSON.
	var inner string
	if err := json.Unmarshal([]byte(block), &inner); err == nil {
		if err := json.Unmarshal([]byte(inner), &obj); err == nil {
			return obj, nil
		}
	}

	return nil, fmt.Errorf("could not parse JSON from model output")
}

// Entries returns the schedule_entries records of an extracted payload as
// untyped key-value maps, ready for validation.
func Entries(obj map[string]any) []map[string]any {
	raw, ok := obj["schedule_entries"].([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		if rec, ok := item.(map[string]any); ok {
			out = append(out, rec)
		}
	}
	return out
}
