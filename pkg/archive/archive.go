// Package archive persists each run's final schedule locally, so a day's
// plan can be inspected after the fact without touching the calendar.
package archive

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/jelterminator/harmonyday/pkg/model"
)

type entryRecord struct {
	Title string `json:"title"`
	Start string `json:"start_time"`
	End   string `json:"end_time"`
	Phase string `json:"phase"`
	Date  string `json:"date"`
}

// Record is one planning run's outcome.
type Record struct {
	RunID       string        `json:"run_id"`
	GeneratedAt time.Time     `json:"generated_at"`
	Entries     []entryRecord `json:"schedule_entries"`
	Diagnostics []string      `json:"diagnostics,omitempty"`
}

// NewRecord builds an archive record from the final entry list.
func NewRecord(runID string, generatedAt time.Time, entries []model.ScheduleEntry, diags []string) Record {
	rec := Record{RunID: runID, GeneratedAt: generatedAt, Diagnostics: diags}
	for _, e := range entries {
		rec.Entries = append(rec.Entries, entryRecord{
			Title: e.Title,
			Start: e.Start.Format(time.RFC3339),
			End:   e.End.Format(time.RFC3339),
			Phase: string(e.Phase),
			Date:  e.Date,
		})
	}
	return rec
}

// Save writes the record under the config directory, one file per day, and
// returns the path written.
func Save(rec Record) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".config", "harmonyday", "schedules")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}

	path := filepath.Join(dir, rec.GeneratedAt.Format("2006-01-02")+".json")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(rec); err != nil {
		return "", err
	}
	return path, nil
}
