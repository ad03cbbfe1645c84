// Package index keeps a local ledger of the calendar events a planning run
// generated, keyed by day, so a re-run can clear the previous generated
// schedule before writing a new one.
package index

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

type Ledger struct {
	// Generated maps an ISO date to the IDs of events written for that day.
	Generated map[string][]string `json:"generated"`
	Path      string              `json:"-"`
	mu        sync.Mutex
	dirty     bool
}

func NewLedger() (*Ledger, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(home, ".config", "harmonyday", "generated_events.json")

	l := &Ledger{
		Generated: make(map[string][]string),
		Path:      path,
	}

	if _, err := os.Stat(path); err == nil {
		if err := l.Load(); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func (l *Ledger) Load() error {
	f, err := os.Open(l.Path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(&l.Generated)
}

func (l *Ledger) Save() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.dirty {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(l.Path), 0700); err != nil {
		return err
	}

	f, err := os.Create(l.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(l.Generated); err != nil {
		return err
	}
	l.dirty = false
	return nil
}

// Add records an event written for the given date.
func (l *Ledger) Add(date, eventID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Generated[date] = append(l.Generated[date], eventID)
	l.dirty = true
}

// Take removes and returns the recorded event IDs for a date.
func (l *Ledger) Take(date string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	ids, ok := l.Generated[date]
	if !ok {
		return nil
	}
	delete(l.Generated, date)
	l.dirty = true
	return ids
}
