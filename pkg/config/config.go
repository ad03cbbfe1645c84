package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	xdgAppName = "harmonyday"
	configFile = "config.json"
)

// Anchor is a non-negotiable daily pillar (e.g. a prayer time) the schedule
// must flow around. Time is a "HH:MM-HH:MM" range.
type Anchor struct {
	Name  string `json:"name"`
	Time  string `json:"time"`
	Phase string `json:"phase"`
}

type Config struct {
	Calendar   string   `json:"calendar"`
	Timezone   string   `json:"timezone"`
	SheetID    string   `json:"sheet_id"`
	HabitRange string   `json:"habit_range"`
	ModelID    string   `json:"model_id"`
	MaxTasks   int      `json:"max_output_tasks"`
	MaxHabits  int      `json:"max_habits"`
	Anchors    []Anchor `json:"anchors,omitempty"`
}

func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", xdgAppName, configFile), nil
}

func defaults() *Config {
	return &Config{
		Calendar:   "primary",
		Timezone:   "Europe/Amsterdam",
		HabitRange: "Habits!A1:G100",
		ModelID:    "llama-3.3-70b-versatile",
		MaxTasks:   24,
		MaxHabits:  8,
	}
}

func Load() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaults(), nil
		}
		return nil, err
	}
	defer f.Close()

	cfg := defaults()
	if err := json.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if cfg.Calendar == "" {
		cfg.Calendar = "primary"
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "Europe/Amsterdam"
	}
	return cfg, nil
}

func Save(cfg *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to open config file for writing: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	return encoder.Encode(cfg)
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
