package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jelterminator/harmonyday/pkg/archive"
	"github.com/jelterminator/harmonyday/pkg/auth"
	"github.com/jelterminator/harmonyday/pkg/config"
	"github.com/jelterminator/harmonyday/pkg/google"
	"github.com/jelterminator/harmonyday/pkg/habit"
	"github.com/jelterminator/harmonyday/pkg/index"
	"github.com/jelterminator/harmonyday/pkg/llm"
	"github.com/jelterminator/harmonyday/pkg/model"
	"github.com/jelterminator/harmonyday/pkg/planner"
	"github.com/jelterminator/harmonyday/pkg/prompt"
	"github.com/jelterminator/harmonyday/pkg/schedule"
)

func main() {
	// 1. Parse Flags
	calendarName := flag.String("calendar", "", "Google Calendar name to plan into (overrides config)")
	setCalendar := flag.String("set-calendar", "", "Set the default Google Calendar name")
	doAuth := flag.Bool("auth", false, "Authenticate with Google")
	dryRun := flag.Bool("dry-run", false, "Plan but do not write to the calendar")
	habitSeed := flag.Int64("habit-seed", 0, "Seed for habit sampling (0 = time-based)")
	flag.Parse()

	// 2. Handle Set Calendar
	if *setCalendar != "" {
		cfg, err := config.Load()
		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}
		cfg.Calendar = *setCalendar
		if err := config.Save(cfg); err != nil {
			log.Fatalf("Error saving config: %v", err)
		}
		fmt.Printf("Default calendar set to: %s\n", *setCalendar)
		return
	}

	// 3. Load Config (Priority: Flag > Config > Default)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	if *calendarName != "" {
		cfg.Calendar = *calendarName
	}

	// 4. Handle Authentication
	if *doAuth {
		ctx := context.Background()
		base, err := auth.GetXdgHome()
		if err != nil {
			log.Fatalf("could not find path to configuration file: %v", err)
		}

		tokenFile := filepath.Join(base, auth.TokenFile)
		if _, err := os.Stat(tokenFile); err == nil {
			log.Printf("Removing existing token file at '%s'", tokenFile)
			if err := os.Remove(tokenFile); err != nil {
				log.Fatalf("could not delete token file '%s': %v. Please delete it manually", tokenFile, err)
			}
		}

		if _, err := auth.GetClient(ctx, auth.Scopes()); err != nil {
			log.Fatalf("Authentication failed: %v", err)
		}
		log.Printf("Authentication successful! Token saved to %s", auth.TokenFile)
		return
	}

	if err := run(cfg, *dryRun, *habitSeed); err != nil {
		log.Fatalf("Planning run failed: %v", err)
	}
}

// run performs one synchronous planning cycle: fetch, prioritize, place,
// validate, filter, write.
func run(cfg *config.Config, dryRun bool, habitSeed int64) error {
	ctx := context.Background()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	now := time.Now().In(loc)
	today := now.Format("2006-01-02")
	runID := uuid.NewString()
	log.Printf("Planning %s (run %s)", today, runID)

	var diags []string

	// 1. Collaborators
	services, err := google.NewServices(ctx)
	if err != nil {
		return err
	}

	ledger, err := index.NewLedger()
	if err != nil {
		log.Printf("Warning: failed to initialize generated-event ledger: %v", err)
	}

	calendarID, err := google.ResolveCalendarID(services.Calendar, cfg.Calendar)
	if err != nil {
		return err
	}
	calClient := google.NewCalendarClient(services.Calendar, calendarID, ledger, loc)

	// 2. Fetch fixed events, tasks and habits. Empty collections are
	// valid inputs, not errors.
	fixed, evtDiags, err := calClient.ListFixedEvents(now)
	if err != nil {
		return err
	}
	diags = append(diags, evtDiags...)
	log.Printf("Fetched %d fixed events", len(fixed))

	rawTasks, err := google.NewTasksClient(services.Tasks).FetchOpen()
	if err != nil {
		return err
	}
	log.Printf("Fetched %d raw tasks", len(rawTasks))

	var habits []model.Habit
	if cfg.SheetID != "" {
		rows, err := google.NewSheetsClient(services.Sheets).HabitRows(cfg.SheetID, cfg.HabitRange)
		if err != nil {
			log.Printf("Warning: could not fetch habits: %v", err)
		} else {
			parsed, habitDiags := habit.FromRows(rows)
			diags = append(diags, habitDiags...)
			habits = habit.FilterForDay(parsed, now)
			if habitSeed == 0 {
				habitSeed = now.UnixNano()
			}
			habits = habit.Sample(habits, cfg.MaxHabits, rand.New(rand.NewSource(habitSeed)))
		}
	}
	log.Printf("Selected %d habits for today", len(habits))

	// 3. Prioritize and expand tasks
	plannerCfg := planner.DefaultConfig()
	if cfg.MaxTasks > 0 {
		plannerCfg.MaxOutput = cfg.MaxTasks
	}
	units, taskDiags := planner.New(plannerCfg).Process(rawTasks, now)
	diags = append(diags, taskDiags...)
	log.Printf("Expanded to %d schedulable work units", len(units))

	// 4. Ask the placement engine
	apiKey := os.Getenv("GROQ_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GROQ_API_KEY not set")
	}
	world := prompt.World(prompt.Input{
		Now:     now,
		Anchors: cfg.Anchors,
		Events:  fixed,
		Tasks:   units,
		Habits:  habits,
	})
	raw, err := llm.NewClient(apiKey, cfg.ModelID).GenerateSchedule(ctx, prompt.System(), world)
	if err != nil {
		return err
	}
	log.Printf("Model proposed %d entries", len(raw))

	// 5. Validate and filter
	entries, valDiags := schedule.NewValidator(loc, now).Validate(raw)
	diags = append(diags, valDiags...)

	final, conflictDiags := schedule.FilterConflicts(entries, fixed)
	diags = append(diags, conflictDiags...)

	for _, d := range diags {
		log.Print(d)
	}

	// 6. Write back
	if dryRun {
		log.Printf("Dry run: would write %d entries", len(final))
		for _, e := range final {
			log.Printf("  %s %s-%s [%s] %s", e.Date, e.Start.Format("15:04"), e.End.Format("15:04"), e.Phase, e.Title)
		}
	} else {
		cleared := calClient.ClearGenerated(today)
		cleared += calClient.ClearGenerated(now.AddDate(0, 0, 1).Format("2006-01-02"))
		if cleared > 0 {
			log.Printf("Cleared %d previously generated events", cleared)
		}

		written, err := calClient.WriteEntries(final, runID)
		if written > 0 || err == nil {
			if ledger != nil {
				if saveErr := ledger.Save(); saveErr != nil {
					log.Printf("Warning: failed to save ledger: %v", saveErr)
				}
			}
		}
		if err != nil {
			return err
		}
		log.Printf("Wrote %d events to calendar", written)
	}

	// 7. Archive the run
	path, err := archive.Save(archive.NewRecord(runID, now, final, diags))
	if err != nil {
		log.Printf("Warning: could not archive schedule: %v", err)
	} else {
		log.Printf("Schedule archived to %s", path)
	}
	return nil
}
