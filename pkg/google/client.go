package google

import (
	"context"
	"fmt"

	"github.com/jelterminator/harmonyday/pkg/auth"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
	"google.golang.org/api/tasks/v1"
)

// Services bundles the three authenticated Google API services a planning
// run needs.
type Services struct {
	Calendar *calendar.Service
	Tasks    *tasks.Service
	Sheets   *sheets.Service
}

// NewServices authenticates once and builds all three services over the same
// HTTP client.
func NewServices(ctx context.Context) (*Services, error) {
	client, err := auth.GetClient(ctx, auth.Scopes())
	if err != nil {
		return nil, err
	}

	cal, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to build Calendar service: %w", err)
	}
	tsk, err := tasks.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to build Tasks service: %w", err)
	}
	sht, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to build Sheets service: %w", err)
	}

	return &Services{Calendar: cal, Tasks: tsk, Sheets: sht}, nil
}

// ResolveCalendarID maps a calendar name to its ID. The literal "primary" is
// passed through untouched.
func ResolveCalendarID(svc *calendar.Service, name string) (string, error) {
	if name == "" || name == "primary" {
		return "primary", nil
	}
	list, err := svc.CalendarList.List().Do()
	if err != nil {
		return "", fmt.Errorf("unable to retrieve calendar list: %w", err)
	}
	for _, item := range list.Items {
		if item.Summary == name {
			return item.Id, nil
		}
	}
	return "", fmt.Errorf("calendar %q not found", name)
}
