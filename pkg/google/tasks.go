package google

import (
	"fmt"

	"github.com/jelterminator/harmonyday/pkg/model"
	"google.golang.org/api/tasks/v1"
)

// TasksClient fetches open tasks from Google Tasks.
type TasksClient struct {
	srv *tasks.Service
}

func NewTasksClient(srv *tasks.Service) *TasksClient {
	return &TasksClient{srv: srv}
}

// FetchOpen returns every open task across all task lists as raw records for
// the planner. Parent links and positions come through untouched; the
// planner owns all interpretation.
func (c *TasksClient) FetchOpen() ([]model.RawTask, error) {
	lists, err := c.srv.Tasklists.List().Do()
	if err != nil {
		return nil, fmt.Errorf("unable to list task lists: %w", err)
	}

	var all []model.RawTask
	for _, list := range lists.Items {
		result, err := c.srv.Tasks.List(list.Id).
			ShowCompleted(false).
			MaxResults(100).
			Do()
		if err != nil {
			return nil, fmt.Errorf("unable to list tasks in %q: %w", list.Title, err)
		}
		for _, t := range result.Items {
			all = append(all, model.RawTask{
				ID:       t.Id,
				Title:    t.Title,
				Due:      t.Due,
				Notes:    t.Notes,
				Parent:   t.Parent,
				Position: t.Position,
				ListName: list.Title,
			})
		}
	}
	return all, nil
}
