package google

import (
	"fmt"

	"google.golang.org/api/sheets/v4"
)

// SheetsClient reads the habit tracker spreadsheet.
type SheetsClient struct {
	srv *sheets.Service
}

func NewSheetsClient(srv *sheets.Service) *SheetsClient {
	return &SheetsClient{srv: srv}
}

// HabitRows fetches a range as string cells, header row included. The habit
// package owns parsing.
func (c *SheetsClient) HabitRows(sheetID, rangeName string) ([][]string, error) {
	result, err := c.srv.Spreadsheets.Values.Get(sheetID, rangeName).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to read habit range %q: %w", rangeName, err)
	}

	rows := make([][]string, 0, len(result.Values))
	for _, row := range result.Values {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, fmt.Sprint(cell))
		}
		rows = append(rows, cells)
	}
	return rows, nil
}
