package attendance

import "context"

// AttendanceRepository stores day statuses per employee.
// An unset status is stored as the absence of the day.
type AttendanceRepository interface {
	// SetDay upserts the status of a single day
	SetDay(ctx context.Context, employeeID string, period Period, day int, status Status) error

	// ClearDay removes a day entry; clearing a missing day is not an error
	ClearDay(ctx context.Context, employeeID string, period Period, day int) error

	// ListByEmployeeIDs returns every record of the given employees keyed by employee id,
	// records ordered by year then month
	ListByEmployeeIDs(ctx context.Context, employeeIDs []string) (map[string][]Record, error)
}
