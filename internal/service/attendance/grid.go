package attendance

import (
	"time"

	"github.com/adrs/attendance-sheet/internal/domain/attendance"
	"github.com/adrs/attendance-sheet/internal/domain/employee"
	"github.com/shopspring/decimal"
)

// Grid is the read model of the attendance sheet for one month
type Grid struct {
	Period         attendance.Period `json:"period"`
	MonthName      string            `json:"month_name"`
	DaysInMonth    int               `json:"days_in_month"`
	WorkingDays    int               `json:"working_days"`
	HolidayDays    []string          `json:"holiday_days"`
	Query          string            `json:"query,omitempty"`
	TotalEmployees int               `json:"total_employees"`
	Rows           []GridRow         `json:"rows"`
	StatusOptions  []string          `json:"status_options"`
	Years          []int             `json:"years"`
	Months         []string          `json:"months"`
}

// GridRow is one employee line of the grid; Statuses[i] is day i+1
type GridRow struct {
	ID             string              `json:"id,omitempty"`
	EmpID          string              `json:"empId"`
	Name           string              `json:"name"`
	Role           string              `json:"role"`
	TotalPresent   int                 `json:"total_present"`
	AttendanceRate decimal.Decimal     `json:"attendance_rate"`
	Statuses       []attendance.Status `json:"statuses"`
}

// BuildGrid renders visible rows, while roster-wide figures (working days,
// holidays) are always computed over the full roster
func BuildGrid(roster, visible []employee.Employee, period attendance.Period, query string, now time.Time) Grid {
	workingDays := WorkingDays(roster, period)

	rows := make([]GridRow, 0, len(visible))
	for _, emp := range visible {
		present := TotalPresent(emp, period)
		rows = append(rows, GridRow{
			ID:             emp.ID,
			EmpID:          emp.EmpID,
			Name:           emp.Name,
			Role:           emp.Role,
			TotalPresent:   present,
			AttendanceRate: AttendanceRate(present, workingDays),
			Statuses:       MonthStatuses(emp, period),
		})
	}

	return Grid{
		Period:         period,
		MonthName:      time.Month(period.Month).String(),
		DaysInMonth:    period.DaysInMonth(),
		WorkingDays:    workingDays,
		HolidayDays:    HolidayDays(roster, period),
		Query:          query,
		TotalEmployees: len(roster),
		Rows:           rows,
		StatusOptions:  attendance.StatusOptions(),
		Years:          attendance.SelectableYears(now),
		Months:         attendance.MonthNames(),
	}
}
