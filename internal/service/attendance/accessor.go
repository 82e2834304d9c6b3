package attendance

import (
	"github.com/adrs/attendance-sheet/internal/domain/attendance"
	"github.com/adrs/attendance-sheet/internal/domain/employee"
)

// FindRecord returns the employee's record for exactly period, if any
func FindRecord(emp employee.Employee, period attendance.Period) (attendance.Record, bool) {
	for _, rec := range emp.Attendance {
		if rec.Year == period.Year && rec.Month == period.Month {
			return rec, true
		}
	}
	return attendance.Record{}, false
}

// StatusOf returns the employee's status on day of period.
// Missing record, missing day and out-of-range day all resolve to unset.
func StatusOf(emp employee.Employee, period attendance.Period, day int) attendance.Status {
	if !period.Contains(day) {
		return attendance.StatusUnset
	}
	rec, ok := FindRecord(emp, period)
	if !ok {
		return attendance.StatusUnset
	}
	return rec.Days.Get(attendance.DayKey(day))
}

// MonthStatuses returns the statuses of days 1..N of period, unset included
func MonthStatuses(emp employee.Employee, period attendance.Period) []attendance.Status {
	n := period.DaysInMonth()
	out := make([]attendance.Status, n)
	rec, ok := FindRecord(emp, period)
	if !ok {
		return out
	}
	for day := 1; day <= n; day++ {
		out[day-1] = rec.Days.Get(attendance.DayKey(day))
	}
	return out
}
