package attendance

import (
	"github.com/adrs/attendance-sheet/internal/domain/attendance"
	"github.com/adrs/attendance-sheet/internal/domain/employee"
	"github.com/shopspring/decimal"
)

// TotalPresent counts the entries of the period's record that are exactly Present
func TotalPresent(emp employee.Employee, period attendance.Period) int {
	rec, ok := FindRecord(emp, period)
	if !ok {
		return 0
	}

	total := 0
	for _, s := range rec.Days.Values() {
		if s == attendance.StatusPresent {
			total++
		}
	}
	return total
}

// HolidayDays returns the day keys any employee marked Holiday in period,
// numeric keys ascending. Keys are taken as stored, out-of-range ones included.
func HolidayDays(roster []employee.Employee, period attendance.Period) []string {
	set := make(map[string]struct{})
	for _, emp := range roster {
		rec, ok := FindRecord(emp, period)
		if !ok {
			continue
		}
		for _, e := range rec.Days.Entries() {
			if e.Status == attendance.StatusHoliday {
				set[e.Day] = struct{}{}
			}
		}
	}

	days := make([]string, 0, len(set))
	for d := range set {
		days = append(days, d)
	}
	attendance.SortDayKeys(days)
	return days
}

// WorkingDays is the month length minus every day a holiday is recorded on
// for anyone in the roster, never below zero
func WorkingDays(roster []employee.Employee, period attendance.Period) int {
	working := period.DaysInMonth() - len(HolidayDays(roster, period))
	if working < 0 {
		return 0
	}
	return working
}

// AttendanceRate returns present / workingDays as a percentage with two decimals
func AttendanceRate(present, workingDays int) decimal.Decimal {
	if workingDays <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(present)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(workingDays))).
		Round(2)
}
