package attendance

import "time"

// SelectableYearCount is how many years, starting at the current one, can be picked
const SelectableYearCount = 7

// Period is a calendar month
type Period struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// PeriodOf returns the month containing t
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: int(t.Month())}
}

func (p Period) DaysInMonth() int {
	return DaysInMonth(p.Year, p.Month)
}

// Contains reports whether day is a valid day number of the period
func (p Period) Contains(day int) bool {
	return day >= 1 && day <= p.DaysInMonth()
}

func (p Period) Validate() error {
	if p.Month < 1 || p.Month > 12 {
		return ErrInvalidMonth
	}
	return nil
}

// DaysInMonth returns the number of days in month (1-12) of year, leap years included.
// It returns 0 for a month outside 1-12.
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	// day 0 of the next month is the last day of this one
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// SelectableYears returns the current year of now and the following six
func SelectableYears(now time.Time) []int {
	years := make([]int, SelectableYearCount)
	for i := range years {
		years[i] = now.Year() + i
	}
	return years
}

// MonthNames returns January..December
func MonthNames() []string {
	names := make([]string, 12)
	for i := range names {
		names[i] = time.Month(i + 1).String()
	}
	return names
}
