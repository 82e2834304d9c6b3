package attendance

import "strconv"

// Status is the attendance state of one employee on one day.
// The zero value is StatusUnset, which is also what an absent day key means.
type Status string

const (
	StatusUnset   Status = ""
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusLate    Status = "Late"
	StatusHalfDay Status = "Half-day"
	StatusHoliday Status = "Holiday"
	StatusOnLeave Status = "On Leave"
)

// StatusSelectUI is the drop-down placeholder; choosing it clears the day
const StatusSelectUI = "--Select--"

var statuses = []Status{
	StatusPresent,
	StatusAbsent,
	StatusLate,
	StatusHalfDay,
	StatusHoliday,
	StatusOnLeave,
}

// StatusOptions returns the drop-down options: the placeholder followed by every status
func StatusOptions() []string {
	out := make([]string, 0, len(statuses)+1)
	out = append(out, StatusSelectUI)
	for _, s := range statuses {
		out = append(out, string(s))
	}
	return out
}

// ParseStatus accepts a known status, the empty string or the UI placeholder.
// The last two both mean unset.
func ParseStatus(s string) (Status, error) {
	if s == "" || s == StatusSelectUI {
		return StatusUnset, nil
	}
	for _, st := range statuses {
		if string(st) == s {
			return st, nil
		}
	}
	return StatusUnset, ErrInvalidStatus
}

func (s Status) IsUnset() bool {
	return s == StatusUnset
}

// Record is one employee's day -> status map for a single month
type Record struct {
	Year  int  `json:"year"`
	Month int  `json:"month"`
	Days  Days `json:"days"`
}

// Period returns the (year, month) the record belongs to
func (r Record) Period() Period {
	return Period{Year: r.Year, Month: r.Month}
}

// DayKey formats a day number the way day maps key it
func DayKey(day int) string {
	return strconv.Itoa(day)
}
