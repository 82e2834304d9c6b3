package attendance

import "errors"

// Attendance domain errors
var (
	ErrInvalidStatus = errors.New("invalid attendance status")
	ErrInvalidMonth  = errors.New("month must be between 1 and 12")
	ErrInvalidYear   = errors.New("year is not selectable")
	ErrDayOutOfRange = errors.New("day is outside the selected month")
	ErrInvalidDays   = errors.New("days must be an object or a list of [day, status] pairs")
)
