package attendance

import (
	"strings"

	"github.com/adrs/attendance-sheet/internal/pkg/validator"
)

// SetDayStatusRequest is the body of PUT /api/employees/{empId}/attendance
type SetDayStatusRequest struct {
	EmpID  string `json:"-"`
	Year   int    `json:"year"`
	Month  int    `json:"month"`
	Day    int    `json:"day"`
	Status string `json:"status"`
}

func (r *SetDayStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	r.EmpID = strings.TrimSpace(r.EmpID)
	if validator.IsEmpty(r.EmpID) {
		errs = append(errs, validator.ValidationError{
			Field:   "empId",
			Message: "empId is required",
		})
	}

	period := Period{Year: r.Year, Month: r.Month}
	if err := period.Validate(); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: err.Error(),
		})
	} else if !validator.IsInRange(r.Day, 1, period.DaysInMonth()) {
		errs = append(errs, validator.ValidationError{
			Field:   "day",
			Message: ErrDayOutOfRange.Error(),
		})
	}

	if r.Status != "" && !validator.IsInSlice(r.Status, StatusOptions()) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of Present, Absent, Late, Half-day, Holiday, On Leave or empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Period returns the month the request targets
func (r SetDayStatusRequest) Period() Period {
	return Period{Year: r.Year, Month: r.Month}
}
