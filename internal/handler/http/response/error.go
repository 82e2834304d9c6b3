package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/adrs/attendance-sheet/internal/domain/attendance"
	"github.com/adrs/attendance-sheet/internal/domain/employee"
	"github.com/adrs/attendance-sheet/internal/domain/report"
	"github.com/adrs/attendance-sheet/internal/pkg/validator"
	"github.com/adrs/attendance-sheet/internal/service/roster"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmpIDExists):
		Conflict(w, "Employee ID already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidMonth),
		errors.Is(err, attendance.ErrInvalidYear),
		errors.Is(err, attendance.ErrInvalidStatus),
		errors.Is(err, attendance.ErrDayOutOfRange),
		errors.Is(err, attendance.ErrInvalidDays):
		BadRequest(w, err.Error(), nil)

	// Roster errors
	case errors.Is(err, roster.ErrRemovalNotConfirmed):
		BadRequest(w, "Removal must be confirmed", map[string]string{"confirm": "must be true"})
	case errors.Is(err, roster.ErrNetworkFailure):
		BadGateway(w, "Employees API request failed")

	// Report domain errors
	case errors.Is(err, report.ErrUnsupportedFormat):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, report.ErrReportGenerationFailed):
		InternalServerError(w, "Failed to generate export")

	// Default
	default:
		slog.Error("unhandled error", slog.Any("error", err))
		InternalServerError(w, "An unexpected error occurred")
	}
}
