package report

import (
	"github.com/adrs/attendance-sheet/internal/domain/attendance"
	"github.com/adrs/attendance-sheet/internal/domain/employee"
)

// ReportService exports the attendance grid of a month
type ReportService interface {
	// Export renders the full roster for period in format
	Export(roster []employee.Employee, period attendance.Period, format Format) (ExportFile, error)
}
