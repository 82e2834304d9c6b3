package employee

import (
	"context"

	"github.com/adrs/attendance-sheet/internal/domain/attendance"
)

// EmployeeService defines business logic behind the employees API
type EmployeeService interface {
	// ListEmployees returns every employee with its attendance records
	ListEmployees(ctx context.Context) ([]Employee, error)

	// CreateEmployee creates an employee with no attendance
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (Employee, error)

	// UpdateEmployee changes empId, name and role of the employee at req.OriginalEmpID
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (Employee, error)

	// DeleteEmployee removes an employee and its attendance
	DeleteEmployee(ctx context.Context, empID string) error

	// SetDayStatus writes or clears one day and returns the updated employee
	SetDayStatus(ctx context.Context, req attendance.SetDayStatusRequest) (Employee, error)
}
