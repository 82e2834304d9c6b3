package employee

import "context"

// EmployeeRepository stores employee rows; attendance lives in the attendance repository
type EmployeeRepository interface {
	List(ctx context.Context) ([]Employee, error)
	GetByEmpID(ctx context.Context, empID string) (Employee, error)
	ExistsByEmpID(ctx context.Context, empID string) (bool, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (Employee, error)
	Delete(ctx context.Context, id string) error
}
