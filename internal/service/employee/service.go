package employee

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/adrs/attendance-sheet/internal/domain/attendance"
	"github.com/adrs/attendance-sheet/internal/domain/employee"
	"github.com/adrs/attendance-sheet/internal/pkg/database"
	"github.com/adrs/attendance-sheet/internal/repository/postgresql"
)

type txFunc func(ctx context.Context, fn func(txCtx context.Context) error) error

type EmployeeServiceImpl struct {
	withTx         txFunc
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	logger         *slog.Logger
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		withTx: func(ctx context.Context, fn func(txCtx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		logger:         slog.With("component", "employee-service"),
	}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return []employee.Employee{}, nil
	}

	ids := make([]string, len(employees))
	for i, emp := range employees {
		ids[i] = emp.ID
	}

	records, err := s.attendanceRepo.ListByEmployeeIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range employees {
		employees[i].Attendance = withRecords(records[employees[i].ID])
	}

	return employees, nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	var created employee.Employee
	err := s.withTx(ctx, func(txCtx context.Context) error {
		exists, err := s.employeeRepo.ExistsByEmpID(txCtx, req.EmpID)
		if err != nil {
			return err
		}
		if exists {
			return employee.ErrEmpIDExists
		}

		created, err = s.employeeRepo.Create(txCtx, employee.Employee{
			EmpID: req.EmpID,
			Name:  req.Name,
			Role:  req.Role,
		})
		return err
	})
	if err != nil {
		return employee.Employee{}, err
	}

	created.Attendance = []attendance.Record{}
	s.logger.Info("employee created", slog.String("emp_id", created.EmpID), slog.String("id", created.ID))

	return created, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	var updated employee.Employee
	err := s.withTx(ctx, func(txCtx context.Context) error {
		current, err := s.employeeRepo.GetByEmpID(txCtx, req.OriginalEmpID)
		if err != nil {
			return err
		}

		if req.EmpID != current.EmpID {
			exists, err := s.employeeRepo.ExistsByEmpID(txCtx, req.EmpID)
			if err != nil {
				return err
			}
			if exists {
				return employee.ErrEmpIDExists
			}
		}

		updated, err = s.employeeRepo.Update(txCtx, current.ID, req)
		if err != nil {
			return err
		}

		records, err := s.attendanceRepo.ListByEmployeeIDs(txCtx, []string{updated.ID})
		if err != nil {
			return err
		}
		updated.Attendance = withRecords(records[updated.ID])
		return nil
	})
	if err != nil {
		return employee.Employee{}, err
	}

	if req.EmpID != req.OriginalEmpID {
		s.logger.Info("employee renamed",
			slog.String("from", req.OriginalEmpID),
			slog.String("to", updated.EmpID),
		)
	}

	return updated, nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, empID string) error {
	return s.withTx(ctx, func(txCtx context.Context) error {
		current, err := s.employeeRepo.GetByEmpID(txCtx, empID)
		if err != nil {
			return err
		}
		if err := s.employeeRepo.Delete(txCtx, current.ID); err != nil {
			return fmt.Errorf("failed to delete employee %s: %w", empID, err)
		}
		return nil
	})
}

// SetDayStatus implements employee.EmployeeService.
func (s *EmployeeServiceImpl) SetDayStatus(ctx context.Context, req attendance.SetDayStatusRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	status, _ := attendance.ParseStatus(req.Status)
	period := req.Period()

	var updated employee.Employee
	err := s.withTx(ctx, func(txCtx context.Context) error {
		current, err := s.employeeRepo.GetByEmpID(txCtx, req.EmpID)
		if err != nil {
			return err
		}

		if status.IsUnset() {
			err = s.attendanceRepo.ClearDay(txCtx, current.ID, period, req.Day)
		} else {
			err = s.attendanceRepo.SetDay(txCtx, current.ID, period, req.Day, status)
		}
		if err != nil {
			return err
		}

		records, err := s.attendanceRepo.ListByEmployeeIDs(txCtx, []string{current.ID})
		if err != nil {
			return err
		}
		current.Attendance = withRecords(records[current.ID])
		updated = current
		return nil
	})
	if err != nil {
		return employee.Employee{}, err
	}

	return updated, nil
}

func withRecords(records []attendance.Record) []attendance.Record {
	if records == nil {
		return []attendance.Record{}
	}
	return records
}
