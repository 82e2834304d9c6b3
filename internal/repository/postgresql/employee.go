package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/adrs/attendance-sheet/internal/domain/employee"
	"github.com/adrs/attendance-sheet/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, emp_id, name, role
		FROM employees
		ORDER BY created_at, emp_id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := []employee.Employee{}
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(&emp.ID, &emp.EmpID, &emp.Name, &emp.Role); err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// GetByEmpID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByEmpID(ctx context.Context, empID string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, emp_id, name, role
		FROM employees
		WHERE emp_id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, empID).Scan(&emp.ID, &emp.EmpID, &emp.Name, &emp.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee with empId %s: %w", empID, err)
	}

	return emp, nil
}

// ExistsByEmpID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByEmpID(ctx context.Context, empID string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE emp_id = $1)`, empID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check empId %s: %w", empID, err)
	}

	return exists, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	if newEmployee.ID == "" {
		newEmployee.ID = uuid.New().String()
	}

	query := `
		INSERT INTO employees (id, emp_id, name, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, emp_id, name, role
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query, newEmployee.ID, newEmployee.EmpID, newEmployee.Name, newEmployee.Role).
		Scan(&created.ID, &created.EmpID, &created.Name, &created.Role)
	if err != nil {
		if isUniqueViolation(err) {
			return employee.Employee{}, employee.ErrEmpIDExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET emp_id = $1, name = $2, role = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id, emp_id, name, role
	`

	var updated employee.Employee
	err := q.QueryRow(ctx, query, req.EmpID, req.Name, req.Role, id).
		Scan(&updated.ID, &updated.EmpID, &updated.Name, &updated.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		if isUniqueViolation(err) {
			return employee.Employee{}, employee.ErrEmpIDExists
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee with id %s: %w", id, err)
	}

	return updated, nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
