package roster

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/adrs/attendance-sheet/internal/domain/attendance"
	"github.com/adrs/attendance-sheet/internal/domain/employee"
	"github.com/adrs/attendance-sheet/internal/pkg/validator"
)

const removeConfirmPrompt = "Are you sure you want to remove this employee?"

// EmployeeAPI is the remote side of the roster; *employeeapi.Client satisfies it
type EmployeeAPI interface {
	ListEmployees(ctx context.Context) ([]employee.Employee, error)
	CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error)
	UpdateEmployee(ctx context.Context, originalEmpID string, req employee.UpdateEmployeeRequest) (employee.Employee, error)
	DeleteEmployee(ctx context.Context, empID string) error
	SetDayStatus(ctx context.Context, req attendance.SetDayStatusRequest) (employee.Employee, error)
}

// Confirmer asks the operator before destructive operations
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer
type ConfirmFunc func(ctx context.Context, prompt string) bool

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) bool {
	return f(ctx, prompt)
}

// Confirmed returns a Confirmer that always answers ok
func Confirmed(ok bool) Confirmer {
	return ConfirmFunc(func(context.Context, string) bool { return ok })
}

// Store is the in-memory roster of the attendance sheet. Every write goes to
// the employees API first; local state only changes once the API accepted it,
// and always by replacing whole employee entries. Concurrent writes are last
// response wins.
type Store struct {
	api      EmployeeAPI
	notifier *Notifier
	logger   *slog.Logger
	now      func() time.Time

	mu        sync.RWMutex
	employees []employee.Employee
	period    attendance.Period
}

// NewStore creates an empty store selecting the current month
func NewStore(api EmployeeAPI, notifier *Notifier) *Store {
	if notifier == nil {
		notifier = NewNotifier(nil)
	}
	return &Store{
		api:       api,
		notifier:  notifier,
		logger:    slog.With(slog.String("component", "roster")),
		now:       time.Now,
		employees: []employee.Employee{},
		period:    attendance.PeriodOf(time.Now()),
	}
}

// Open loads the roster for the first time
func (s *Store) Open(ctx context.Context) error {
	return s.Load(ctx)
}

// Close drops local state and pending notifications
func (s *Store) Close() {
	s.notifier.Close()

	s.mu.Lock()
	s.employees = []employee.Employee{}
	s.mu.Unlock()
}

// Notifier returns the store's flash-message notifier
func (s *Store) Notifier() *Notifier {
	return s.notifier
}

// Load replaces the roster with the API's list. On failure the previous
// roster stays in place.
func (s *Store) Load(ctx context.Context) error {
	employees, err := s.api.ListEmployees(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch employees", slog.Any("error", err))
		return fmt.Errorf("%w: %w", ErrNetworkFailure, err)
	}

	s.mu.Lock()
	s.employees = employees
	s.mu.Unlock()

	s.logger.Debug("Roster loaded", slog.Int("employees", len(employees)))
	return nil
}

// Add creates an employee. Fields are trimmed; any empty field is rejected
// before the API is called.
func (s *Store) Add(ctx context.Context, empID, name, role string) (employee.Employee, error) {
	req := employee.CreateEmployeeRequest{EmpID: empID, Name: name, Role: role}
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	created, err := s.api.CreateEmployee(ctx, req)
	if err != nil {
		s.logger.Error("Failed to add employee", slog.String("emp_id", req.EmpID), slog.Any("error", err))
		s.notifier.Show(MessageError, "Failed to add employee", MessageTTL)
		return employee.Employee{}, fmt.Errorf("%w: %w", ErrNetworkFailure, err)
	}

	s.mu.Lock()
	s.employees = append(s.employees, created)
	s.mu.Unlock()

	s.notifier.Show(MessageSuccess, "Employee added", MessageTTL)
	return created, nil
}

// UpdateDayStatus sets the status of day in the selected period. The entry
// whose trimmed empId matches is replaced by the API's copy in place.
func (s *Store) UpdateDayStatus(ctx context.Context, empID string, day int, status string) (employee.Employee, error) {
	period := s.Period()

	parsed, err := attendance.ParseStatus(status)
	if err != nil {
		return employee.Employee{}, validator.ValidationErrors{{Field: "status", Message: err.Error()}}
	}
	if !period.Contains(day) {
		return employee.Employee{}, validator.ValidationErrors{{Field: "day", Message: attendance.ErrDayOutOfRange.Error()}}
	}

	updated, err := s.api.SetDayStatus(ctx, attendance.SetDayStatusRequest{
		EmpID:  empID,
		Year:   period.Year,
		Month:  period.Month,
		Day:    day,
		Status: string(parsed),
	})
	if err != nil {
		s.logger.Error("Failed to update attendance",
			slog.String("emp_id", empID),
			slog.Int("day", day),
			slog.Any("error", err),
		)
		s.notifier.Show(MessageError, "Failed to update attendance", MessageTTL)
		return employee.Employee{}, fmt.Errorf("%w: %w", ErrNetworkFailure, err)
	}

	s.mu.Lock()
	next := make([]employee.Employee, len(s.employees))
	for i, e := range s.employees {
		if e.HasEmpID(empID) {
			next[i] = updated
			continue
		}
		next[i] = e
	}
	s.employees = next
	s.mu.Unlock()

	return updated, nil
}

// Rename changes empId, name and role of the employee currently known as
// oldEmpID. The entry is re-keyed through its stable id so the rename cannot
// lose track of it.
func (s *Store) Rename(ctx context.Context, oldEmpID, newEmpID, name, role string) (employee.Employee, error) {
	req := employee.UpdateEmployeeRequest{OriginalEmpID: oldEmpID, EmpID: newEmpID, Name: name, Role: role}
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	target := employee.Employee{EmpID: oldEmpID}
	s.mu.RLock()
	for _, e := range s.employees {
		if e.EmpID == oldEmpID {
			target = e
			break
		}
	}
	s.mu.RUnlock()

	updated, err := s.api.UpdateEmployee(ctx, oldEmpID, req)
	if err != nil {
		s.logger.Error("Failed to update employee", slog.String("emp_id", oldEmpID), slog.Any("error", err))
		s.notifier.Show(MessageError, "Failed to update employee", MessageTTL)
		return employee.Employee{}, fmt.Errorf("%w: %w", ErrNetworkFailure, err)
	}

	s.mu.Lock()
	next := make([]employee.Employee, len(s.employees))
	for i, e := range s.employees {
		if e.SameEntity(target) {
			next[i] = updated
			continue
		}
		next[i] = e
	}
	s.employees = next
	s.mu.Unlock()

	s.notifier.Show(MessageSuccess, "Employee updated", MessageTTL)
	return updated, nil
}

// Remove deletes the employee with exactly empID once confirm agrees.
// Without confirmation nothing is sent.
func (s *Store) Remove(ctx context.Context, empID string, confirm Confirmer) error {
	if confirm == nil || !confirm.Confirm(ctx, removeConfirmPrompt) {
		return ErrRemovalNotConfirmed
	}

	if err := s.api.DeleteEmployee(ctx, empID); err != nil {
		s.logger.Error("Failed to delete employee", slog.String("emp_id", empID), slog.Any("error", err))
		s.notifier.Show(MessageError, "Failed to delete employee", MessageTTL)
		return fmt.Errorf("%w: %w", ErrNetworkFailure, err)
	}

	s.mu.Lock()
	next := make([]employee.Employee, 0, len(s.employees))
	for _, e := range s.employees {
		if e.EmpID != empID {
			next = append(next, e)
		}
	}
	s.employees = next
	s.mu.Unlock()

	s.notifier.Show(MessageSuccess, "Employee removed", MessageTTL)
	return nil
}

// SaveAck acknowledges a save request; every change is already persisted
func (s *Store) SaveAck() Message {
	return s.notifier.Show(MessageSuccess, "All changes are saved (auto-saved on each change).", SaveAckTTL)
}

// Filter returns employees whose empId or name contains query, ignoring case
func (s *Store) Filter(query string) []employee.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	out := make([]employee.Employee, 0, len(s.employees))
	for _, e := range s.employees {
		if q == "" ||
			strings.Contains(strings.ToLower(e.EmpID), q) ||
			strings.Contains(strings.ToLower(e.Name), q) {
			out = append(out, e)
		}
	}
	return out
}

// Employees returns a copy of the full roster
func (s *Store) Employees() []employee.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]employee.Employee, len(s.employees))
	copy(out, s.employees)
	return out
}

// Snapshot returns the full roster and the selected period together
func (s *Store) Snapshot() ([]employee.Employee, attendance.Period) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]employee.Employee, len(s.employees))
	copy(out, s.employees)
	return out, s.period
}

// Period returns the selected month
func (s *Store) Period() attendance.Period {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.period
}

// SelectPeriod changes the selected month; the year must be selectable
func (s *Store) SelectPeriod(period attendance.Period) error {
	if err := period.Validate(); err != nil {
		return err
	}

	selectable := false
	for _, y := range attendance.SelectableYears(s.now()) {
		if y == period.Year {
			selectable = true
			break
		}
	}
	if !selectable {
		return attendance.ErrInvalidYear
	}

	s.mu.Lock()
	s.period = period
	s.mu.Unlock()
	return nil
}
