package employee

import (
	"strings"

	"github.com/adrs/attendance-sheet/internal/pkg/validator"
)

// CreateEmployeeRequest is the body of POST /api/employees
type CreateEmployeeRequest struct {
	EmpID string `json:"empId"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Validate trims every field and requires all of them
func (r *CreateEmployeeRequest) Validate() error {
	r.EmpID = strings.TrimSpace(r.EmpID)
	r.Name = strings.TrimSpace(r.Name)
	r.Role = strings.TrimSpace(r.Role)
	return validateFields(r.EmpID, r.Name, r.Role)
}

// UpdateEmployeeRequest is the body of PUT /api/employees/{empId}.
// OriginalEmpID comes from the path and may differ from EmpID on rename.
type UpdateEmployeeRequest struct {
	OriginalEmpID string `json:"-"`
	EmpID         string `json:"empId"`
	Name          string `json:"name"`
	Role          string `json:"role"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	r.EmpID = strings.TrimSpace(r.EmpID)
	r.Name = strings.TrimSpace(r.Name)
	r.Role = strings.TrimSpace(r.Role)

	var errs validator.ValidationErrors
	if r.OriginalEmpID == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "originalEmpId",
			Message: "original empId is required",
		})
	}
	if err := validateFields(r.EmpID, r.Name, r.Role); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateFields(empID, name, role string) error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(empID) {
		errs = append(errs, validator.ValidationError{
			Field:   "empId",
			Message: "empId is required",
		})
	}
	if validator.IsEmpty(name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
