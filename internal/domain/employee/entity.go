package employee

import (
	"strings"

	"github.com/adrs/attendance-sheet/internal/domain/attendance"
)

// Employee is a roster entry together with its monthly attendance records.
// ID is server-assigned and never changes; EmpID is the user-editable code
// and can change on rename.
type Employee struct {
	ID         string              `json:"id,omitempty"`
	EmpID      string              `json:"empId"`
	Name       string              `json:"name"`
	Role       string              `json:"role"`
	Attendance []attendance.Record `json:"attendance"`
}

// HasEmpID compares ids the way day-status updates match employees
func (e Employee) HasEmpID(empID string) bool {
	return strings.TrimSpace(e.EmpID) == strings.TrimSpace(empID)
}

// SameEntity reports whether other is the same employee, by stable id when both
// sides carry one, otherwise by exact EmpID
func (e Employee) SameEntity(other Employee) bool {
	if e.ID != "" && other.ID != "" {
		return e.ID == other.ID
	}
	return e.EmpID == other.EmpID
}
