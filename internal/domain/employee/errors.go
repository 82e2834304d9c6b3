package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmpIDExists      = errors.New("employee id already exists")
)
