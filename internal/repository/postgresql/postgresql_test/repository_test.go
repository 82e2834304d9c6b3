package postgresql_test

import (
	"context"
	"errors"
	"testing"

	"github.com/adrs/attendance-sheet/internal/domain/attendance"
	"github.com/adrs/attendance-sheet/internal/domain/employee"
	"github.com/adrs/attendance-sheet/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeRepository_CRUD(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewEmployeeRepository(setup.DB)
	ctx := context.Background()

	created, err := repo.Create(ctx, employee.Employee{EmpID: "E1", Name: "Ann", Role: "Dev"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "E1", created.EmpID)

	t.Run("duplicate empId", func(t *testing.T) {
		_, err := repo.Create(ctx, employee.Employee{EmpID: "E1", Name: "Bob", Role: "QA"})
		assert.ErrorIs(t, err, employee.ErrEmpIDExists)
	})

	t.Run("rename keeps id", func(t *testing.T) {
		updated, err := repo.Update(ctx, created.ID, employee.UpdateEmployeeRequest{
			OriginalEmpID: "E1", EmpID: "E9", Name: "Ann", Role: "Lead",
		})
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "E9", updated.EmpID)

		exists, err := repo.ExistsByEmpID(ctx, "E1")
		require.NoError(t, err)
		assert.False(t, exists)

		got, err := repo.GetByEmpID(ctx, "E9")
		require.NoError(t, err)
		assert.Equal(t, "Lead", got.Role)
	})

	t.Run("list", func(t *testing.T) {
		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "E9", list[0].EmpID)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, created.ID))
		err := repo.Delete(ctx, created.ID)
		assert.True(t, errors.Is(err, employee.ErrEmployeeNotFound))

		_, err = repo.GetByEmpID(ctx, "E9")
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})
}

func TestAttendanceRepository_SetClearList(t *testing.T) {
	setup := NewTestDatabase(t)
	employees := postgresql.NewEmployeeRepository(setup.DB)
	repo := postgresql.NewAttendanceRepository(setup.DB)
	ctx := context.Background()

	emp, err := employees.Create(ctx, employee.Employee{EmpID: "E1", Name: "Ann", Role: "Dev"})
	require.NoError(t, err)

	feb := attendance.Period{Year: 2024, Month: 2}
	jan := attendance.Period{Year: 2024, Month: 1}

	require.NoError(t, repo.SetDay(ctx, emp.ID, feb, 10, attendance.StatusPresent))
	require.NoError(t, repo.SetDay(ctx, emp.ID, feb, 2, attendance.StatusHoliday))
	require.NoError(t, repo.SetDay(ctx, emp.ID, feb, 2, attendance.StatusAbsent))
	require.NoError(t, repo.SetDay(ctx, emp.ID, jan, 31, attendance.StatusLate))
	require.NoError(t, repo.SetDay(ctx, emp.ID, jan, 5, attendance.StatusLate))
	require.NoError(t, repo.ClearDay(ctx, emp.ID, jan, 5))
	require.NoError(t, repo.ClearDay(ctx, emp.ID, jan, 6))

	records, err := repo.ListByEmployeeIDs(ctx, []string{emp.ID})
	require.NoError(t, err)

	got := records[emp.ID]
	require.Len(t, got, 2)
	assert.Equal(t, jan, got[0].Period())
	assert.Equal(t, []attendance.DayEntry{{Day: "31", Status: attendance.StatusLate}}, got[0].Days.Entries())
	assert.Equal(t, feb, got[1].Period())
	assert.Equal(t, []attendance.DayEntry{
		{Day: "2", Status: attendance.StatusAbsent},
		{Day: "10", Status: attendance.StatusPresent},
	}, got[1].Days.Entries())

	t.Run("cascade on employee delete", func(t *testing.T) {
		require.NoError(t, employees.Delete(ctx, emp.ID))
		records, err := repo.ListByEmployeeIDs(ctx, []string{emp.ID})
		require.NoError(t, err)
		assert.Empty(t, records[emp.ID])
	})

	t.Run("no ids", func(t *testing.T) {
		records, err := repo.ListByEmployeeIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}
