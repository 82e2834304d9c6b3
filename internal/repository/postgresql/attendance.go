package postgresql

import (
	"context"
	"fmt"

	"github.com/adrs/attendance-sheet/internal/domain/attendance"
	"github.com/adrs/attendance-sheet/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// SetDay implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) SetDay(ctx context.Context, employeeID string, period attendance.Period, day int, status attendance.Status) error {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_days (employee_id, year, month, day, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (employee_id, year, month, day)
		DO UPDATE SET status = EXCLUDED.status, updated_at = NOW()
	`

	_, err := q.Exec(ctx, query, employeeID, period.Year, period.Month, day, string(status))
	if err != nil {
		return fmt.Errorf("failed to set day %d of %d-%02d for employee %s: %w", day, period.Year, period.Month, employeeID, err)
	}

	return nil
}

// ClearDay implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ClearDay(ctx context.Context, employeeID string, period attendance.Period, day int) error {
	q := GetQuerier(ctx, a.db)

	query := `
		DELETE FROM attendance_days
		WHERE employee_id = $1 AND year = $2 AND month = $3 AND day = $4
	`

	if _, err := q.Exec(ctx, query, employeeID, period.Year, period.Month, day); err != nil {
		return fmt.Errorf("failed to clear day %d of %d-%02d for employee %s: %w", day, period.Year, period.Month, employeeID, err)
	}

	return nil
}

// ListByEmployeeIDs implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ListByEmployeeIDs(ctx context.Context, employeeIDs []string) (map[string][]attendance.Record, error) {
	result := make(map[string][]attendance.Record, len(employeeIDs))
	if len(employeeIDs) == 0 {
		return result, nil
	}

	q := GetQuerier(ctx, a.db)

	query := `
		SELECT employee_id, year, month, day, status
		FROM attendance_days
		WHERE employee_id = ANY($1::uuid[])
		ORDER BY employee_id, year, month, day
	`

	rows, err := q.Query(ctx, query, employeeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	// Rows arrive grouped per employee and period, so the open record is always the last one.
	days := make(map[string][]*attendance.OrderedDays)
	for rows.Next() {
		var (
			employeeID       string
			year, month, day int
			status           string
		)
		if err := rows.Scan(&employeeID, &year, &month, &day, &status); err != nil {
			return nil, err
		}

		records := result[employeeID]
		n := len(records)
		if n == 0 || records[n-1].Year != year || records[n-1].Month != month {
			ordered := attendance.NewOrderedDays()
			result[employeeID] = append(records, attendance.Record{
				Year:  year,
				Month: month,
				Days:  attendance.NewDays(ordered),
			})
			days[employeeID] = append(days[employeeID], ordered)
		}
		open := days[employeeID]
		open[len(open)-1].Set(attendance.DayKey(day), attendance.Status(status))
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
