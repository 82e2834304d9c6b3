package report

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/adrs/attendance-sheet/internal/domain/attendance"
	"github.com/adrs/attendance-sheet/internal/domain/employee"
	attendanceService "github.com/adrs/attendance-sheet/internal/service/attendance"
)

// CSVHeader returns the CSV header row for period
func CSVHeader(period attendance.Period) []string {
	header := []string{"Employee ID", "Employee Name", "Role", "Total Present", "Working Days"}
	return append(header, dayColumns(period)...)
}

// ToCSV writes one row per roster employee. Fields containing commas,
// quotes or newlines are quoted; every other field is written as is.
func ToCSV(roster []employee.Employee, period attendance.Period) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(CSVHeader(period)); err != nil {
		return nil, err
	}

	workingDays := strconv.Itoa(attendanceService.WorkingDays(roster, period))
	for _, emp := range roster {
		row := []string{
			emp.EmpID,
			emp.Name,
			emp.Role,
			strconv.Itoa(attendanceService.TotalPresent(emp, period)),
			workingDays,
		}
		for _, s := range attendanceService.MonthStatuses(emp, period) {
			row = append(row, string(s))
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func dayColumns(period attendance.Period) []string {
	n := period.DaysInMonth()
	cols := make([]string, 0, n)
	for day := 1; day <= n; day++ {
		cols = append(cols, "Day "+strconv.Itoa(day))
	}
	return cols
}
