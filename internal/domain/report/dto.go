package report

import (
	"fmt"

	"github.com/adrs/attendance-sheet/internal/domain/attendance"
)

// Format is an export file format
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat accepts csv or xlsx
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatXLSX:
		return Format(s), nil
	}
	return "", ErrUnsupportedFormat
}

func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/octet-stream"
}

// FileName returns attendance_{month}_{year}.{ext}
func FileName(period attendance.Period, f Format) string {
	return fmt.Sprintf("attendance_%d_%d.%s", period.Month, period.Year, f)
}

// ExportFile is a generated download
type ExportFile struct {
	Name        string
	ContentType string
	Content     []byte
}
