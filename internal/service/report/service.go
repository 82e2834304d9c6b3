package report

import (
	"fmt"
	"log/slog"

	"github.com/adrs/attendance-sheet/internal/domain/attendance"
	"github.com/adrs/attendance-sheet/internal/domain/employee"
	"github.com/adrs/attendance-sheet/internal/domain/report"
	"github.com/dustin/go-humanize"
)

type ReportServiceImpl struct{}

func NewReportService() report.ReportService {
	return &ReportServiceImpl{}
}

// Export implements report.ReportService
func (s *ReportServiceImpl) Export(roster []employee.Employee, period attendance.Period, format report.Format) (report.ExportFile, error) {
	if err := period.Validate(); err != nil {
		return report.ExportFile{}, err
	}

	var (
		content []byte
		err     error
	)
	switch format {
	case report.FormatCSV:
		content, err = ToCSV(roster, period)
	case report.FormatXLSX:
		content, err = ToSpreadsheet(roster, period)
	default:
		return report.ExportFile{}, report.ErrUnsupportedFormat
	}
	if err != nil {
		return report.ExportFile{}, fmt.Errorf("%w: %w", report.ErrReportGenerationFailed, err)
	}

	file := report.ExportFile{
		Name:        report.FileName(period, format),
		ContentType: format.ContentType(),
		Content:     content,
	}

	slog.Info("Attendance exported",
		slog.String("file", file.Name),
		slog.Int("employees", len(roster)),
		slog.String("size", humanize.Bytes(uint64(len(content)))),
	)
	return file, nil
}
