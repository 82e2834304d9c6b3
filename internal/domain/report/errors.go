package report

import "errors"

var (
	ErrUnsupportedFormat      = errors.New("export format must be csv or xlsx")
	ErrReportGenerationFailed = errors.New("failed to generate report")
)
