package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/adrs/attendance-sheet/internal/domain/report"
	"github.com/adrs/attendance-sheet/internal/handler/http/response"
	"github.com/adrs/attendance-sheet/internal/service/roster"
)

type ReportHandler interface {
	// CSV download of the full roster
	ExportCSV(w http.ResponseWriter, r *http.Request)

	// XLSX download of the full roster
	ExportXLSX(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
	store         *roster.Store
}

func NewReportHandler(reportService report.ReportService, store *roster.Store) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
		store:         store,
	}
}

// ExportCSV handles GET /sheet/export.csv
func (h *reportHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, report.FormatCSV)
}

// ExportXLSX handles GET /sheet/export.xlsx
func (h *reportHandlerImpl) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, report.FormatXLSX)
}

// export writes the selected period unless ?month= and ?year= name another one
func (h *reportHandlerImpl) export(w http.ResponseWriter, r *http.Request, format report.Format) {
	all, period := h.store.Snapshot()

	if monthStr := r.URL.Query().Get("month"); monthStr != "" {
		month, err := strconv.Atoi(monthStr)
		if err != nil {
			response.BadRequest(w, "invalid month parameter", nil)
			return
		}
		period.Month = month
	}
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			response.BadRequest(w, "invalid year parameter", nil)
			return
		}
		period.Year = year
	}
	file, err := h.reportService.Export(all, period, format)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(file.Content)
}
