package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/adrs/attendance-sheet/internal/domain/attendance"
	"github.com/adrs/attendance-sheet/internal/domain/employee"
	"github.com/adrs/attendance-sheet/internal/handler/http/response"
	"github.com/adrs/attendance-sheet/internal/pkg/sse"
	attendanceservice "github.com/adrs/attendance-sheet/internal/service/attendance"
	"github.com/adrs/attendance-sheet/internal/service/roster"
	"github.com/go-chi/chi/v5"
)

const keepaliveInterval = 30 * time.Second

// SheetHandler serves the attendance sheet to the browser front-end
type SheetHandler interface {
	// Grid for the selected period, filtered by ?q=
	GetSheet(w http.ResponseWriter, r *http.Request)
	SelectPeriod(w http.ResponseWriter, r *http.Request)
	Reload(w http.ResponseWriter, r *http.Request)

	// Roster mutations
	AddEmployee(w http.ResponseWriter, r *http.Request)
	RenameEmployee(w http.ResponseWriter, r *http.Request)
	RemoveEmployee(w http.ResponseWriter, r *http.Request)
	UpdateDayStatus(w http.ResponseWriter, r *http.Request)
	Save(w http.ResponseWriter, r *http.Request)

	// Flash messages
	GetMessage(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

type sheetHandlerImpl struct {
	store *roster.Store
	hub   *sse.Hub
	now   func() time.Time
}

func NewSheetHandler(store *roster.Store, hub *sse.Hub) SheetHandler {
	return &sheetHandlerImpl{
		store: store,
		hub:   hub,
		now:   time.Now,
	}
}

type dayStatusRequest struct {
	Status string `json:"status"`
}

// GetSheet handles GET /sheet
func (h *sheetHandlerImpl) GetSheet(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	all, period := h.store.Snapshot()
	visible := h.store.Filter(query)
	grid := attendanceservice.BuildGrid(all, visible, period, query, h.now())

	response.SuccessWithMeta(w, grid, &response.Meta{Total: len(grid.Rows)})
}

// SelectPeriod handles PUT /sheet/period
func (h *sheetHandlerImpl) SelectPeriod(w http.ResponseWriter, r *http.Request) {
	var period attendance.Period
	if err := json.NewDecoder(r.Body).Decode(&period); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.store.SelectPeriod(period); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, h.store.Period())
}

// Reload handles POST /sheet/reload
func (h *sheetHandlerImpl) Reload(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Load(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, nil, &response.Meta{Total: len(h.store.Employees())})
}

// AddEmployee handles POST /sheet/employees
func (h *sheetHandlerImpl) AddEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.store.Add(r.Context(), req.EmpID, req.Name, req.Role)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee added", created)
}

// RenameEmployee handles PUT /sheet/employees/{empId}
func (h *sheetHandlerImpl) RenameEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	updated, err := h.store.Rename(r.Context(), empIDParam(r), req.EmpID, req.Name, req.Role)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated", updated)
}

// RemoveEmployee handles DELETE /sheet/employees/{empId}?confirm=true
func (h *sheetHandlerImpl) RemoveEmployee(w http.ResponseWriter, r *http.Request) {
	confirmed, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))

	if err := h.store.Remove(r.Context(), empIDParam(r), roster.Confirmed(confirmed)); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee removed", nil)
}

// UpdateDayStatus handles PUT /sheet/employees/{empId}/days/{day}
func (h *sheetHandlerImpl) UpdateDayStatus(w http.ResponseWriter, r *http.Request) {
	day, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil {
		response.BadRequest(w, "invalid day parameter", nil)
		return
	}

	var req dayStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	updated, err := h.store.UpdateDayStatus(r.Context(), empIDParam(r), day, req.Status)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, updated)
}

// Save handles POST /sheet/save. Changes are persisted as they happen, so
// this only acknowledges.
func (h *sheetHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.store.SaveAck())
}

// GetMessage handles GET /sheet/message
func (h *sheetHandlerImpl) GetMessage(w http.ResponseWriter, r *http.Request) {
	msg, ok := h.store.Notifier().Current()
	if !ok {
		response.Success(w, nil)
		return
	}
	response.Success(w, msg)
}

// Stream handles SSE connection for flash messages
func (h *sheetHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	// Check if streaming is supported
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.hub.Subscribe()
	defer cleanup()

	fmt.Fprint(w, "event: connected\ndata: {\"status\":\"connected\"}\n\n")
	if msg, ok := h.store.Notifier().Current(); ok {
		writeEvent(w, sse.Event{Name: roster.EventMessage, Data: msg})
	}
	flusher.Flush()

	keepalive := time.NewTicker(keepaliveInterval)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			writeEvent(w, event)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", h.now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}

func writeEvent(w http.ResponseWriter, event sse.Event) {
	data, err := json.Marshal(event.Data)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Name, data)
}
