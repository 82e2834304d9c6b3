package employeeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/adrs/attendance-sheet/internal/domain/attendance"
	"github.com/adrs/attendance-sheet/internal/domain/employee"
)

const maxErrorBody = 4 << 10

// ErrInvalidBaseURL is returned by NewClient for a base URL that is not http(s)
var ErrInvalidBaseURL = errors.New("employees API base URL must be an absolute http or https URL")

// APIError is a non-success response from the employees API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("employees API error [%d]", e.StatusCode)
	}
	return fmt.Sprintf("employees API error [%d]: %s", e.StatusCode, e.Message)
}

// Client talks JSON to the employees API
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a client for baseURL. A zero timeout means requests
// wait until their context is done.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, ErrInvalidBaseURL
	}

	return &Client{
		baseURL:    strings.TrimRight(u.String(), "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     slog.With(slog.String("component", "employeeapi"), slog.String("base_url", u.Scheme+"://"+u.Host)),
	}, nil
}

// ListEmployees fetches the full roster
func (c *Client) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	var employees []employee.Employee
	if err := c.do(ctx, http.MethodGet, "/api/employees", nil, &employees); err != nil {
		return nil, err
	}
	if employees == nil {
		employees = []employee.Employee{}
	}
	return employees, nil
}

// CreateEmployee creates an employee and returns the server's copy
func (c *Client) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	var created employee.Employee
	err := c.do(ctx, http.MethodPost, "/api/employees", req, &created)
	return created, err
}

// UpdateEmployee updates the employee currently known as originalEmpID
func (c *Client) UpdateEmployee(ctx context.Context, originalEmpID string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	var updated employee.Employee
	err := c.do(ctx, http.MethodPut, employeePath(originalEmpID), req, &updated)
	return updated, err
}

// DeleteEmployee deletes the employee with empID
func (c *Client) DeleteEmployee(ctx context.Context, empID string) error {
	return c.do(ctx, http.MethodDelete, employeePath(empID), nil, nil)
}

// SetDayStatus writes one day and returns the updated employee
func (c *Client) SetDayStatus(ctx context.Context, req attendance.SetDayStatusRequest) (employee.Employee, error) {
	var updated employee.Employee
	err := c.do(ctx, http.MethodPut, employeePath(req.EmpID)+"/attendance", req, &updated)
	return updated, err
}

func employeePath(empID string) string {
	return "/api/employees/" + url.PathEscape(empID)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := c.logger.With(slog.String("method", method), slog.String("path", path))
	log.Debug("Calling employees API")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("network error calling %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn("Employees API returned error status", slog.Int("status", resp.StatusCode))
		return &APIError{StatusCode: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}

// readErrorMessage pulls error.message out of the standard error envelope,
// falling back to the raw body
func readErrorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var envelope struct {
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &envelope) == nil {
		if envelope.Error != nil && envelope.Error.Message != "" {
			return envelope.Error.Message
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}
	return strings.TrimSpace(string(raw))
}
