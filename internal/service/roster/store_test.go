package roster

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/adrs/attendance-sheet/internal/domain/attendance"
	"github.com/adrs/attendance-sheet/internal/domain/employee"
	"github.com/adrs/attendance-sheet/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	args := m.Called(ctx)
	emps, _ := args.Get(0).([]employee.Employee)
	return emps, args.Error(1)
}

func (m *mockAPI) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(employee.Employee), args.Error(1)
}

func (m *mockAPI) UpdateEmployee(ctx context.Context, originalEmpID string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	args := m.Called(ctx, originalEmpID, req)
	return args.Get(0).(employee.Employee), args.Error(1)
}

func (m *mockAPI) DeleteEmployee(ctx context.Context, empID string) error {
	args := m.Called(ctx, empID)
	return args.Error(0)
}

func (m *mockAPI) SetDayStatus(ctx context.Context, req attendance.SetDayStatusRequest) (employee.Employee, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(employee.Employee), args.Error(1)
}

var errBoom = errors.New("connection refused")

func seededStore(t *testing.T, api *mockAPI, emps ...employee.Employee) *Store {
	t.Helper()
	api.On("ListEmployees", mock.Anything).Return(emps, nil).Once()

	s := NewStore(api, NewNotifier(nil))
	s.now = func() time.Time { return time.Date(2024, time.February, 10, 9, 0, 0, 0, time.UTC) }
	require.NoError(t, s.SelectPeriod(attendance.Period{Year: 2024, Month: 2}))
	require.NoError(t, s.Open(context.Background()))
	return s
}

func emp(id, empID, name string) employee.Employee {
	return employee.Employee{ID: id, EmpID: empID, Name: name, Role: "Eng"}
}

func TestStore_LoadFailureKeepsPreviousRoster(t *testing.T) {
	api := &mockAPI{}
	s := seededStore(t, api, emp("1", "E1", "Ann"))

	api.On("ListEmployees", mock.Anything).Return(nil, errBoom).Once()
	err := s.Load(context.Background())

	assert.ErrorIs(t, err, ErrNetworkFailure)
	assert.ErrorIs(t, err, errBoom)
	assert.Len(t, s.Employees(), 1)
	api.AssertExpectations(t)
}

func TestStore_AddRejectsEmptyFieldsWithoutCallingAPI(t *testing.T) {
	api := &mockAPI{}
	s := seededStore(t, api, emp("1", "E1", "Ann"))

	for _, in := range [][3]string{{"", "Bob", "Dev"}, {"E2", "", "Dev"}, {"E2", "Bob", "   "}} {
		_, err := s.Add(context.Background(), in[0], in[1], in[2])

		var verrs validator.ValidationErrors
		assert.True(t, errors.As(err, &verrs), "%v", in)
	}

	assert.Len(t, s.Employees(), 1)
	api.AssertNotCalled(t, "CreateEmployee", mock.Anything, mock.Anything)
}

func TestStore_AddAppendsServerCopy(t *testing.T) {
	api := &mockAPI{}
	s := seededStore(t, api, emp("1", "E1", "Ann"))

	created := emp("2", "E2", "Bob")
	api.On("CreateEmployee", mock.Anything, employee.CreateEmployeeRequest{EmpID: "E2", Name: "Bob", Role: "Dev"}).
		Return(created, nil).Once()

	got, err := s.Add(context.Background(), " E2 ", "Bob ", " Dev")
	require.NoError(t, err)

	assert.Equal(t, created, got)
	assert.Equal(t, []employee.Employee{emp("1", "E1", "Ann"), created}, s.Employees())
	msg, ok := s.Notifier().Current()
	require.True(t, ok)
	assert.Equal(t, MessageSuccess, msg.Type)
	assert.Equal(t, "Employee added", msg.Text)
}

func TestStore_AddFailureFlashesError(t *testing.T) {
	api := &mockAPI{}
	s := seededStore(t, api)

	api.On("CreateEmployee", mock.Anything, mock.Anything).Return(employee.Employee{}, errBoom).Once()

	_, err := s.Add(context.Background(), "E1", "Ann", "Eng")
	assert.ErrorIs(t, err, ErrNetworkFailure)
	assert.Empty(t, s.Employees())

	msg, ok := s.Notifier().Current()
	require.True(t, ok)
	assert.Equal(t, MessageError, msg.Type)
	assert.Equal(t, "Failed to add employee", msg.Text)
}

func TestStore_UpdateDayStatusReplacesOnlyMatchingEntry(t *testing.T) {
	api := &mockAPI{}
	e0, e1, e2 := emp("0", "E0", "Zed"), emp("1", " E1", "Ann"), emp("2", "E2", "Bob")
	s := seededStore(t, api, e0, e1, e2)

	updated := emp("1", "E1", "Ann")
	updated.Attendance = []attendance.Record{
		{Year: 2024, Month: 2, Days: attendance.NewDays(attendance.DayMap{"5": attendance.StatusLate})},
	}
	api.On("SetDayStatus", mock.Anything, attendance.SetDayStatusRequest{
		EmpID: "E1", Year: 2024, Month: 2, Day: 5, Status: "Late",
	}).Return(updated, nil).Once()

	_, err := s.UpdateDayStatus(context.Background(), "E1", 5, "Late")
	require.NoError(t, err)

	got := s.Employees()
	require.Len(t, got, 3)
	assert.Equal(t, e0, got[0])
	assert.Equal(t, updated, got[1])
	assert.Equal(t, e2, got[2])
}

func TestStore_UpdateDayStatusPlaceholderClearsDay(t *testing.T) {
	api := &mockAPI{}
	s := seededStore(t, api, emp("1", "E1", "Ann"))

	api.On("SetDayStatus", mock.Anything, mock.MatchedBy(func(req attendance.SetDayStatusRequest) bool {
		return req.Status == ""
	})).Return(emp("1", "E1", "Ann"), nil).Once()

	_, err := s.UpdateDayStatus(context.Background(), "E1", 1, attendance.StatusSelectUI)
	require.NoError(t, err)
	api.AssertExpectations(t)
}

func TestStore_UpdateDayStatusValidatesBeforeCalling(t *testing.T) {
	api := &mockAPI{}
	s := seededStore(t, api, emp("1", "E1", "Ann"))

	_, err := s.UpdateDayStatus(context.Background(), "E1", 30, "Present")
	assert.Error(t, err)
	_, err = s.UpdateDayStatus(context.Background(), "E1", 3, "Sick")
	assert.Error(t, err)

	api.AssertNotCalled(t, "SetDayStatus", mock.Anything, mock.Anything)
}

func TestStore_UpdateDayStatusFailureLeavesState(t *testing.T) {
	api := &mockAPI{}
	original := emp("1", "E1", "Ann")
	s := seededStore(t, api, original)

	api.On("SetDayStatus", mock.Anything, mock.Anything).Return(employee.Employee{}, errBoom).Once()

	_, err := s.UpdateDayStatus(context.Background(), "E1", 1, "Present")
	assert.ErrorIs(t, err, ErrNetworkFailure)
	assert.Equal(t, []employee.Employee{original}, s.Employees())

	msg, _ := s.Notifier().Current()
	assert.Equal(t, "Failed to update attendance", msg.Text)
}

func TestStore_RenameRekeysByStableID(t *testing.T) {
	api := &mockAPI{}
	s := seededStore(t, api, emp("1", "E1", "Ann"), emp("2", "E2", "Bob"))

	renamed := emp("1", "E9", "Ann B")
	api.On("UpdateEmployee", mock.Anything, "E1", employee.UpdateEmployeeRequest{
		OriginalEmpID: "E1", EmpID: "E9", Name: "Ann B", Role: "Lead",
	}).Return(renamed, nil).Once()

	_, err := s.Rename(context.Background(), "E1", "E9", "Ann B", "Lead")
	require.NoError(t, err)

	got := s.Employees()
	assert.Equal(t, renamed, got[0])
	assert.Equal(t, "E2", got[1].EmpID)
	msg, _ := s.Notifier().Current()
	assert.Equal(t, "Employee updated", msg.Text)
}

func TestStore_RenameWithoutStableIDFallsBackToEmpID(t *testing.T) {
	api := &mockAPI{}
	s := seededStore(t, api, emp("", "E1", "Ann"), emp("", "E2", "Bob"))

	api.On("UpdateEmployee", mock.Anything, "E2", mock.Anything).Return(emp("", "E3", "Bob"), nil).Once()

	_, err := s.Rename(context.Background(), "E2", "E3", "Bob", "Eng")
	require.NoError(t, err)
	assert.Equal(t, "E1", s.Employees()[0].EmpID)
	assert.Equal(t, "E3", s.Employees()[1].EmpID)
}

func TestStore_RenameRejectsEmptyFields(t *testing.T) {
	api := &mockAPI{}
	s := seededStore(t, api, emp("1", "E1", "Ann"))

	_, err := s.Rename(context.Background(), "E1", " ", "Ann", "Eng")
	assert.Error(t, err)
	api.AssertNotCalled(t, "UpdateEmployee", mock.Anything, mock.Anything, mock.Anything)
}

func TestStore_RemoveRequiresConfirmation(t *testing.T) {
	api := &mockAPI{}
	s := seededStore(t, api, emp("1", "E1", "Ann"))

	err := s.Remove(context.Background(), "E1", Confirmed(false))
	assert.ErrorIs(t, err, ErrRemovalNotConfirmed)
	err = s.Remove(context.Background(), "E1", nil)
	assert.ErrorIs(t, err, ErrRemovalNotConfirmed)

	assert.Len(t, s.Employees(), 1)
	api.AssertNotCalled(t, "DeleteEmployee", mock.Anything, mock.Anything)

	var prompt string
	api.On("DeleteEmployee", mock.Anything, "E1").Return(nil).Once()
	err = s.Remove(context.Background(), "E1", ConfirmFunc(func(_ context.Context, p string) bool {
		prompt = p
		return true
	}))
	require.NoError(t, err)

	assert.Empty(t, s.Employees())
	assert.Contains(t, prompt, "remove this employee")
	msg, _ := s.Notifier().Current()
	assert.Equal(t, "Employee removed", msg.Text)
}

func TestStore_RemoveFailureKeepsEmployee(t *testing.T) {
	api := &mockAPI{}
	s := seededStore(t, api, emp("1", "E1", "Ann"))

	api.On("DeleteEmployee", mock.Anything, "E1").Return(errBoom).Once()

	err := s.Remove(context.Background(), "E1", Confirmed(true))
	assert.ErrorIs(t, err, ErrNetworkFailure)
	assert.Len(t, s.Employees(), 1)
}

func TestStore_Filter(t *testing.T) {
	api := &mockAPI{}
	s := seededStore(t, api, emp("1", "ENG-01", "Ann"), emp("2", "OPS-02", "Bob"), emp("3", "OPS-03", "Annika"))

	assert.Len(t, s.Filter(""), 3)
	assert.Len(t, s.Filter("ann"), 2)
	assert.Len(t, s.Filter("ops"), 2)
	assert.Len(t, s.Filter("eng-01"), 1)
	assert.Empty(t, s.Filter("zzz"))
}

func TestStore_SelectPeriod(t *testing.T) {
	api := &mockAPI{}
	s := seededStore(t, api)

	assert.NoError(t, s.SelectPeriod(attendance.Period{Year: 2030, Month: 12}))
	assert.Equal(t, attendance.Period{Year: 2030, Month: 12}, s.Period())

	assert.ErrorIs(t, s.SelectPeriod(attendance.Period{Year: 2023, Month: 1}), attendance.ErrInvalidYear)
	assert.ErrorIs(t, s.SelectPeriod(attendance.Period{Year: 2024, Month: 0}), attendance.ErrInvalidMonth)
	assert.Equal(t, attendance.Period{Year: 2030, Month: 12}, s.Period())
}

func TestStore_SaveAckUsesShortTTL(t *testing.T) {
	api := &mockAPI{}
	s := seededStore(t, api)
	now := time.Date(2024, time.February, 10, 9, 0, 0, 0, time.UTC)
	s.notifier.now = func() time.Time { return now }

	msg := s.SaveAck()

	assert.Equal(t, now.Add(SaveAckTTL), msg.ExpiresAt)
	assert.Contains(t, msg.Text, "auto-saved")
}

func TestStore_CloseClearsState(t *testing.T) {
	api := &mockAPI{}
	s := seededStore(t, api, emp("1", "E1", "Ann"))
	s.SaveAck()

	s.Close()

	assert.Empty(t, s.Employees())
	_, ok := s.Notifier().Current()
	assert.False(t, ok)
}
