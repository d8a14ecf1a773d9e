package employee

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peopledesk/hr-admin-backend/internal/domain/attendance"
	"github.com/peopledesk/hr-admin-backend/internal/domain/employee"
	"github.com/peopledesk/hr-admin-backend/internal/domain/leave"
	"github.com/peopledesk/hr-admin-backend/internal/domain/payroll"
)

type fakeEmployeeRepo struct {
	byID map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if emp, ok := f.byID[id]; ok {
		return emp, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) ListActive(ctx context.Context, department string) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error { return nil }

func (f *fakeEmployeeRepo) SetStatus(ctx context.Context, id string, status employee.Status) error {
	return nil
}

func (f *fakeEmployeeRepo) Departments(ctx context.Context) ([]string, error) { return nil, nil }

type fakeAttendanceRepo struct {
	recentLimit int
}

func (f *fakeAttendanceRepo) Upsert(ctx context.Context, att attendance.Attendance) (attendance.Attendance, bool, error) {
	return att, true, nil
}

func (f *fakeAttendanceRepo) CreateIfAbsent(ctx context.Context, att attendance.Attendance) (bool, error) {
	return false, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	return nil, 0, nil
}

func (f *fakeAttendanceRepo) ListRecentByEmployee(ctx context.Context, employeeID string, limit int) ([]attendance.Attendance, error) {
	f.recentLimit = limit
	return nil, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, att attendance.Attendance) error {
	return nil
}

func (f *fakeAttendanceRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeLeaveRepo struct {
	recentLimit int
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (f *fakeLeaveRepo) GetByIDForUpdate(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (f *fakeLeaveRepo) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	return nil, 0, nil
}

func (f *fakeLeaveRepo) ListRecentByEmployee(ctx context.Context, employeeID string, limit int) ([]leave.LeaveRequest, error) {
	f.recentLimit = limit
	return nil, nil
}

func (f *fakeLeaveRepo) UpdateDecision(ctx context.Context, req leave.LeaveRequest) error {
	return nil
}

type fakePayrollRepo struct{}

func (f *fakePayrollRepo) Create(ctx context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	return p, nil
}

func (f *fakePayrollRepo) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	return payroll.Payroll{}, payroll.ErrPayrollNotFound
}

func (f *fakePayrollRepo) GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (*payroll.Payroll, error) {
	return nil, nil
}

func (f *fakePayrollRepo) GetLatestByEmployee(ctx context.Context, employeeID string) (*payroll.Payroll, error) {
	return nil, nil
}

func (f *fakePayrollRepo) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.Payroll, int64, error) {
	return nil, 0, nil
}

func (f *fakePayrollRepo) Update(ctx context.Context, p payroll.Payroll) error { return nil }

func TestGetEmployee_RecentActivityLimits(t *testing.T) {
	attRepo := &fakeAttendanceRepo{}
	leaveRepo := &fakeLeaveRepo{}
	code := "EMP001"
	empRepo := &fakeEmployeeRepo{byID: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", EmployeeCode: &code, FirstName: "Asha", LastName: "Rao"},
	}}
	svc := NewEmployeeService(nil, empRepo, nil, attRepo, leaveRepo, &fakePayrollRepo{})

	detail, err := svc.GetEmployee(context.Background(), "emp-1")
	require.NoError(t, err)

	assert.Equal(t, "emp-1", detail.Employee.ID)
	assert.Equal(t, recentAttendanceLimit, attRepo.recentLimit)
	assert.Equal(t, recentLeaveLimit, leaveRepo.recentLimit)
}

func TestGetEmployee_Unknown(t *testing.T) {
	svc := NewEmployeeService(nil, &fakeEmployeeRepo{}, nil, &fakeAttendanceRepo{}, &fakeLeaveRepo{}, &fakePayrollRepo{})

	_, err := svc.GetEmployee(context.Background(), "ghost")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
