package payroll

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peopledesk/hr-admin-backend/internal/domain/employee"
	"github.com/peopledesk/hr-admin-backend/internal/domain/notification"
	"github.com/peopledesk/hr-admin-backend/internal/domain/payroll"
)

type fakePayrollRepo struct {
	byID      map[string]payroll.Payroll
	createErr error
}

func (f *fakePayrollRepo) Create(ctx context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	if f.createErr != nil {
		return payroll.Payroll{}, f.createErr
	}
	p.ID = fmt.Sprintf("pr-%d", len(f.byID)+1)
	f.byID[p.ID] = p
	return p, nil
}

func (f *fakePayrollRepo) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	p, ok := f.byID[id]
	if !ok {
		return payroll.Payroll{}, payroll.ErrPayrollNotFound
	}
	return p, nil
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

func (f *fakePayrollRepo) Update(ctx context.Context, p payroll.Payroll) error {
	f.byID[p.ID] = p
	return nil
}

type fakeEmployeeRepo struct {
	byID map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.byID[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
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

type fakeNotificationRepo struct {
	created []notification.Notification
}

func (f *fakeNotificationRepo) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	f.created = append(f.created, n)
	return n, nil
}

func (f *fakeNotificationRepo) ListByEmployee(ctx context.Context, employeeID string, unreadOnly bool, page, limit int) ([]notification.Notification, int64, error) {
	return nil, 0, nil
}

func (f *fakeNotificationRepo) UnreadCount(ctx context.Context, employeeID string) (int64, error) {
	return 0, nil
}

func (f *fakeNotificationRepo) MarkAsRead(ctx context.Context, ids []string, employeeID string) error {
	return nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCreate_ComputesTotalsAndNotifies(t *testing.T) {
	repo := &fakePayrollRepo{byID: map[string]payroll.Payroll{}}
	empRepo := &fakeEmployeeRepo{byID: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", FirstName: "Jane", LastName: "Doe", Status: employee.StatusActive},
	}}
	notifRepo := &fakeNotificationRepo{}
	svc := NewPayrollService(nil, repo, empRepo, notifRepo)

	result, err := svc.Create(context.Background(), payroll.CreatePayrollRequest{
		EmployeeID:  "emp-1",
		Month:       6,
		Year:        2025,
		BasicSalary: dec("60000"),
		HRA:         dec("24000"),
		PF:          dec("7200"),
		Tax:         dec("9000"),
	})
	require.NoError(t, err)

	assert.True(t, result.GrossSalary.Equal(dec("84000")), "gross = %s", result.GrossSalary)
	assert.True(t, result.NetSalary.Equal(dec("67800")), "net = %s", result.NetSalary)
	assert.Equal(t, string(payroll.StatusProcessed), result.Status)

	require.Len(t, notifRepo.created, 1)
	assert.Equal(t, "emp-1", notifRepo.created[0].EmployeeID)
	assert.Equal(t, "Payroll Processed", notifRepo.created[0].Title)
	assert.Contains(t, notifRepo.created[0].Message, "June 2025")
	assert.Contains(t, notifRepo.created[0].Message, "67800.00")
	require.NotNil(t, notifRepo.created[0].Link)
	assert.Equal(t, notification.LinkPayroll, *notifRepo.created[0].Link)
}

func TestCreate_DuplicatePeriod(t *testing.T) {
	repo := &fakePayrollRepo{
		byID:      map[string]payroll.Payroll{},
		createErr: fmt.Errorf("failed to create payroll: %w", &pgconn.PgError{Code: "23505"}),
	}
	empRepo := &fakeEmployeeRepo{byID: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", Status: employee.StatusActive},
	}}
	notifRepo := &fakeNotificationRepo{}
	svc := NewPayrollService(nil, repo, empRepo, notifRepo)

	_, err := svc.Create(context.Background(), payroll.CreatePayrollRequest{
		EmployeeID:  "emp-1",
		Month:       6,
		Year:        2025,
		BasicSalary: dec("60000"),
	})
	assert.ErrorIs(t, err, payroll.ErrPayrollAlreadyExists)
	assert.Empty(t, notifRepo.created)
}

func TestCreate_UnknownEmployee(t *testing.T) {
	svc := NewPayrollService(nil,
		&fakePayrollRepo{byID: map[string]payroll.Payroll{}},
		&fakeEmployeeRepo{byID: map[string]employee.Employee{}},
		&fakeNotificationRepo{})

	_, err := svc.Create(context.Background(), payroll.CreatePayrollRequest{
		EmployeeID:  "missing",
		Month:       6,
		Year:        2025,
		BasicSalary: dec("60000"),
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestUpdate_RecomputesTotals(t *testing.T) {
	repo := &fakePayrollRepo{byID: map[string]payroll.Payroll{
		"pr-1": {
			ID:          "pr-1",
			EmployeeID:  "emp-1",
			Month:       3,
			Year:        2025,
			BasicSalary: dec("50000"),
			GrossSalary: dec("50000"),
			NetSalary:   dec("50000"),
			Status:      payroll.StatusProcessed,
		},
	}}
	svc := NewPayrollService(nil, repo, nil, nil)

	result, err := svc.Update(context.Background(), payroll.UpdatePayrollRequest{
		ID:          "pr-1",
		BasicSalary: dec("50000"),
		HRA:         dec("20000"),
		Tax:         dec("7000"),
	})
	require.NoError(t, err)

	assert.True(t, result.GrossSalary.Equal(dec("70000")), "gross = %s", result.GrossSalary)
	assert.True(t, result.NetSalary.Equal(dec("63000")), "net = %s", result.NetSalary)

	stored := repo.byID["pr-1"]
	assert.True(t, stored.NetSalary.Equal(dec("63000")))
}

func TestUpdate_RejectsNegativeComponent(t *testing.T) {
	repo := &fakePayrollRepo{byID: map[string]payroll.Payroll{}}
	svc := NewPayrollService(nil, repo, nil, nil)

	_, err := svc.Update(context.Background(), payroll.UpdatePayrollRequest{
		ID: "pr-1",
		PF: dec("-1"),
	})
	assert.Error(t, err)
}

func TestUpdate_UnknownRecord(t *testing.T) {
	repo := &fakePayrollRepo{byID: map[string]payroll.Payroll{}}
	svc := NewPayrollService(nil, repo, nil, nil)

	_, err := svc.Update(context.Background(), payroll.UpdatePayrollRequest{ID: "missing"})
	assert.ErrorIs(t, err, payroll.ErrPayrollNotFound)
}

func TestList_RejectsInvalidPeriod(t *testing.T) {
	svc := NewPayrollService(nil, &fakePayrollRepo{byID: map[string]payroll.Payroll{}}, nil, nil)

	_, err := svc.List(context.Background(), payroll.PayrollFilter{Month: 0, Year: 2025})
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)

	_, err = svc.List(context.Background(), payroll.PayrollFilter{Month: 3, Year: 1990})
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
}
