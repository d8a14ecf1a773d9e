package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/peopledesk/hr-admin-backend/internal/domain/employee"
	"github.com/peopledesk/hr-admin-backend/internal/domain/notification"
	"github.com/peopledesk/hr-admin-backend/internal/domain/payroll"
	"github.com/peopledesk/hr-admin-backend/internal/pkg/database"
	"github.com/peopledesk/hr-admin-backend/internal/repository/postgresql"
)

type payrollService struct {
	db               *database.DB
	payrollRepo      payroll.PayrollRepository
	employeeRepo     employee.EmployeeRepository
	notificationRepo notification.Repository
}

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Create implements payroll.PayrollService. The insert and the employee
// notification commit together; the unique (employee, month, year)
// constraint decides duplicate refusal, not a prior read.
func (s *payrollService) Create(ctx context.Context, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return payroll.PayrollResponse{}, err
	}

	p := payroll.Payroll{
		EmployeeID:       req.EmployeeID,
		Month:            req.Month,
		Year:             req.Year,
		BasicSalary:      req.BasicSalary,
		HRA:              req.HRA,
		DA:               req.DA,
		TA:               req.TA,
		MedicalAllowance: req.MedicalAllowance,
		OtherAllowances:  req.OtherAllowances,
		PF:               req.PF,
		Tax:              req.Tax,
		Insurance:        req.Insurance,
		OtherDeductions:  req.OtherDeductions,
		Status:           payroll.StatusProcessed,
	}
	p.CalculateTotals()

	var created payroll.Payroll
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		var err error
		created, err = s.payrollRepo.Create(txCtx, p)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return payroll.ErrPayrollAlreadyExists
			}
			return err
		}

		message := fmt.Sprintf("Your payroll for %s %d has been processed. Net salary: %s",
			monthNames[created.Month-1], created.Year, created.NetSalary.StringFixed(2))
		_, err = s.notificationRepo.Create(txCtx, notification.Notification{
			EmployeeID: created.EmployeeID,
			Title:      "Payroll Processed",
			Message:    message,
			Type:       notification.TypeInfo,
			Link:       notification.LinkTo(notification.LinkPayroll),
		})
		return err
	})
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	slog.Info("Payroll processed", "employee_id", created.EmployeeID, "month", created.Month, "year", created.Year)

	return toResponse(created), nil
}

// Update implements payroll.PayrollService.
func (s *payrollService) Update(ctx context.Context, req payroll.UpdatePayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	p, err := s.payrollRepo.GetByID(ctx, req.ID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	p.BasicSalary = req.BasicSalary
	p.HRA = req.HRA
	p.DA = req.DA
	p.TA = req.TA
	p.MedicalAllowance = req.MedicalAllowance
	p.OtherAllowances = req.OtherAllowances
	p.PF = req.PF
	p.Tax = req.Tax
	p.Insurance = req.Insurance
	p.OtherDeductions = req.OtherDeductions
	p.CalculateTotals()

	if err := s.payrollRepo.Update(ctx, p); err != nil {
		return payroll.PayrollResponse{}, err
	}

	return toResponse(p), nil
}

// Get implements payroll.PayrollService.
func (s *payrollService) Get(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	p, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return toResponse(p), nil
}

// List implements payroll.PayrollService.
func (s *payrollService) List(ctx context.Context, filter payroll.PayrollFilter) (payroll.ListPayrollResponse, error) {
	if filter.Month < 1 || filter.Month > 12 || filter.Year < 2020 {
		return payroll.ListPayrollResponse{}, payroll.ErrInvalidPeriod
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	payrolls, total, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return payroll.ListPayrollResponse{}, err
	}

	responses := make([]payroll.PayrollResponse, 0, len(payrolls))
	for _, p := range payrolls {
		responses = append(responses, toResponse(p))
	}

	return payroll.ListPayrollResponse{
		Payrolls: responses,
		Total:    total,
		Page:     filter.Page,
		Limit:    filter.Limit,
	}, nil
}

func toResponse(p payroll.Payroll) payroll.PayrollResponse {
	return payroll.PayrollResponse{
		ID:               p.ID,
		EmployeeID:       p.EmployeeID,
		EmployeeName:     p.EmployeeName,
		Month:            p.Month,
		Year:             p.Year,
		BasicSalary:      p.BasicSalary,
		HRA:              p.HRA,
		DA:               p.DA,
		TA:               p.TA,
		MedicalAllowance: p.MedicalAllowance,
		OtherAllowances:  p.OtherAllowances,
		PF:               p.PF,
		Tax:              p.Tax,
		Insurance:        p.Insurance,
		OtherDeductions:  p.OtherDeductions,
		GrossSalary:      p.GrossSalary,
		NetSalary:        p.NetSalary,
		Status:           string(p.Status),
	}
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	notificationRepo notification.Repository,
) payroll.PayrollService {
	return &payrollService{
		db:               db,
		payrollRepo:      payrollRepo,
		employeeRepo:     employeeRepo,
		notificationRepo: notificationRepo,
	}
}
