package employee

import (
	"context"
	"log/slog"
	"time"

	"github.com/peopledesk/hr-admin-backend/internal/domain/attendance"
	"github.com/peopledesk/hr-admin-backend/internal/domain/employee"
	"github.com/peopledesk/hr-admin-backend/internal/domain/leave"
	"github.com/peopledesk/hr-admin-backend/internal/domain/payroll"
	"github.com/peopledesk/hr-admin-backend/internal/domain/user"
	"github.com/peopledesk/hr-admin-backend/internal/pkg/database"
	"github.com/peopledesk/hr-admin-backend/internal/repository/postgresql"
)

const (
	recentAttendanceLimit = 10
	recentLeaveLimit      = 5
)

type employeeService struct {
	db             *database.DB
	employeeRepo   employee.EmployeeRepository
	userRepo       user.UserRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRequestRepository
	payrollRepo    payroll.PayrollRepository
}

// ListEmployees implements employee.EmployeeService.
func (s *employeeService) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeesResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toResponse(emp))
	}

	return employee.ListEmployeesResponse{
		Employees: responses,
		Total:     total,
		Page:      filter.Page,
		Limit:     filter.Limit,
	}, nil
}

// GetEmployee implements employee.EmployeeService. The detail view joins
// the employee's recent attendance, recent leave requests and latest
// payroll period.
func (s *employeeService) GetEmployee(ctx context.Context, id string) (employee.EmployeeDetailResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeDetailResponse{}, err
	}

	detail := employee.EmployeeDetailResponse{Employee: toResponse(emp)}

	attendances, err := s.attendanceRepo.ListRecentByEmployee(ctx, id, recentAttendanceLimit)
	if err != nil {
		return employee.EmployeeDetailResponse{}, err
	}
	for _, att := range attendances {
		detail.RecentAttendance = append(detail.RecentAttendance, employee.RecentAttendanceRow{
			Date:     att.Date.Format("2006-01-02"),
			Status:   string(att.Status),
			CheckIn:  attendance.FormatClock(att.CheckIn),
			CheckOut: attendance.FormatClock(att.CheckOut),
			Remarks:  att.Remarks,
		})
	}

	leaves, err := s.leaveRepo.ListRecentByEmployee(ctx, id, recentLeaveLimit)
	if err != nil {
		return employee.EmployeeDetailResponse{}, err
	}
	for _, lr := range leaves {
		detail.RecentLeaves = append(detail.RecentLeaves, employee.RecentLeaveRow{
			ID:        lr.ID,
			LeaveType: lr.LeaveType,
			StartDate: lr.StartDate.Format("2006-01-02"),
			EndDate:   lr.EndDate.Format("2006-01-02"),
			Days:      lr.Days,
			Status:    string(lr.Status),
		})
	}

	latest, err := s.payrollRepo.GetLatestByEmployee(ctx, id)
	if err != nil {
		return employee.EmployeeDetailResponse{}, err
	}
	if latest != nil {
		detail.LatestPayroll = &employee.LatestPayrollRow{
			Month:       latest.Month,
			Year:        latest.Year,
			GrossSalary: latest.GrossSalary.StringFixed(2),
			NetSalary:   latest.NetSalary.StringFixed(2),
			Status:      string(latest.Status),
		}
	}

	return detail, nil
}

// UpdateEmployee implements employee.EmployeeService. A role change and a
// status flip also touch the users table; the writes share a transaction.
func (s *employeeService) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp.FirstName = req.FirstName
	emp.LastName = req.LastName
	emp.Phone = req.Phone
	emp.Address = req.Address
	emp.Department = req.Department
	emp.Designation = req.Designation
	emp.EmploymentType = req.EmploymentType
	emp.Gender = req.Gender
	emp.Status = employee.Status(req.Status)
	emp.DateOfBirth = parseDate(req.DateOfBirth)
	emp.DateOfJoining = parseDate(req.DateOfJoining)

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.employeeRepo.Update(txCtx, emp); err != nil {
			return err
		}
		if req.Role != nil {
			if err := s.userRepo.UpdateRole(txCtx, emp.UserID, user.Role(*req.Role)); err != nil {
				return err
			}
		}
		return s.userRepo.UpdateActive(txCtx, emp.UserID, emp.Status == employee.StatusActive)
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(emp), nil
}

// DeactivateEmployee implements employee.EmployeeService. Deactivation is
// a soft status flip on both the employee and the linked user account;
// records are never deleted.
func (s *employeeService) DeactivateEmployee(ctx context.Context, id string) error {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.employeeRepo.SetStatus(txCtx, emp.ID, employee.StatusInactive); err != nil {
			return err
		}
		return s.userRepo.UpdateActive(txCtx, emp.UserID, false)
	})
	if err != nil {
		return err
	}

	slog.Info("Employee deactivated", "employee_id", emp.ID)
	return nil
}

// Departments implements employee.EmployeeService.
func (s *employeeService) Departments(ctx context.Context) ([]string, error) {
	return s.employeeRepo.Departments(ctx)
}

func parseDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:             emp.ID,
		UserID:         emp.UserID,
		EmployeeCode:   emp.EmployeeCode,
		Email:          emp.Email,
		FirstName:      emp.FirstName,
		LastName:       emp.LastName,
		FullName:       emp.FullName(),
		Phone:          emp.Phone,
		Address:        emp.Address,
		Department:     emp.Department,
		Designation:    emp.Designation,
		EmploymentType: emp.EmploymentType,
		Gender:         emp.Gender,
		Status:         string(emp.Status),
		DateOfBirth:    formatDate(emp.DateOfBirth),
		DateOfJoining:  formatDate(emp.DateOfJoining),
	}
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	userRepo user.UserRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRequestRepository,
	payrollRepo payroll.PayrollRepository,
) employee.EmployeeService {
	return &employeeService{
		db:             db,
		employeeRepo:   employeeRepo,
		userRepo:       userRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		payrollRepo:    payrollRepo,
	}
}
