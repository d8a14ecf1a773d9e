package employee

import (
	"github.com/peopledesk/hr-admin-backend/internal/pkg/validator"
)

var employmentTypes = []string{"Full-time", "Part-time", "Contract", "Intern"}

type EmployeeFilter struct {
	Search     string
	Department string
	Status     string
	Page       int
	Limit      int
}

type UpdateEmployeeRequest struct {
	ID             string  `json:"-"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Phone          *string `json:"phone,omitempty"`
	Address        *string `json:"address,omitempty"`
	Department     string  `json:"department"`
	Designation    string  `json:"designation"`
	EmploymentType *string `json:"employment_type,omitempty"`
	Gender         *string `json:"gender,omitempty"`
	Status         string  `json:"status"`
	DateOfBirth    *string `json:"date_of_birth,omitempty"`
	DateOfJoining  *string `json:"date_of_joining,omitempty"`
	Role           *string `json:"role,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "is required"})
	}
	if r.Status != string(StatusActive) && r.Status != string(StatusInactive) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'Active' or 'Inactive'"})
	}
	if r.EmploymentType != nil && !validator.IsInSlice(*r.EmploymentType, employmentTypes) {
		errs = append(errs, validator.ValidationError{Field: "employment_type", Message: "is not a valid employment type"})
	}
	if r.DateOfBirth != nil {
		if _, ok := validator.IsValidDate(*r.DateOfBirth); !ok {
			errs = append(errs, validator.ValidationError{Field: "date_of_birth", Message: "must be in YYYY-MM-DD format"})
		}
	}
	if r.DateOfJoining != nil {
		if _, ok := validator.IsValidDate(*r.DateOfJoining); !ok {
			errs = append(errs, validator.ValidationError{Field: "date_of_joining", Message: "must be in YYYY-MM-DD format"})
		}
	}
	if r.Role != nil && !validator.IsInSlice(*r.Role, []string{"Admin", "HR", "Employee"}) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be 'Admin', 'HR' or 'Employee'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	EmployeeCode   *string `json:"employee_code,omitempty"`
	Email          *string `json:"email,omitempty"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	FullName       string  `json:"full_name"`
	Phone          *string `json:"phone,omitempty"`
	Address        *string `json:"address,omitempty"`
	Department     string  `json:"department"`
	Designation    string  `json:"designation"`
	EmploymentType *string `json:"employment_type,omitempty"`
	Gender         *string `json:"gender,omitempty"`
	Status         string  `json:"status"`
	DateOfBirth    *string `json:"date_of_birth,omitempty"`
	DateOfJoining  *string `json:"date_of_joining,omitempty"`
}

type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	Limit     int                `json:"limit"`
}

// RecentAttendanceRow is a trimmed attendance record for the detail view.
type RecentAttendanceRow struct {
	Date     string  `json:"date"`
	Status   string  `json:"status"`
	CheckIn  *string `json:"check_in,omitempty"`
	CheckOut *string `json:"check_out,omitempty"`
	Remarks  *string `json:"remarks,omitempty"`
}

// RecentLeaveRow is a trimmed leave request for the detail view.
type RecentLeaveRow struct {
	ID        string `json:"id"`
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Days      int    `json:"days"`
	Status    string `json:"status"`
}

// LatestPayrollRow is the most recent payroll period for the detail view.
type LatestPayrollRow struct {
	Month       int    `json:"month"`
	Year        int    `json:"year"`
	GrossSalary string `json:"gross_salary"`
	NetSalary   string `json:"net_salary"`
	Status      string `json:"status"`
}

type EmployeeDetailResponse struct {
	Employee         EmployeeResponse      `json:"employee"`
	RecentAttendance []RecentAttendanceRow `json:"recent_attendance"`
	RecentLeaves     []RecentLeaveRow      `json:"recent_leaves"`
	LatestPayroll    *LatestPayrollRow     `json:"latest_payroll,omitempty"`
}
