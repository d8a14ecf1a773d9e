package report

import (
	"time"

	"github.com/peopledesk/hr-admin-backend/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// MONTHLY ATTENDANCE REPORT
// ========================================

type AttendanceReportRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *AttendanceReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	currentYear := time.Now().Year()
	if r.Year < 2020 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "is out of range"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceReport struct {
	Month int                  `json:"month"`
	Year  int                  `json:"year"`
	Rows  []AttendanceReportRow `json:"rows"`
}

type AttendanceReportRow struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Department   string `json:"department"`
	Present      int    `json:"present"`
	Absent       int    `json:"absent"`
	HalfDay      int    `json:"half_day"`
	Leave        int    `json:"leave"`
	Total        int    `json:"total"`
}

// ========================================
// YEARLY LEAVE REPORT
// ========================================

type LeaveReportRequest struct {
	Year int `json:"year"`
}

func (r *LeaveReportRequest) Validate() error {
	var errs validator.ValidationErrors

	currentYear := time.Now().Year()
	if r.Year < 2020 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "is out of range"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveReport struct {
	Year int              `json:"year"`
	Rows []LeaveReportRow `json:"rows"`
}

type LeaveReportRow struct {
	EmployeeID    string `json:"employee_id"`
	EmployeeName  string `json:"employee_name"`
	TotalRequests int    `json:"total_requests"`
	ApprovedDays  int    `json:"approved_days"`
	RejectedCount int    `json:"rejected_count"`
	PendingCount  int    `json:"pending_count"`
}

// ========================================
// MONTHLY PAYROLL REPORT
// ========================================

type PayrollReportRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *PayrollReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	currentYear := time.Now().Year()
	if r.Year < 2020 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "is out of range"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollReport struct {
	Month           int                `json:"month"`
	Year            int                `json:"year"`
	TotalGross      decimal.Decimal    `json:"total_gross"`
	TotalDeductions decimal.Decimal    `json:"total_deductions"`
	TotalNet        decimal.Decimal    `json:"total_net"`
	Rows            []PayrollReportRow `json:"rows"`
}

type PayrollReportRow struct {
	EmployeeID      string          `json:"employee_id"`
	EmployeeName    string          `json:"employee_name"`
	GrossSalary     decimal.Decimal `json:"gross_salary"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetSalary       decimal.Decimal `json:"net_salary"`
}
