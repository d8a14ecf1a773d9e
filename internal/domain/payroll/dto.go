package payroll

import (
	"time"

	"github.com/peopledesk/hr-admin-backend/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreatePayrollRequest struct {
	ActorID    string `json:"-"`
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`

	BasicSalary      decimal.Decimal `json:"basic_salary"`
	HRA              decimal.Decimal `json:"hra"`
	DA               decimal.Decimal `json:"da"`
	TA               decimal.Decimal `json:"ta"`
	MedicalAllowance decimal.Decimal `json:"medical_allowance"`
	OtherAllowances  decimal.Decimal `json:"other_allowances"`

	PF              decimal.Decimal `json:"pf"`
	Tax             decimal.Decimal `json:"tax"`
	Insurance       decimal.Decimal `json:"insurance"`
	OtherDeductions decimal.Decimal `json:"other_deductions"`
}

func validPeriod(month, year int) validator.ValidationErrors {
	var errs validator.ValidationErrors
	if month < 1 || month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	currentYear := time.Now().Year()
	if year < 2020 || year > currentYear+1 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "is out of range"})
	}
	return errs
}

func validComponents(amounts map[string]decimal.Decimal) validator.ValidationErrors {
	var errs validator.ValidationErrors
	for field, amount := range amounts {
		if amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}
	return errs
}

func (r *CreatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	errs = append(errs, validPeriod(r.Month, r.Year)...)
	errs = append(errs, validComponents(map[string]decimal.Decimal{
		"basic_salary":      r.BasicSalary,
		"hra":               r.HRA,
		"da":                r.DA,
		"ta":                r.TA,
		"medical_allowance": r.MedicalAllowance,
		"other_allowances":  r.OtherAllowances,
		"pf":                r.PF,
		"tax":               r.Tax,
		"insurance":         r.Insurance,
		"other_deductions":  r.OtherDeductions,
	})...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePayrollRequest struct {
	ID      string `json:"-"`
	ActorID string `json:"-"`

	BasicSalary      decimal.Decimal `json:"basic_salary"`
	HRA              decimal.Decimal `json:"hra"`
	DA               decimal.Decimal `json:"da"`
	TA               decimal.Decimal `json:"ta"`
	MedicalAllowance decimal.Decimal `json:"medical_allowance"`
	OtherAllowances  decimal.Decimal `json:"other_allowances"`

	PF              decimal.Decimal `json:"pf"`
	Tax             decimal.Decimal `json:"tax"`
	Insurance       decimal.Decimal `json:"insurance"`
	OtherDeductions decimal.Decimal `json:"other_deductions"`
}

func (r *UpdatePayrollRequest) Validate() error {
	errs := validComponents(map[string]decimal.Decimal{
		"basic_salary":      r.BasicSalary,
		"hra":               r.HRA,
		"da":                r.DA,
		"ta":                r.TA,
		"medical_allowance": r.MedicalAllowance,
		"other_allowances":  r.OtherAllowances,
		"pf":                r.PF,
		"tax":               r.Tax,
		"insurance":         r.Insurance,
		"other_deductions":  r.OtherDeductions,
	})
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollFilter struct {
	Month int
	Year  int
	Page  int
	Limit int
}

type PayrollResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Month        int     `json:"month"`
	Year         int     `json:"year"`

	BasicSalary      decimal.Decimal `json:"basic_salary"`
	HRA              decimal.Decimal `json:"hra"`
	DA               decimal.Decimal `json:"da"`
	TA               decimal.Decimal `json:"ta"`
	MedicalAllowance decimal.Decimal `json:"medical_allowance"`
	OtherAllowances  decimal.Decimal `json:"other_allowances"`

	PF              decimal.Decimal `json:"pf"`
	Tax             decimal.Decimal `json:"tax"`
	Insurance       decimal.Decimal `json:"insurance"`
	OtherDeductions decimal.Decimal `json:"other_deductions"`

	GrossSalary decimal.Decimal `json:"gross_salary"`
	NetSalary   decimal.Decimal `json:"net_salary"`
	Status      string          `json:"status"`
}

type ListPayrollResponse struct {
	Payrolls []PayrollResponse `json:"payrolls"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}
