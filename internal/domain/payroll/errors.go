package payroll

import "errors"

var (
	ErrPayrollNotFound      = errors.New("payroll record not found")
	ErrPayrollAlreadyExists = errors.New("payroll already exists for this employee and period")
	ErrInvalidPeriod        = errors.New("invalid payroll period")
)
