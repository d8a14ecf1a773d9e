package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enum
type Status string

const StatusProcessed Status = "Processed"

// Payroll is keyed by the unique triple (EmployeeID, Month, Year).
// Creation is refused when a record exists for the period; there is no
// upsert here, unlike attendance.
type Payroll struct {
	ID         string
	EmployeeID string
	Month      int
	Year       int

	// Earnings
	BasicSalary      decimal.Decimal
	HRA              decimal.Decimal
	DA               decimal.Decimal
	TA               decimal.Decimal
	MedicalAllowance decimal.Decimal
	OtherAllowances  decimal.Decimal

	// Deductions
	PF              decimal.Decimal
	Tax             decimal.Decimal
	Insurance       decimal.Decimal
	OtherDeductions decimal.Decimal

	// Derived
	GrossSalary decimal.Decimal
	NetSalary   decimal.Decimal

	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
}

// TotalDeductions sums the deduction components.
func (p *Payroll) TotalDeductions() decimal.Decimal {
	return p.PF.Add(p.Tax).Add(p.Insurance).Add(p.OtherDeductions)
}

// CalculateTotals derives gross and net from the component fields.
// Called on every create and edit; the stored totals are never trusted
// to survive a component change.
func (p *Payroll) CalculateTotals() {
	p.GrossSalary = p.BasicSalary.
		Add(p.HRA).
		Add(p.DA).
		Add(p.TA).
		Add(p.MedicalAllowance).
		Add(p.OtherAllowances)
	p.NetSalary = p.GrossSalary.Sub(p.TotalDeductions())
}
