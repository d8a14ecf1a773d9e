package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculateTotals(t *testing.T) {
	p := Payroll{
		BasicSalary:      dec("50000"),
		HRA:              dec("20000"),
		DA:               dec("5000"),
		TA:               dec("3000"),
		MedicalAllowance: dec("2000"),
		OtherAllowances:  dec("1000"),
		PF:               dec("6000"),
		Tax:              dec("8000"),
		Insurance:        dec("1500"),
		OtherDeductions:  dec("500"),
	}
	p.CalculateTotals()

	assert.True(t, p.GrossSalary.Equal(dec("81000")), "gross = %s", p.GrossSalary)
	assert.True(t, p.TotalDeductions().Equal(dec("16000")))
	assert.True(t, p.NetSalary.Equal(dec("65000")), "net = %s", p.NetSalary)
}

func TestCalculateTotalsOverwritesStale(t *testing.T) {
	p := Payroll{
		BasicSalary: dec("30000"),
		GrossSalary: dec("999999"),
		NetSalary:   dec("999999"),
	}
	p.CalculateTotals()

	assert.True(t, p.GrossSalary.Equal(dec("30000")))
	assert.True(t, p.NetSalary.Equal(dec("30000")))

	// A component edit changes the derived totals on recompute.
	p.Tax = dec("4500")
	p.CalculateTotals()
	assert.True(t, p.NetSalary.Equal(dec("25500")))
}

func TestCalculateTotalsZeroComponents(t *testing.T) {
	var p Payroll
	p.CalculateTotals()
	assert.True(t, p.GrossSalary.IsZero())
	assert.True(t, p.NetSalary.IsZero())
}
