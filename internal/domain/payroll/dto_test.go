package payroll

import (
	"testing"

	"github.com/peopledesk/hr-admin-backend/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePayrollRequestValidate(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		req := CreatePayrollRequest{
			EmployeeID:  "emp-1",
			Month:       3,
			Year:        2025,
			BasicSalary: decimal.NewFromInt(50000),
		}
		assert.NoError(t, req.Validate())
	})

	t.Run("rejects month out of range", func(t *testing.T) {
		req := CreatePayrollRequest{EmployeeID: "emp-1", Month: 13, Year: 2025}
		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "month")
	})

	t.Run("rejects negative components", func(t *testing.T) {
		req := CreatePayrollRequest{
			EmployeeID: "emp-1",
			Month:      3,
			Year:       2025,
			Tax:        decimal.NewFromInt(-100),
		}
		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "tax")
	})
}

func TestUpdatePayrollRequestValidate(t *testing.T) {
	req := UpdatePayrollRequest{HRA: decimal.NewFromInt(-1)}
	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "hra")
}
