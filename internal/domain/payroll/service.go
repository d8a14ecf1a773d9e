package payroll

import "context"

type PayrollService interface {
	// Create refuses duplicates per (employee, month, year), derives the
	// totals, and notifies the employee in the same transaction.
	Create(ctx context.Context, req CreatePayrollRequest) (PayrollResponse, error)

	// Update recomputes gross/net from the changed components.
	Update(ctx context.Context, req UpdatePayrollRequest) (PayrollResponse, error)

	Get(ctx context.Context, id string) (PayrollResponse, error)

	// List retrieves payroll records for one period with pagination
	List(ctx context.Context, filter PayrollFilter) (ListPayrollResponse, error)
}
