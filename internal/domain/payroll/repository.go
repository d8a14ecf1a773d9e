package payroll

import "context"

// PayrollRepository defines data access for payroll records. The payrolls
// table carries a unique constraint on (employee_id, month, year); Create
// surfaces its violation so the service can map it to a conflict.
type PayrollRepository interface {
	Create(ctx context.Context, p Payroll) (Payroll, error)

	GetByID(ctx context.Context, id string) (Payroll, error)

	GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (*Payroll, error)

	GetLatestByEmployee(ctx context.Context, employeeID string) (*Payroll, error)

	List(ctx context.Context, filter PayrollFilter) ([]Payroll, int64, error)

	Update(ctx context.Context, p Payroll) error
}
