package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByUserID resolves the employee linked to a user account. Used to
	// scope employee-facing reads to the authenticated caller.
	GetByUserID(ctx context.Context, userID string) (Employee, error)

	// List retrieves employees with search/department/status filters and pagination
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)

	// ListActive retrieves active employees, optionally filtered by department,
	// ordered by first name. Used by the attendance sheet and bulk mark.
	ListActive(ctx context.Context, department string) ([]Employee, error)

	Update(ctx context.Context, emp Employee) error

	// SetStatus flips the employment status (soft deactivation, never a delete)
	SetStatus(ctx context.Context, id string, status Status) error

	// Departments returns the distinct non-empty department names
	Departments(ctx context.Context) ([]string, error)
}
