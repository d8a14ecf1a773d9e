package employee

import "context"

type EmployeeService interface {
	// ListEmployees retrieves employees with filters and pagination (admin)
	ListEmployees(ctx context.Context, filter EmployeeFilter) (ListEmployeesResponse, error)

	// GetEmployee retrieves a single employee with recent activity
	GetEmployee(ctx context.Context, id string) (EmployeeDetailResponse, error)

	// UpdateEmployee applies an admin edit, including an optional role change
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeactivateEmployee soft-deactivates the employee and their account
	DeactivateEmployee(ctx context.Context, id string) error

	// Departments lists distinct department names for filters
	Departments(ctx context.Context) ([]string, error)
}
