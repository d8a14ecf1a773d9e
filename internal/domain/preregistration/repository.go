package preregistration

import "context"

type Repository interface {
	Create(ctx context.Context, entry PreRegisteredEmployee) (PreRegisteredEmployee, error)

	GetByID(ctx context.Context, id string) (PreRegisteredEmployee, error)

	// List returns every entry, newest first.
	List(ctx context.Context) ([]PreRegisteredEmployee, error)

	ExistsByEmployeeCode(ctx context.Context, employeeCode string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	Delete(ctx context.Context, id string) error
}
