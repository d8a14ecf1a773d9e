package user

import "context"

type UserRepository interface {
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)

	// ExistsByEmployeeCodeOrEmail is used by pre-registration to refuse
	// entries that collide with an already registered account.
	ExistsByEmployeeCode(ctx context.Context, employeeCode string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// UpdateActive flips the account's active flag (employee deactivation).
	UpdateActive(ctx context.Context, id string, active bool) error
	UpdateRole(ctx context.Context, id string, role Role) error
}
