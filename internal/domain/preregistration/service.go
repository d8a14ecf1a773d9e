package preregistration

import "context"

type Service interface {
	// Add validates against both the pre-registration list and existing
	// user accounts before inserting.
	Add(ctx context.Context, req AddRequest) (PreRegisteredEmployeeResponse, error)

	List(ctx context.Context) ([]PreRegisteredEmployeeResponse, error)

	// Delete removes an entry, refused once the employee has registered.
	Delete(ctx context.Context, id string) error
}
