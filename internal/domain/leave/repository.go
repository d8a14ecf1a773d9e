package leave

import "context"

type LeaveRequestRepository interface {
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// GetByIDForUpdate locks the request row for the rest of the enclosing
	// transaction; the status transition decision happens under this lock.
	GetByIDForUpdate(ctx context.Context, id string) (LeaveRequest, error)

	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, int64, error)

	ListRecentByEmployee(ctx context.Context, employeeID string, limit int) ([]LeaveRequest, error)

	// UpdateDecision persists the terminal transition: status, approver,
	// approval timestamp and admin comment.
	UpdateDecision(ctx context.Context, req LeaveRequest) error
}
