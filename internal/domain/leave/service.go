package leave

import "context"

type LeaveService interface {
	// Approve transitions a Pending request to Approved, expands the date
	// range into per-day Leave attendance records, and notifies the
	// employee. The three writes commit or roll back together.
	Approve(ctx context.Context, req ApproveLeaveRequest) (LeaveRequestResponse, error)

	// Reject transitions a Pending request to Rejected with a mandatory
	// comment and notifies the employee.
	Reject(ctx context.Context, req RejectLeaveRequest) (LeaveRequestResponse, error)

	// List retrieves leave requests with filters (admin)
	List(ctx context.Context, filter LeaveRequestFilter) (ListLeaveRequestsResponse, error)

	Get(ctx context.Context, id string) (LeaveRequestResponse, error)
}
