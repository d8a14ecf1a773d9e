package leave

import "time"

// RequestStatus enum
type RequestStatus string

const (
	StatusPending  RequestStatus = "Pending"
	StatusApproved RequestStatus = "Approved"
	StatusRejected RequestStatus = "Rejected"
)

// IsTerminal reports whether no further transition is defined for the status.
func (s RequestStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// LeaveRequest transitions exactly once from Pending to Approved or
// Rejected; terminal requests are immutable.
type LeaveRequest struct {
	ID           string
	EmployeeID   string
	LeaveType    string
	StartDate    time.Time
	EndDate      time.Time
	Days         int
	Status       RequestStatus
	Reason       *string
	ApprovedBy   *string
	ApprovedAt   *time.Time
	AdminComment *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	EmployeeName *string
}
