package leave

import (
	"github.com/peopledesk/hr-admin-backend/internal/pkg/validator"
)

// ApproveLeaveRequest carries the administrator's decision. ApproverID is
// the acting admin from the verified token, never ambient state.
type ApproveLeaveRequest struct {
	RequestID    string  `json:"-"`
	ApproverID   string  `json:"-"`
	AdminComment *string `json:"admin_comment,omitempty"`
}

func (r *ApproveLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestID) {
		errs = append(errs, validator.ValidationError{Field: "request_id", Message: "is required"})
	}
	if validator.IsEmpty(r.ApproverID) {
		errs = append(errs, validator.ValidationError{Field: "approver_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectLeaveRequest struct {
	RequestID    string `json:"-"`
	ApproverID   string `json:"-"`
	AdminComment string `json:"admin_comment"`
}

func (r *RejectLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestID) {
		errs = append(errs, validator.ValidationError{Field: "request_id", Message: "is required"})
	}
	if validator.IsEmpty(r.ApproverID) {
		errs = append(errs, validator.ValidationError{Field: "approver_id", Message: "is required"})
	}
	// A rejection without a stated reason is refused outright.
	if validator.IsEmpty(r.AdminComment) {
		errs = append(errs, validator.ValidationError{Field: "admin_comment", Message: "is required when rejecting a leave request"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveRequestFilter struct {
	Status     *string
	EmployeeID *string
	Page       int
	Limit      int
}

type LeaveRequestResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	LeaveType    string  `json:"leave_type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Days         int     `json:"days"`
	Status       string  `json:"status"`
	Reason       *string `json:"reason,omitempty"`
	ApprovedBy   *string `json:"approved_by,omitempty"`
	ApprovedAt   *string `json:"approved_at,omitempty"`
	AdminComment *string `json:"admin_comment,omitempty"`
}

type ListLeaveRequestsResponse struct {
	LeaveRequests []LeaveRequestResponse `json:"leave_requests"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	Limit         int                    `json:"limit"`
}
