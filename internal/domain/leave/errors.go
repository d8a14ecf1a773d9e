package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")

	// ErrAlreadyProcessed is returned when approving or rejecting a request
	// that is no longer Pending. The request is left untouched.
	ErrAlreadyProcessed = errors.New("leave request has already been processed")
)
