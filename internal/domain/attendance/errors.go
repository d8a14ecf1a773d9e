package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrDuplicateRecord    = errors.New("attendance record already exists for this employee and date")
	ErrInvalidDate        = errors.New("date must be in YYYY-MM-DD format")
)
