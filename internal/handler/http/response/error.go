package response

import (
	"errors"
	"net/http"

	"github.com/peopledesk/hr-admin-backend/internal/domain/attendance"
	"github.com/peopledesk/hr-admin-backend/internal/domain/auth"
	"github.com/peopledesk/hr-admin-backend/internal/domain/employee"
	"github.com/peopledesk/hr-admin-backend/internal/domain/leave"
	"github.com/peopledesk/hr-admin-backend/internal/domain/payroll"
	"github.com/peopledesk/hr-admin-backend/internal/domain/preregistration"
	"github.com/peopledesk/hr-admin-backend/internal/domain/user"
	"github.com/peopledesk/hr-admin-backend/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is inactive")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privileges required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrDuplicateRecord):
		Conflict(w, "Attendance record already exists for this employee and date")
	case errors.Is(err, attendance.ErrInvalidDate):
		BadRequest(w, "Date must be in YYYY-MM-DD format", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPayrollAlreadyExists):
		Conflict(w, "Payroll already exists for this employee and period")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)

	// Pre-registration domain errors
	case errors.Is(err, preregistration.ErrNotFound):
		NotFound(w, "Pre-registered employee not found")
	case errors.Is(err, preregistration.ErrEmployeeCodePreRegistered),
		errors.Is(err, preregistration.ErrEmailPreRegistered),
		errors.Is(err, preregistration.ErrEmployeeCodeRegistered),
		errors.Is(err, preregistration.ErrEmailRegistered),
		errors.Is(err, preregistration.ErrAlreadyRegistered):
		Conflict(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
