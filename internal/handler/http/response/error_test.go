package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/peopledesk/hr-admin-backend/internal/domain/attendance"
	"github.com/peopledesk/hr-admin-backend/internal/domain/auth"
	"github.com/peopledesk/hr-admin-backend/internal/domain/employee"
	"github.com/peopledesk/hr-admin-backend/internal/domain/leave"
	"github.com/peopledesk/hr-admin-backend/internal/domain/payroll"
	"github.com/peopledesk/hr-admin-backend/internal/domain/preregistration"
	"github.com/peopledesk/hr-admin-backend/internal/domain/user"
	"github.com/peopledesk/hr-admin-backend/internal/pkg/validator"
)

func TestHandleError_StatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"inactive account", auth.ErrAccountInactive, http.StatusForbidden},
		{"admin required", user.ErrAdminPrivilegeRequired, http.StatusForbidden},
		{"employee not found", employee.ErrEmployeeNotFound, http.StatusNotFound},
		{"attendance not found", attendance.ErrAttendanceNotFound, http.StatusNotFound},
		{"bad date", attendance.ErrInvalidDate, http.StatusBadRequest},
		{"duplicate attendance key", attendance.ErrDuplicateRecord, http.StatusConflict},
		{"leave already processed", leave.ErrAlreadyProcessed, http.StatusConflict},
		{"duplicate payroll", payroll.ErrPayrollAlreadyExists, http.StatusConflict},
		{"duplicate pre-registration", preregistration.ErrEmailPreRegistered, http.StatusConflict},
		{"wrapped sentinel", fmt.Errorf("while approving: %w", leave.ErrAlreadyProcessed), http.StatusConflict},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)
			if rec.Code != tt.want {
				t.Errorf("HandleError(%v) status = %d, want %d", tt.err, rec.Code, tt.want)
			}

			var body Response
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("response body is not valid JSON: %v", err)
			}
			if body.Success {
				t.Error("error response reports success")
			}
			if body.Error == nil {
				t.Error("error response carries no error detail")
			}
		})
	}
}

func TestHandleError_ValidationErrors(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "date", Message: "must be in YYYY-MM-DD format"},
		{Field: "status", Message: "is invalid"},
	}

	rec := httptest.NewRecorder()
	HandleError(rec, errs)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}

	var body Response
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if body.Error == nil || len(body.Error.Details) != 2 {
		t.Fatalf("expected two field details, got %+v", body.Error)
	}
	if body.Error.Details["date"] == "" {
		t.Error("missing detail for field date")
	}
}
