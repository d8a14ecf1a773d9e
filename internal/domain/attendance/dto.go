package attendance

import (
	"time"

	"github.com/peopledesk/hr-admin-backend/internal/pkg/validator"
)

// ========== WRITE DTOs ==========

// MarkAttendanceRequest marks a single employee on a single date. ActorID is
// the administrator performing the write, taken from the verified token.
type MarkAttendanceRequest struct {
	ActorID    string  `json:"-"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
	Remarks    *string `json:"remarks,omitempty"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "is required"})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
	}
	if !IsValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of Present, Absent, Half-day, Leave"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAttendanceRequest struct {
	ID       string  `json:"-"`
	ActorID  string  `json:"-"`
	Date     string  `json:"date"`
	Status   string  `json:"status"`
	CheckIn  *string `json:"check_in,omitempty"`
	CheckOut *string `json:"check_out,omitempty"`
	Remarks  *string `json:"remarks,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "is required"})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
	}
	if !IsValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of Present, Absent, Half-day, Leave"})
	}
	if r.CheckIn != nil && *r.CheckIn != "" {
		if _, ok := validator.IsValidClock(*r.CheckIn); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_in", Message: "must be in HH:MM format"})
		}
	}
	if r.CheckOut != nil && *r.CheckOut != "" {
		if _, ok := validator.IsValidClock(*r.CheckOut); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_out", Message: "must be in HH:MM format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BatchSaveRequest is the attendance sheet payload: one date, many rows.
type BatchSaveRequest struct {
	ActorID    string         `json:"-"`
	Date       string         `json:"date"`
	Attendance []BatchSaveRow `json:"attendance"`
}

type BatchSaveRow struct {
	EmployeeID string  `json:"employee_id"`
	Status     string  `json:"status"`
	CheckIn    *string `json:"check_in,omitempty"`
	CheckOut   *string `json:"check_out,omitempty"`
	Remarks    *string `json:"remarks,omitempty"`
}

func (r *BatchSaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "is required"})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
	}
	if len(r.Attendance) == 0 {
		errs = append(errs, validator.ValidationError{Field: "attendance", Message: "must contain at least one row"})
	}
	for i, row := range r.Attendance {
		field := "attendance[" + validator.Itoa(i) + "]"
		if validator.IsEmpty(row.EmployeeID) {
			errs = append(errs, validator.ValidationError{Field: field + ".employee_id", Message: "is required"})
		}
		if !IsValidStatus(row.Status) {
			errs = append(errs, validator.ValidationError{Field: field + ".status", Message: "must be one of Present, Absent, Half-day, Leave"})
		}
		if row.CheckIn != nil && *row.CheckIn != "" {
			if _, ok := validator.IsValidClock(*row.CheckIn); !ok {
				errs = append(errs, validator.ValidationError{Field: field + ".check_in", Message: "must be in HH:MM format"})
			}
		}
		if row.CheckOut != nil && *row.CheckOut != "" {
			if _, ok := validator.IsValidClock(*row.CheckOut); !ok {
				errs = append(errs, validator.ValidationError{Field: field + ".check_out", Message: "must be in HH:MM format"})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BulkMarkRequest marks every active employee (optionally one department)
// for a date. Create-only: employees with an existing record are skipped.
type BulkMarkRequest struct {
	ActorID    string `json:"-"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	Department string `json:"department,omitempty"`
}

func (r *BulkMarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "is required"})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
	}
	if r.Status == "" {
		r.Status = string(StatusPresent)
	}
	if !IsValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of Present, Absent, Half-day, Leave"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== READ DTOs ==========

type AttendanceFilter struct {
	EmployeeID *string
	Date       *string
	StartDate  *string
	EndDate    *string
	Status     *string
	Page       int
	Limit      int
}

type SheetFilter struct {
	Date       string
	Department string
}

// ========== RESPONSES ==========

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	CheckIn      *string `json:"check_in,omitempty"`
	CheckOut     *string `json:"check_out,omitempty"`
	Remarks      *string `json:"remarks,omitempty"`
}

type ListAttendanceResponse struct {
	Attendance []AttendanceResponse `json:"attendance"`
	Total      int64                `json:"total"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
}

// BatchSaveResponse reports how many sheet rows created new records and
// how many overwrote existing ones.
type BatchSaveResponse struct {
	Saved   int    `json:"saved"`
	Updated int    `json:"updated"`
	Message string `json:"message"`
}

type BulkMarkResponse struct {
	Marked  int    `json:"marked"`
	Message string `json:"message"`
}

// SheetRow pairs an active employee with their existing record for the
// sheet date, if any.
type SheetRow struct {
	EmployeeID   string              `json:"employee_id"`
	EmployeeName string              `json:"employee_name"`
	Department   string              `json:"department"`
	Existing     *AttendanceResponse `json:"existing,omitempty"`
}

type SheetResponse struct {
	Date        string     `json:"date"`
	Department  string     `json:"department,omitempty"`
	Departments []string   `json:"departments"`
	Rows        []SheetRow `json:"rows"`
}

// FormatClock renders a stored clock time back to HH:MM. Clock times are
// anchored in UTC on write, so the value must be read back in UTC too;
// timestamptz columns otherwise decode into the server's local zone.
func FormatClock(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format("15:04")
	return &s
}
