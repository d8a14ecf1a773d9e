package preregistration

import (
	"strings"

	"github.com/peopledesk/hr-admin-backend/internal/pkg/validator"
)

type AddRequest struct {
	ActorID      string  `json:"-"`
	EmployeeCode string  `json:"employee_code"`
	Email        string  `json:"email"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Department   *string `json:"department,omitempty"`
	Designation  *string `json:"designation,omitempty"`
}

func (r *AddRequest) Validate() error {
	var errs validator.ValidationErrors

	r.EmployeeCode = strings.TrimSpace(r.EmployeeCode)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)

	if r.EmployeeCode == "" {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "is required"})
	} else if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "is not a valid employee code"})
	}
	if r.Email == "" {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is not a valid email address"})
	}
	if r.FirstName == "" || r.LastName == "" {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "first name and last name are required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PreRegisteredEmployeeResponse struct {
	ID           string  `json:"id"`
	EmployeeCode string  `json:"employee_code"`
	Email        string  `json:"email"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Department   *string `json:"department,omitempty"`
	Designation  *string `json:"designation,omitempty"`
	AddedBy      string  `json:"added_by"`
	IsRegistered bool    `json:"is_registered"`
	CreatedAt    string  `json:"created_at"`
}
