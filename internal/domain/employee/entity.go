package employee

import "time"

// Status enum
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

type Employee struct {
	ID             string
	UserID         string
	FirstName      string
	LastName       string
	Phone          *string
	Address        *string
	Department     string
	Designation    string
	EmploymentType *string
	Gender         *string
	Status         Status
	DateOfBirth    *time.Time
	DateOfJoining  *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	EmployeeCode *string
	Email        *string
}

// FullName returns the display name used in messages and listings.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
