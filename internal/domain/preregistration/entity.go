package preregistration

import "time"

// PreRegisteredEmployee is an allow-list entry enabling self-signup.
// Flagged IsRegistered once consumed; deletable only while unconsumed.
type PreRegisteredEmployee struct {
	ID           string
	EmployeeCode string
	Email        string
	FirstName    string
	LastName     string
	Department   *string
	Designation  *string
	AddedBy      string
	IsRegistered bool
	CreatedAt    time.Time
}
