package attendance

import "time"

// Status enum
type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusHalfDay Status = "Half-day"
	StatusLeave   Status = "Leave"
)

// AllStatuses returns every valid attendance status.
func AllStatuses() []Status {
	return []Status{StatusPresent, StatusAbsent, StatusHalfDay, StatusLeave}
}

// IsValidStatus reports whether s names a known attendance status.
func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusPresent, StatusAbsent, StatusHalfDay, StatusLeave:
		return true
	}
	return false
}

// ClearsClockTimes reports whether the status forces check-in/check-out
// to be unset. Absent and Leave imply the employee was not at work, so
// any supplied times are discarded.
func (s Status) ClearsClockTimes() bool {
	return s == StatusAbsent || s == StatusLeave
}

// Attendance is keyed by the unique pair (EmployeeID, Date). Every write
// path upserts against that key; two records for the same pair never exist.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Status     Status
	CheckIn    *time.Time
	CheckOut   *time.Time
	Remarks    *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName       *string
	EmployeeDepartment *string
}

// Normalize applies the status rule to the record's clock times.
func (a *Attendance) Normalize() {
	if a.Status.ClearsClockTimes() {
		a.CheckIn = nil
		a.CheckOut = nil
	}
}

// DatesBetween expands an inclusive [start, end] range into consecutive
// calendar days, ascending. Returns nil when end precedes start.
func DatesBetween(start, end time.Time) []time.Time {
	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}
