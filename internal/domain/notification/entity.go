package notification

import "time"

// NotificationType mirrors the severity rendered on the employee surface.
type NotificationType string

const (
	TypeSuccess NotificationType = "success"
	TypeDanger  NotificationType = "danger"
	TypeInfo    NotificationType = "info"
)

// Employee-facing paths a notification links to.
const (
	LinkLeave   = "/leave"
	LinkPayroll = "/payroll"
)

// LinkTo returns the path as a pointer for the nullable Link column.
func LinkTo(path string) *string {
	return &path
}

// Notification is append-only: created as a side effect of leave decisions
// and payroll processing, consumed by the employee-facing surface.
type Notification struct {
	ID         string
	EmployeeID string
	Title      string
	Message    string
	Type       NotificationType
	Link       *string
	IsRead     bool
	CreatedAt  time.Time
}
