package notification

import "context"

type Repository interface {
	// Create appends a notification. Callers inside a transaction pass the
	// tx-carrying context so the insert commits with the triggering write.
	Create(ctx context.Context, n Notification) (Notification, error)

	ListByEmployee(ctx context.Context, employeeID string, unreadOnly bool, page, limit int) ([]Notification, int64, error)

	UnreadCount(ctx context.Context, employeeID string) (int64, error)

	MarkAsRead(ctx context.Context, ids []string, employeeID string) error
}
