package notification

import "context"

type Service interface {
	ListByEmployee(ctx context.Context, employeeID string, unreadOnly bool, page, limit int) (ListNotificationsResponse, error)

	MarkAsRead(ctx context.Context, req MarkReadRequest) error
}
