package notification

import (
	"context"
	"time"

	"github.com/peopledesk/hr-admin-backend/internal/domain/notification"
)

type notificationService struct {
	notificationRepo notification.Repository
}

// ListByEmployee implements notification.Service.
func (s *notificationService) ListByEmployee(ctx context.Context, employeeID string, unreadOnly bool, page, limit int) (notification.ListNotificationsResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	notifications, total, err := s.notificationRepo.ListByEmployee(ctx, employeeID, unreadOnly, page, limit)
	if err != nil {
		return notification.ListNotificationsResponse{}, err
	}

	unread, err := s.notificationRepo.UnreadCount(ctx, employeeID)
	if err != nil {
		return notification.ListNotificationsResponse{}, err
	}

	responses := make([]notification.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, notification.NotificationResponse{
			ID:        n.ID,
			Title:     n.Title,
			Message:   n.Message,
			Type:      string(n.Type),
			Link:      n.Link,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt.Format(time.RFC3339),
		})
	}

	return notification.ListNotificationsResponse{
		Notifications: responses,
		Total:         total,
		UnreadCount:   unread,
	}, nil
}

// MarkAsRead implements notification.Service. The employee scope on the
// update keeps one employee from clearing another's notifications.
func (s *notificationService) MarkAsRead(ctx context.Context, req notification.MarkReadRequest) error {
	if len(req.IDs) == 0 {
		return nil
	}
	return s.notificationRepo.MarkAsRead(ctx, req.IDs, req.EmployeeID)
}

func NewNotificationService(notificationRepo notification.Repository) notification.Service {
	return &notificationService{notificationRepo: notificationRepo}
}
