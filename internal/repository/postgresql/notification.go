package postgresql

import (
	"context"
	"fmt"

	"github.com/peopledesk/hr-admin-backend/internal/domain/notification"
	"github.com/peopledesk/hr-admin-backend/internal/pkg/database"
)

type notificationRepository struct {
	db *database.DB
}

// Create implements notification.Repository.
func (n *notificationRepository) Create(ctx context.Context, notif notification.Notification) (notification.Notification, error) {
	q := GetQuerier(ctx, n.db)

	query := `
		INSERT INTO notifications (employee_id, title, message, type, link)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, is_read, created_at
	`

	err := q.QueryRow(ctx, query,
		notif.EmployeeID, notif.Title, notif.Message, notif.Type, notif.Link,
	).Scan(&notif.ID, &notif.IsRead, &notif.CreatedAt)
	if err != nil {
		return notification.Notification{}, fmt.Errorf("failed to create notification: %w", err)
	}

	return notif, nil
}

// ListByEmployee implements notification.Repository.
func (n *notificationRepository) ListByEmployee(ctx context.Context, employeeID string, unreadOnly bool, page, limit int) ([]notification.Notification, int64, error) {
	q := GetQuerier(ctx, n.db)

	baseWhere := "employee_id = $1"
	if unreadOnly {
		baseWhere += " AND is_read = FALSE"
	}

	countQuery := "SELECT COUNT(*) FROM notifications WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, employeeID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	if limit == 0 {
		limit = 20
	}
	if page == 0 {
		page = 1
	}
	offset := (page - 1) * limit

	selectQuery := fmt.Sprintf(`
		SELECT id, employee_id, title, message, type, link, is_read, created_at
		FROM notifications
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, baseWhere)

	rows, err := q.Query(ctx, selectQuery, employeeID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	var notifications []notification.Notification
	for rows.Next() {
		var notif notification.Notification
		err := rows.Scan(
			&notif.ID, &notif.EmployeeID, &notif.Title, &notif.Message,
			&notif.Type, &notif.Link, &notif.IsRead, &notif.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, notif)
	}

	return notifications, total, nil
}

// UnreadCount implements notification.Repository.
func (n *notificationRepository) UnreadCount(ctx context.Context, employeeID string) (int64, error) {
	q := GetQuerier(ctx, n.db)

	var count int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE employee_id = $1 AND is_read = FALSE`,
		employeeID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

// MarkAsRead implements notification.Repository.
func (n *notificationRepository) MarkAsRead(ctx context.Context, ids []string, employeeID string) error {
	q := GetQuerier(ctx, n.db)

	_, err := q.Exec(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE id = ANY($1) AND employee_id = $2`,
		ids, employeeID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark notifications as read: %w", err)
	}

	return nil
}

func NewNotificationRepository(db *database.DB) notification.Repository {
	return &notificationRepository{db: db}
}
