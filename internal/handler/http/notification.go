package http

import (
	"encoding/json"
	"net/http"

	"github.com/peopledesk/hr-admin-backend/internal/domain/employee"
	"github.com/peopledesk/hr-admin-backend/internal/domain/notification"
	"github.com/peopledesk/hr-admin-backend/internal/handler/http/middleware"
	"github.com/peopledesk/hr-admin-backend/internal/handler/http/response"
)

type NotificationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	MarkAsRead(w http.ResponseWriter, r *http.Request)
}

type notificationHandlerImpl struct {
	notificationService notification.Service
	employeeRepo        employee.EmployeeRepository
}

func NewNotificationHandler(
	notificationService notification.Service,
	employeeRepo employee.EmployeeRepository,
) NotificationHandler {
	return &notificationHandlerImpl{
		notificationService: notificationService,
		employeeRepo:        employeeRepo,
	}
}

// List implements NotificationHandler. Notifications are scoped to the
// authenticated caller's own employee record.
func (h *notificationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	emp, err := h.employeeRepo.GetByUserID(r.Context(), middleware.UserID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	unreadOnly := r.URL.Query().Get("unread") == "true"
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 20)

	results, err := h.notificationService.ListByEmployee(r.Context(), emp.ID, unreadOnly, page, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// MarkAsRead implements NotificationHandler.
func (h *notificationHandlerImpl) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	emp, err := h.employeeRepo.GetByUserID(r.Context(), middleware.UserID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req notification.MarkReadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = emp.ID

	if err := h.notificationService.MarkAsRead(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Notifications marked as read", nil)
}
