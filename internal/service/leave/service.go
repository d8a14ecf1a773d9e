package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/peopledesk/hr-admin-backend/internal/domain/attendance"
	"github.com/peopledesk/hr-admin-backend/internal/domain/leave"
	"github.com/peopledesk/hr-admin-backend/internal/domain/notification"
	"github.com/peopledesk/hr-admin-backend/internal/pkg/database"
	"github.com/peopledesk/hr-admin-backend/internal/repository/postgresql"
)

type leaveService struct {
	db               *database.DB
	leaveRepo        leave.LeaveRequestRepository
	attendanceRepo   attendance.AttendanceRepository
	notificationRepo notification.Repository
}

// Approve implements leave.LeaveService. The status transition, the per-day
// attendance records and the notification commit in one transaction; the
// request row stays locked until commit so a racing decision waits, then
// sees the terminal status.
func (s *leaveService) Approve(ctx context.Context, req leave.ApproveLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	var result leave.LeaveRequest
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		lr, err := s.leaveRepo.GetByIDForUpdate(txCtx, req.RequestID)
		if err != nil {
			return err
		}
		if lr.Status.IsTerminal() {
			return leave.ErrAlreadyProcessed
		}

		now := time.Now()
		lr.Status = leave.StatusApproved
		lr.ApprovedBy = &req.ApproverID
		lr.ApprovedAt = &now
		lr.AdminComment = req.AdminComment

		if err := s.leaveRepo.UpdateDecision(txCtx, lr); err != nil {
			return err
		}

		remarks := fmt.Sprintf("Leave approved: %s", lr.LeaveType)
		for _, day := range attendance.DatesBetween(lr.StartDate, lr.EndDate) {
			att := attendance.Attendance{
				EmployeeID: lr.EmployeeID,
				Date:       day,
				Status:     attendance.StatusLeave,
				Remarks:    &remarks,
			}
			if _, _, err := s.attendanceRepo.Upsert(txCtx, att); err != nil {
				return fmt.Errorf("failed to record leave day %s: %w", day.Format("2006-01-02"), err)
			}
		}

		message := fmt.Sprintf("Your %s leave from %s to %s has been approved.",
			lr.LeaveType, lr.StartDate.Format("2006-01-02"), lr.EndDate.Format("2006-01-02"))
		_, err = s.notificationRepo.Create(txCtx, notification.Notification{
			EmployeeID: lr.EmployeeID,
			Title:      "Leave Request Approved",
			Message:    message,
			Type:       notification.TypeSuccess,
			Link:       notification.LinkTo(notification.LinkLeave),
		})
		if err != nil {
			return err
		}

		result = lr
		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return toResponse(result), nil
}

// Reject implements leave.LeaveService.
func (s *leaveService) Reject(ctx context.Context, req leave.RejectLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	var result leave.LeaveRequest
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		lr, err := s.leaveRepo.GetByIDForUpdate(txCtx, req.RequestID)
		if err != nil {
			return err
		}
		if lr.Status.IsTerminal() {
			return leave.ErrAlreadyProcessed
		}

		now := time.Now()
		lr.Status = leave.StatusRejected
		lr.ApprovedBy = &req.ApproverID
		lr.ApprovedAt = &now
		lr.AdminComment = &req.AdminComment

		if err := s.leaveRepo.UpdateDecision(txCtx, lr); err != nil {
			return err
		}

		message := fmt.Sprintf("Your %s leave from %s to %s has been rejected. Reason: %s",
			lr.LeaveType, lr.StartDate.Format("2006-01-02"), lr.EndDate.Format("2006-01-02"), req.AdminComment)
		_, err = s.notificationRepo.Create(txCtx, notification.Notification{
			EmployeeID: lr.EmployeeID,
			Title:      "Leave Request Rejected",
			Message:    message,
			Type:       notification.TypeDanger,
			Link:       notification.LinkTo(notification.LinkLeave),
		})
		if err != nil {
			return err
		}

		result = lr
		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return toResponse(result), nil
}

// List implements leave.LeaveService.
func (s *leaveService) List(ctx context.Context, filter leave.LeaveRequestFilter) (leave.ListLeaveRequestsResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	requests, total, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveRequestsResponse{}, err
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, lr := range requests {
		responses = append(responses, toResponse(lr))
	}

	return leave.ListLeaveRequestsResponse{
		LeaveRequests: responses,
		Total:         total,
		Page:          filter.Page,
		Limit:         filter.Limit,
	}, nil
}

// Get implements leave.LeaveService.
func (s *leaveService) Get(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	lr, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return toResponse(lr), nil
}

func toResponse(lr leave.LeaveRequest) leave.LeaveRequestResponse {
	resp := leave.LeaveRequestResponse{
		ID:           lr.ID,
		EmployeeID:   lr.EmployeeID,
		EmployeeName: lr.EmployeeName,
		LeaveType:    lr.LeaveType,
		StartDate:    lr.StartDate.Format("2006-01-02"),
		EndDate:      lr.EndDate.Format("2006-01-02"),
		Days:         lr.Days,
		Status:       string(lr.Status),
		Reason:       lr.Reason,
		ApprovedBy:   lr.ApprovedBy,
		AdminComment: lr.AdminComment,
	}
	if lr.ApprovedAt != nil {
		s := lr.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &s
	}
	return resp
}

func NewLeaveService(
	db *database.DB,
	leaveRepo leave.LeaveRequestRepository,
	attendanceRepo attendance.AttendanceRepository,
	notificationRepo notification.Repository,
) leave.LeaveService {
	return &leaveService{
		db:               db,
		leaveRepo:        leaveRepo,
		attendanceRepo:   attendanceRepo,
		notificationRepo: notificationRepo,
	}
}
