package leave

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peopledesk/hr-admin-backend/internal/domain/attendance"
	"github.com/peopledesk/hr-admin-backend/internal/domain/leave"
	"github.com/peopledesk/hr-admin-backend/internal/domain/notification"
)

type fakeLeaveRepo struct {
	byID map[string]leave.LeaveRequest
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	lr, ok := f.byID[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return lr, nil
}

func (f *fakeLeaveRepo) GetByIDForUpdate(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeLeaveRepo) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	return nil, 0, nil
}

func (f *fakeLeaveRepo) ListRecentByEmployee(ctx context.Context, employeeID string, limit int) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) UpdateDecision(ctx context.Context, req leave.LeaveRequest) error {
	f.byID[req.ID] = req
	return nil
}

type fakeAttendanceRepo struct {
	upserted []attendance.Attendance
}

func (f *fakeAttendanceRepo) Upsert(ctx context.Context, att attendance.Attendance) (attendance.Attendance, bool, error) {
	f.upserted = append(f.upserted, att)
	return att, true, nil
}

func (f *fakeAttendanceRepo) CreateIfAbsent(ctx context.Context, att attendance.Attendance) (bool, error) {
	return false, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	return nil, 0, nil
}

func (f *fakeAttendanceRepo) ListRecentByEmployee(ctx context.Context, employeeID string, limit int) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, att attendance.Attendance) error { return nil }

func (f *fakeAttendanceRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeNotificationRepo struct {
	created []notification.Notification
}

func (f *fakeNotificationRepo) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	f.created = append(f.created, n)
	return n, nil
}

func (f *fakeNotificationRepo) ListByEmployee(ctx context.Context, employeeID string, unreadOnly bool, page, limit int) ([]notification.Notification, int64, error) {
	return nil, 0, nil
}

func (f *fakeNotificationRepo) UnreadCount(ctx context.Context, employeeID string) (int64, error) {
	return 0, nil
}

func (f *fakeNotificationRepo) MarkAsRead(ctx context.Context, ids []string, employeeID string) error {
	return nil
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func pendingRequest() leave.LeaveRequest {
	return leave.LeaveRequest{
		ID:         "lr-1",
		EmployeeID: "emp-1",
		LeaveType:  "Sick",
		StartDate:  day("2025-03-10"),
		EndDate:    day("2025-03-12"),
		Days:       3,
		Status:     leave.StatusPending,
	}
}

func TestApprove_ExpandsLeaveDays(t *testing.T) {
	leaveRepo := &fakeLeaveRepo{byID: map[string]leave.LeaveRequest{"lr-1": pendingRequest()}}
	attRepo := &fakeAttendanceRepo{}
	notifRepo := &fakeNotificationRepo{}
	svc := NewLeaveService(nil, leaveRepo, attRepo, notifRepo)

	result, err := svc.Approve(context.Background(), leave.ApproveLeaveRequest{
		RequestID:  "lr-1",
		ApproverID: "admin-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "Approved", result.Status)
	require.NotNil(t, result.ApprovedBy)
	assert.Equal(t, "admin-1", *result.ApprovedBy)
	assert.NotNil(t, result.ApprovedAt)

	require.Len(t, attRepo.upserted, 3)
	wantDates := []string{"2025-03-10", "2025-03-11", "2025-03-12"}
	for i, att := range attRepo.upserted {
		assert.Equal(t, "emp-1", att.EmployeeID)
		assert.Equal(t, wantDates[i], att.Date.Format("2006-01-02"))
		assert.Equal(t, attendance.StatusLeave, att.Status)
		require.NotNil(t, att.Remarks)
		assert.Equal(t, "Leave approved: Sick", *att.Remarks)
	}

	require.Len(t, notifRepo.created, 1)
	assert.Equal(t, "Leave Request Approved", notifRepo.created[0].Title)
	assert.Equal(t, notification.TypeSuccess, notifRepo.created[0].Type)
	require.NotNil(t, notifRepo.created[0].Link)
	assert.Equal(t, notification.LinkLeave, *notifRepo.created[0].Link)
}

func TestApprove_AlreadyProcessed(t *testing.T) {
	processed := pendingRequest()
	processed.Status = leave.StatusApproved
	leaveRepo := &fakeLeaveRepo{byID: map[string]leave.LeaveRequest{"lr-1": processed}}
	attRepo := &fakeAttendanceRepo{}
	svc := NewLeaveService(nil, leaveRepo, attRepo, &fakeNotificationRepo{})

	_, err := svc.Approve(context.Background(), leave.ApproveLeaveRequest{
		RequestID:  "lr-1",
		ApproverID: "admin-2",
	})
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
	assert.Empty(t, attRepo.upserted)

	// The stored request is untouched.
	stored := leaveRepo.byID["lr-1"]
	assert.Nil(t, stored.ApprovedBy)
}

func TestReject_WritesNotificationWithReason(t *testing.T) {
	leaveRepo := &fakeLeaveRepo{byID: map[string]leave.LeaveRequest{"lr-1": pendingRequest()}}
	attRepo := &fakeAttendanceRepo{}
	notifRepo := &fakeNotificationRepo{}
	svc := NewLeaveService(nil, leaveRepo, attRepo, notifRepo)

	result, err := svc.Reject(context.Background(), leave.RejectLeaveRequest{
		RequestID:    "lr-1",
		ApproverID:   "admin-1",
		AdminComment: "Insufficient leave balance",
	})
	require.NoError(t, err)

	assert.Equal(t, "Rejected", result.Status)
	assert.Empty(t, attRepo.upserted)

	require.Len(t, notifRepo.created, 1)
	assert.Equal(t, "Leave Request Rejected", notifRepo.created[0].Title)
	assert.Equal(t, notification.TypeDanger, notifRepo.created[0].Type)
	assert.Contains(t, notifRepo.created[0].Message, "Insufficient leave balance")
}

func TestReject_RequiresComment(t *testing.T) {
	svc := NewLeaveService(nil, nil, nil, nil)

	_, err := svc.Reject(context.Background(), leave.RejectLeaveRequest{
		RequestID:  "lr-1",
		ApproverID: "admin-1",
	})
	assert.Error(t, err)
}

func TestApprove_RequiresApprover(t *testing.T) {
	svc := NewLeaveService(nil, nil, nil, nil)

	_, err := svc.Approve(context.Background(), leave.ApproveLeaveRequest{
		RequestID: "lr-1",
	})
	assert.Error(t, err)
}
