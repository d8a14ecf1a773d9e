package report

import "context"

type ReportService interface {
	Attendance(ctx context.Context, req AttendanceReportRequest) (AttendanceReport, error)
	Leave(ctx context.Context, req LeaveReportRequest) (LeaveReport, error)
	Payroll(ctx context.Context, req PayrollReportRequest) (PayrollReport, error)
}
