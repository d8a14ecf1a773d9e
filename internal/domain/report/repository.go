package report

import "context"

// ReportRepository runs the read-only aggregate queries behind the report
// endpoints. No invariants beyond filtering correctness.
type ReportRepository interface {
	// AttendanceByMonth counts attendance statuses per active employee
	// for one calendar month.
	AttendanceByMonth(ctx context.Context, month, year int) ([]AttendanceReportRow, error)

	// LeaveByYear aggregates leave requests per active employee for one
	// year: approved day totals, rejected and pending counts.
	LeaveByYear(ctx context.Context, year int) ([]LeaveReportRow, error)

	// PayrollByPeriod lists per-employee totals for one (month, year).
	PayrollByPeriod(ctx context.Context, month, year int) ([]PayrollReportRow, error)
}
