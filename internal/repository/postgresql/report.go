package postgresql

import (
	"context"
	"fmt"

	"github.com/peopledesk/hr-admin-backend/internal/domain/report"
	"github.com/peopledesk/hr-admin-backend/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

// AttendanceByMonth implements report.ReportRepository.
func (r *reportRepository) AttendanceByMonth(ctx context.Context, month, year int) ([]report.AttendanceReportRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id,
			   e.first_name || ' ' || e.last_name AS employee_name,
			   e.department,
			   COUNT(a.id) FILTER (WHERE a.status = 'Present')  AS present,
			   COUNT(a.id) FILTER (WHERE a.status = 'Absent')   AS absent,
			   COUNT(a.id) FILTER (WHERE a.status = 'Half-day') AS half_day,
			   COUNT(a.id) FILTER (WHERE a.status = 'Leave')    AS leave,
			   COUNT(a.id)                                      AS total
		FROM employees e
		LEFT JOIN attendances a
			ON a.employee_id = e.id
			AND EXTRACT(MONTH FROM a.date) = $1
			AND EXTRACT(YEAR FROM a.date) = $2
		WHERE e.status = 'Active'
		GROUP BY e.id, e.first_name, e.last_name, e.department
		ORDER BY e.first_name, e.last_name
	`

	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance report: %w", err)
	}
	defer rows.Close()

	var result []report.AttendanceReportRow
	for rows.Next() {
		var row report.AttendanceReportRow
		err := rows.Scan(
			&row.EmployeeID, &row.EmployeeName, &row.Department,
			&row.Present, &row.Absent, &row.HalfDay, &row.Leave, &row.Total,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance report row: %w", err)
		}
		result = append(result, row)
	}

	return result, nil
}

// LeaveByYear implements report.ReportRepository.
func (r *reportRepository) LeaveByYear(ctx context.Context, year int) ([]report.LeaveReportRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id,
			   e.first_name || ' ' || e.last_name AS employee_name,
			   COUNT(lr.id) AS total_requests,
			   COALESCE(SUM(lr.end_date - lr.start_date + 1) FILTER (WHERE lr.status = 'Approved'), 0) AS approved_days,
			   COUNT(lr.id) FILTER (WHERE lr.status = 'Rejected') AS rejected_count,
			   COUNT(lr.id) FILTER (WHERE lr.status = 'Pending')  AS pending_count
		FROM employees e
		LEFT JOIN leave_requests lr
			ON lr.employee_id = e.id
			AND EXTRACT(YEAR FROM lr.created_at) = $1
		WHERE e.status = 'Active'
		GROUP BY e.id, e.first_name, e.last_name
		ORDER BY e.first_name, e.last_name
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave report: %w", err)
	}
	defer rows.Close()

	var result []report.LeaveReportRow
	for rows.Next() {
		var row report.LeaveReportRow
		err := rows.Scan(
			&row.EmployeeID, &row.EmployeeName,
			&row.TotalRequests, &row.ApprovedDays, &row.RejectedCount, &row.PendingCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave report row: %w", err)
		}
		result = append(result, row)
	}

	return result, nil
}

// PayrollByPeriod implements report.ReportRepository.
func (r *reportRepository) PayrollByPeriod(ctx context.Context, month, year int) ([]report.PayrollReportRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.employee_id,
			   e.first_name || ' ' || e.last_name AS employee_name,
			   p.gross_salary,
			   p.pf + p.tax + p.insurance + p.other_deductions AS total_deductions,
			   p.net_salary
		FROM payrolls p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.month = $1 AND p.year = $2
		ORDER BY e.first_name, e.last_name
	`

	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query payroll report: %w", err)
	}
	defer rows.Close()

	var result []report.PayrollReportRow
	for rows.Next() {
		var row report.PayrollReportRow
		err := rows.Scan(
			&row.EmployeeID, &row.EmployeeName,
			&row.GrossSalary, &row.TotalDeductions, &row.NetSalary,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll report row: %w", err)
		}
		result = append(result, row)
	}

	return result, nil
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}
