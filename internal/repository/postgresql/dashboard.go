package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/peopledesk/hr-admin-backend/internal/domain/dashboard"
	"github.com/peopledesk/hr-admin-backend/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

// Stats implements dashboard.DashboardRepository.
func (d *dashboardRepository) Stats(ctx context.Context, today time.Time, month, year int) (dashboard.DashboardStats, error) {
	q := GetQuerier(ctx, d.db)

	var stats dashboard.DashboardStats

	countersQuery := `
		SELECT
			(SELECT COUNT(*) FROM employees WHERE status = 'Active'),
			(SELECT COUNT(DISTINCT department) FROM employees WHERE status = 'Active'),
			(SELECT COUNT(*) FROM attendances WHERE date = $1 AND status = 'Present'),
			(SELECT COUNT(*) FROM attendances WHERE date = $1 AND status IN ('Absent', 'Half-day')),
			(SELECT COUNT(*) FROM attendances WHERE date = $1 AND status = 'Leave'),
			(SELECT COUNT(*) FROM leave_requests WHERE status = 'Pending'),
			(SELECT COUNT(*) FROM payrolls WHERE month = $2 AND year = $3 AND status = 'Processed'),
			(SELECT COUNT(*) FROM employees e
				WHERE e.status = 'Active'
				AND NOT EXISTS (
					SELECT 1 FROM payrolls p
					WHERE p.employee_id = e.id AND p.month = $2 AND p.year = $3
				))
	`

	err := q.QueryRow(ctx, countersQuery, today, month, year).Scan(
		&stats.TotalEmployees, &stats.TotalDepartments,
		&stats.TodayPresent, &stats.TodayAbsent, &stats.TodayOnLeave,
		&stats.PendingLeaves, &stats.ProcessedPayrolls, &stats.PendingPayrolls,
	)
	if err != nil {
		return dashboard.DashboardStats{}, fmt.Errorf("failed to query dashboard counters: %w", err)
	}

	departmentQuery := `
		SELECT department, COUNT(*)
		FROM employees
		WHERE status = 'Active'
		GROUP BY department
		ORDER BY COUNT(*) DESC, department
	`

	rows, err := q.Query(ctx, departmentQuery)
	if err != nil {
		return dashboard.DashboardStats{}, fmt.Errorf("failed to query department stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var stat dashboard.DepartmentStat
		if err := rows.Scan(&stat.Department, &stat.Count); err != nil {
			return dashboard.DashboardStats{}, fmt.Errorf("failed to scan department stat: %w", err)
		}
		stats.DepartmentStats = append(stats.DepartmentStats, stat)
	}
	rows.Close()

	recentEmployeesQuery := `
		SELECT id, first_name || ' ' || last_name, department, TO_CHAR(created_at, 'YYYY-MM-DD')
		FROM employees
		WHERE status = 'Active'
		ORDER BY created_at DESC
		LIMIT 5
	`

	rows, err = q.Query(ctx, recentEmployeesQuery)
	if err != nil {
		return dashboard.DashboardStats{}, fmt.Errorf("failed to query recent employees: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var emp dashboard.RecentEmployee
		if err := rows.Scan(&emp.ID, &emp.FullName, &emp.Department, &emp.CreatedAt); err != nil {
			return dashboard.DashboardStats{}, fmt.Errorf("failed to scan recent employee: %w", err)
		}
		stats.RecentEmployees = append(stats.RecentEmployees, emp)
	}
	rows.Close()

	recentLeavesQuery := `
		SELECT lr.id, e.first_name || ' ' || e.last_name, lr.leave_type,
			   TO_CHAR(lr.start_date, 'YYYY-MM-DD'), TO_CHAR(lr.end_date, 'YYYY-MM-DD'), lr.status
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		ORDER BY lr.created_at DESC
		LIMIT 5
	`

	rows, err = q.Query(ctx, recentLeavesQuery)
	if err != nil {
		return dashboard.DashboardStats{}, fmt.Errorf("failed to query recent leaves: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var leave dashboard.RecentLeave
		err := rows.Scan(&leave.ID, &leave.EmployeeName, &leave.LeaveType, &leave.StartDate, &leave.EndDate, &leave.Status)
		if err != nil {
			return dashboard.DashboardStats{}, fmt.Errorf("failed to scan recent leave: %w", err)
		}
		stats.RecentLeaves = append(stats.RecentLeaves, leave)
	}

	return stats, nil
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}
