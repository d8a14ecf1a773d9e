package dashboard

// DashboardStats is the admin landing page summary.
type DashboardStats struct {
	TotalEmployees    int64 `json:"total_employees"`
	TotalDepartments  int64 `json:"total_departments"`
	TodayPresent      int64 `json:"today_present"`
	TodayAbsent       int64 `json:"today_absent"`
	TodayOnLeave      int64 `json:"today_on_leave"`
	PendingLeaves     int64 `json:"pending_leaves"`
	ProcessedPayrolls int64 `json:"processed_payrolls"`
	PendingPayrolls   int64 `json:"pending_payrolls"`

	DepartmentStats []DepartmentStat `json:"department_stats"`
	RecentEmployees []RecentEmployee `json:"recent_employees"`
	RecentLeaves    []RecentLeave    `json:"recent_leaves"`
}

type DepartmentStat struct {
	Department string `json:"department"`
	Count      int64  `json:"count"`
}

type RecentEmployee struct {
	ID         string `json:"id"`
	FullName   string `json:"full_name"`
	Department string `json:"department"`
	CreatedAt  string `json:"created_at"`
}

type RecentLeave struct {
	ID           string `json:"id"`
	EmployeeName string `json:"employee_name"`
	LeaveType    string `json:"leave_type"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Status       string `json:"status"`
}
