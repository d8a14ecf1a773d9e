package main

import (
	"fmt"
	"net/http"

	"github.com/peopledesk/hr-admin-backend/internal/config"
	appHTTP "github.com/peopledesk/hr-admin-backend/internal/handler/http"
	"github.com/peopledesk/hr-admin-backend/internal/pkg/database"
	"github.com/peopledesk/hr-admin-backend/internal/pkg/jwt"
	"github.com/peopledesk/hr-admin-backend/internal/repository/postgresql"
	attendanceService "github.com/peopledesk/hr-admin-backend/internal/service/attendance"
	authService "github.com/peopledesk/hr-admin-backend/internal/service/auth"
	dashboardService "github.com/peopledesk/hr-admin-backend/internal/service/dashboard"
	employeeService "github.com/peopledesk/hr-admin-backend/internal/service/employee"
	leaveService "github.com/peopledesk/hr-admin-backend/internal/service/leave"
	notificationService "github.com/peopledesk/hr-admin-backend/internal/service/notification"
	payrollService "github.com/peopledesk/hr-admin-backend/internal/service/payroll"
	preRegistrationService "github.com/peopledesk/hr-admin-backend/internal/service/preregistration"
	reportService "github.com/peopledesk/hr-admin-backend/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	preRegRepo := postgresql.NewPreRegistrationRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, userRepo, attendanceRepo, leaveRequestRepo, payrollRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo, attendanceRepo, notificationRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, employeeRepo, notificationRepo)
	notificationSvc := notificationService.NewNotificationService(notificationRepo)
	preRegSvc := preRegistrationService.NewPreRegistrationService(preRegRepo, userRepo)
	reportSvc := reportService.NewReportService(reportRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)

	router := appHTTP.NewRouter(jwtService, appHTTP.Handlers{
		Auth:            appHTTP.NewAuthHandler(authSvc),
		Employee:        appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance:      appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:           appHTTP.NewLeaveHandler(leaveSvc),
		Payroll:         appHTTP.NewPayrollHandler(payrollSvc),
		Report:          appHTTP.NewReportHandler(reportSvc),
		Dashboard:       appHTTP.NewDashboardHandler(dashboardSvc),
		PreRegistration: appHTTP.NewPreRegistrationHandler(preRegSvc),
		Notification:    appHTTP.NewNotificationHandler(notificationSvc, employeeRepo),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
