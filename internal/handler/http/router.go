package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/peopledesk/hr-admin-backend/internal/handler/http/middleware"
	"github.com/peopledesk/hr-admin-backend/internal/pkg/jwt"
)

type Handlers struct {
	Auth            AuthHandler
	Employee        EmployeeHandler
	Attendance      AttendanceHandler
	Leave           LeaveHandler
	Payroll         PayrollHandler
	Report          ReportHandler
	Dashboard       DashboardHandler
	PreRegistration PreRegistrationHandler
	Notification    NotificationHandler
}

func NewRouter(jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-admin-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.List)
				r.Post("/read", h.Notification.MarkAsRead)
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Get("/dashboard", h.Dashboard.Stats)

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", h.Employee.List)
					r.Get("/departments", h.Employee.Departments)
					r.Get("/{id}", h.Employee.Get)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Deactivate)
				})

				r.Route("/attendance", func(r chi.Router) {
					r.Get("/", h.Attendance.List)
					r.Post("/", h.Attendance.Mark)
					r.Get("/sheet", h.Attendance.Sheet)
					r.Post("/batch", h.Attendance.BatchSave)
					r.Post("/bulk", h.Attendance.BulkMark)
					r.Put("/{id}", h.Attendance.Update)
					r.Delete("/{id}", h.Attendance.Delete)
				})

				r.Route("/leave-requests", func(r chi.Router) {
					r.Get("/", h.Leave.List)
					r.Get("/{id}", h.Leave.Get)
					r.Post("/{id}/approve", h.Leave.Approve)
					r.Post("/{id}/reject", h.Leave.Reject)
				})

				r.Route("/payroll", func(r chi.Router) {
					r.Get("/", h.Payroll.List)
					r.Post("/", h.Payroll.Create)
					r.Get("/{id}", h.Payroll.Get)
					r.Put("/{id}", h.Payroll.Update)
				})

				r.Route("/reports", func(r chi.Router) {
					r.Get("/attendance", h.Report.Attendance)
					r.Get("/leave", h.Report.Leave)
					r.Get("/payroll", h.Report.Payroll)
				})

				r.Route("/pre-registration", func(r chi.Router) {
					r.Get("/", h.PreRegistration.List)
					r.Post("/", h.PreRegistration.Add)
					r.Delete("/{id}", h.PreRegistration.Delete)
				})
			})
		})
	})

	return r
}
