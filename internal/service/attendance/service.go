package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/peopledesk/hr-admin-backend/internal/domain/attendance"
	"github.com/peopledesk/hr-admin-backend/internal/domain/employee"
	"github.com/peopledesk/hr-admin-backend/internal/pkg/database"
	"github.com/peopledesk/hr-admin-backend/internal/repository/postgresql"
)

// Defaults applied by bulk marking when the status is Present.
const (
	defaultCheckIn  = "09:00"
	defaultCheckOut = "17:00"
	bulkRemarks     = "Bulk attendance marked by admin"
)

type attendanceService struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

// Mark implements attendance.AttendanceService.
func (s *attendanceService) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, bool, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, false, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, false, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	att := attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Status:     attendance.Status(req.Status),
		Remarks:    req.Remarks,
	}
	att.Normalize()

	saved, created, err := s.attendanceRepo.Upsert(ctx, att)
	if err != nil {
		return attendance.AttendanceResponse{}, false, err
	}

	return toResponse(saved), created, nil
}

// Update implements attendance.AttendanceService.
func (s *attendanceService) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	existing, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	existing.Date = date
	existing.Status = attendance.Status(req.Status)
	existing.CheckIn = clockOn(date, req.CheckIn)
	existing.CheckOut = clockOn(date, req.CheckOut)
	existing.Remarks = req.Remarks
	existing.Normalize()

	if err := s.attendanceRepo.Update(ctx, existing); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(existing), nil
}

// Delete implements attendance.AttendanceService.
func (s *attendanceService) Delete(ctx context.Context, id string) error {
	if _, err := s.attendanceRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.attendanceRepo.Delete(ctx, id)
}

// BatchSave implements attendance.AttendanceService. The whole sheet is
// applied inside one transaction; a failing row rolls back every write.
func (s *attendanceService) BatchSave(ctx context.Context, req attendance.BatchSaveRequest) (attendance.BatchSaveResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.BatchSaveResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	var saved, updated int
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		for _, row := range req.Attendance {
			att := attendance.Attendance{
				EmployeeID: row.EmployeeID,
				Date:       date,
				Status:     attendance.Status(row.Status),
				CheckIn:    clockOn(date, row.CheckIn),
				CheckOut:   clockOn(date, row.CheckOut),
				Remarks:    row.Remarks,
			}
			att.Normalize()

			_, created, err := s.attendanceRepo.Upsert(txCtx, att)
			if err != nil {
				return fmt.Errorf("failed to save attendance for employee %s: %w", row.EmployeeID, err)
			}
			if created {
				saved++
			} else {
				updated++
			}
		}
		return nil
	})
	if err != nil {
		return attendance.BatchSaveResponse{}, err
	}

	slog.Info("Attendance sheet saved", "date", req.Date, "saved", saved, "updated", updated)

	return attendance.BatchSaveResponse{
		Saved:   saved,
		Updated: updated,
		Message: fmt.Sprintf("Attendance saved: %d created, %d updated", saved, updated),
	}, nil
}

// BulkMark implements attendance.AttendanceService. Create-only: employees
// who already have a record for the date keep it untouched.
func (s *attendanceService) BulkMark(ctx context.Context, req attendance.BulkMarkRequest) (attendance.BulkMarkResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.BulkMarkResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	status := attendance.Status(req.Status)

	employees, err := s.employeeRepo.ListActive(ctx, req.Department)
	if err != nil {
		return attendance.BulkMarkResponse{}, err
	}

	var checkIn, checkOut *time.Time
	if status == attendance.StatusPresent {
		in := defaultCheckIn
		out := defaultCheckOut
		checkIn = clockOn(date, &in)
		checkOut = clockOn(date, &out)
	}
	remarks := bulkRemarks

	var marked int
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		for _, emp := range employees {
			att := attendance.Attendance{
				EmployeeID: emp.ID,
				Date:       date,
				Status:     status,
				CheckIn:    checkIn,
				CheckOut:   checkOut,
				Remarks:    &remarks,
			}
			att.Normalize()

			created, err := s.attendanceRepo.CreateIfAbsent(txCtx, att)
			if err != nil {
				return fmt.Errorf("failed to mark attendance for employee %s: %w", emp.ID, err)
			}
			if created {
				marked++
			}
		}
		return nil
	})
	if err != nil {
		return attendance.BulkMarkResponse{}, err
	}

	slog.Info("Bulk attendance marked", "date", req.Date, "status", req.Status, "department", req.Department, "marked", marked)

	return attendance.BulkMarkResponse{
		Marked:  marked,
		Message: fmt.Sprintf("Marked %d employees as %s", marked, status),
	}, nil
}

// List implements attendance.AttendanceService.
func (s *attendanceService) List(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	records, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, toResponse(att))
	}

	return attendance.ListAttendanceResponse{
		Attendance: responses,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// Sheet implements attendance.AttendanceService.
func (s *attendanceService) Sheet(ctx context.Context, filter attendance.SheetFilter) (attendance.SheetResponse, error) {
	if filter.Date == "" {
		filter.Date = time.Now().Format("2006-01-02")
	}
	date, err := time.Parse("2006-01-02", filter.Date)
	if err != nil {
		return attendance.SheetResponse{}, attendance.ErrInvalidDate
	}

	employees, err := s.employeeRepo.ListActive(ctx, filter.Department)
	if err != nil {
		return attendance.SheetResponse{}, err
	}

	departments, err := s.employeeRepo.Departments(ctx)
	if err != nil {
		return attendance.SheetResponse{}, err
	}

	records, err := s.attendanceRepo.ListByDate(ctx, date)
	if err != nil {
		return attendance.SheetResponse{}, err
	}

	byEmployee := make(map[string]attendance.Attendance, len(records))
	for _, att := range records {
		byEmployee[att.EmployeeID] = att
	}

	rows := make([]attendance.SheetRow, 0, len(employees))
	for _, emp := range employees {
		row := attendance.SheetRow{
			EmployeeID:   emp.ID,
			EmployeeName: emp.FullName(),
			Department:   emp.Department,
		}
		if att, ok := byEmployee[emp.ID]; ok {
			resp := toResponse(att)
			row.Existing = &resp
		}
		rows = append(rows, row)
	}

	return attendance.SheetResponse{
		Date:        filter.Date,
		Department:  filter.Department,
		Departments: departments,
		Rows:        rows,
	}, nil
}

// clockOn anchors an HH:MM clock string on the given date. Nil or empty
// input yields nil.
func clockOn(date time.Time, clock *string) *time.Time {
	if clock == nil || *clock == "" {
		return nil
	}
	parsed, err := time.Parse("15:04", *clock)
	if err != nil {
		return nil
	}
	t := time.Date(date.Year(), date.Month(), date.Day(), parsed.Hour(), parsed.Minute(), 0, 0, time.UTC)
	return &t
}

func toResponse(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:           att.ID,
		EmployeeID:   att.EmployeeID,
		EmployeeName: att.EmployeeName,
		Date:         att.Date.Format("2006-01-02"),
		Status:       string(att.Status),
		CheckIn:      attendance.FormatClock(att.CheckIn),
		CheckOut:     attendance.FormatClock(att.CheckOut),
		Remarks:      att.Remarks,
	}
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &attendanceService{
		db:             db,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}
