package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records.
// The attendances table carries a unique constraint on (employee_id, date);
// Upsert and CreateIfAbsent lean on it so concurrent writers can never
// produce two records for the same key.
type AttendanceRepository interface {
	// Upsert atomically inserts or overwrites the record for the
	// (employee, date) key. Reports whether a new row was created.
	Upsert(ctx context.Context, att Attendance) (Attendance, bool, error)

	// CreateIfAbsent inserts only when no record exists for the key,
	// leaving existing records untouched. Reports whether a row was
	// inserted. Used by bulk-by-department marking.
	CreateIfAbsent(ctx context.Context, att Attendance) (bool, error)

	GetByID(ctx context.Context, id string) (Attendance, error)

	// ListByDate returns every record for one date, for the sheet view.
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)

	// List retrieves attendance records with filters and pagination
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// ListRecentByEmployee returns the newest records for one employee.
	ListRecentByEmployee(ctx context.Context, employeeID string, limit int) ([]Attendance, error)

	Update(ctx context.Context, att Attendance) error

	Delete(ctx context.Context, id string) error
}
