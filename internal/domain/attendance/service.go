package attendance

import "context"

// AttendanceService is the reconciliation engine: every write funnels
// through the one-record-per-(employee, date) upsert contract.
type AttendanceService interface {
	// Mark upserts a single employee's record for a date
	Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, bool, error)

	// Update edits an existing record by id
	Update(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)

	// Delete removes a record by id
	Delete(ctx context.Context, id string) error

	// BatchSave applies a whole attendance sheet for one date in a single
	// transaction. All-or-nothing: any row failure rolls back every write.
	BatchSave(ctx context.Context, req BatchSaveRequest) (BatchSaveResponse, error)

	// BulkMark creates records for active employees lacking one on the date.
	BulkMark(ctx context.Context, req BulkMarkRequest) (BulkMarkResponse, error)

	// List retrieves attendance records with filters (admin)
	List(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// Sheet pairs active employees with their existing records for a date.
	Sheet(ctx context.Context, filter SheetFilter) (SheetResponse, error)
}
