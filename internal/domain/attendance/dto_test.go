package attendance

import (
	"testing"
	"time"

	"github.com/peopledesk/hr-admin-backend/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkAttendanceRequestValidate(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		req := MarkAttendanceRequest{EmployeeID: "emp-1", Date: "2025-03-10", Status: "Present"}
		assert.NoError(t, req.Validate())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		req := MarkAttendanceRequest{EmployeeID: "emp-1", Date: "2025-03-10", Status: "Sick"}
		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "status")
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		req := MarkAttendanceRequest{EmployeeID: "emp-1", Date: "10-03-2025", Status: "Present"}
		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "date")
	})
}

func TestBatchSaveRequestValidate(t *testing.T) {
	t.Run("rejects empty sheet", func(t *testing.T) {
		req := BatchSaveRequest{Date: "2025-03-10"}
		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "attendance")
	})

	t.Run("reports the failing row", func(t *testing.T) {
		bad := "25:00"
		req := BatchSaveRequest{
			Date: "2025-03-10",
			Attendance: []BatchSaveRow{
				{EmployeeID: "emp-1", Status: "Present"},
				{EmployeeID: "", Status: "Invalid", CheckIn: &bad},
			},
		}
		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		m := errs.ToMap()
		assert.Contains(t, m, "attendance[1].employee_id")
		assert.Contains(t, m, "attendance[1].status")
		assert.Contains(t, m, "attendance[1].check_in")
		assert.NotContains(t, m, "attendance[0].employee_id")
	})

	t.Run("valid sheet passes", func(t *testing.T) {
		in, out := "09:00", "17:00"
		req := BatchSaveRequest{
			Date: "2025-03-10",
			Attendance: []BatchSaveRow{
				{EmployeeID: "emp-1", Status: "Present", CheckIn: &in, CheckOut: &out},
				{EmployeeID: "emp-2", Status: "Absent"},
			},
		}
		assert.NoError(t, req.Validate())
	})
}

func TestBulkMarkRequestValidate(t *testing.T) {
	t.Run("defaults status to Present", func(t *testing.T) {
		req := BulkMarkRequest{Date: "2025-03-10"}
		require.NoError(t, req.Validate())
		assert.Equal(t, string(StatusPresent), req.Status)
	})

	t.Run("keeps explicit status", func(t *testing.T) {
		req := BulkMarkRequest{Date: "2025-03-10", Status: "Absent"}
		require.NoError(t, req.Validate())
		assert.Equal(t, "Absent", req.Status)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		req := BulkMarkRequest{Date: "2025-03-10", Status: "Vacation"}
		assert.Error(t, req.Validate())
	})
}

func TestFormatClock(t *testing.T) {
	assert.Nil(t, FormatClock(nil))

	ts := time.Date(2025, 3, 10, 9, 5, 0, 0, time.UTC)
	got := FormatClock(&ts)
	require.NotNil(t, got)
	assert.Equal(t, "09:05", *got)
}

func TestFormatClockNonUTCZone(t *testing.T) {
	// A stored 09:00 UTC read back in another zone must still render 09:00.
	jakarta := time.FixedZone("WIB", 7*3600)
	ts := time.Date(2025, 3, 10, 16, 0, 0, 0, jakarta)

	got := FormatClock(&ts)
	require.NotNil(t, got)
	assert.Equal(t, "09:00", *got)
}
