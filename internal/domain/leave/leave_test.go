package leave

import (
	"testing"

	"github.com/peopledesk/hr-admin-backend/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestStatusIsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.True(t, StatusApproved.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
}

func TestRejectLeaveRequestValidate(t *testing.T) {
	t.Run("requires admin comment", func(t *testing.T) {
		req := RejectLeaveRequest{RequestID: "lr-1", ApproverID: "admin-1"}
		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "admin_comment")
	})

	t.Run("whitespace comment is refused", func(t *testing.T) {
		req := RejectLeaveRequest{RequestID: "lr-1", ApproverID: "admin-1", AdminComment: "   "}
		assert.Error(t, req.Validate())
	})

	t.Run("valid rejection", func(t *testing.T) {
		req := RejectLeaveRequest{RequestID: "lr-1", ApproverID: "admin-1", AdminComment: "No coverage that week"}
		assert.NoError(t, req.Validate())
	})
}

func TestApproveLeaveRequestValidate(t *testing.T) {
	t.Run("comment is optional", func(t *testing.T) {
		req := ApproveLeaveRequest{RequestID: "lr-1", ApproverID: "admin-1"}
		assert.NoError(t, req.Validate())
	})

	t.Run("requires approver", func(t *testing.T) {
		req := ApproveLeaveRequest{RequestID: "lr-1"}
		assert.Error(t, req.Validate())
	})
}
