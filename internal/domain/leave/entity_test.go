package leave

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	pending := LeaveRequest{Status: StatusPending}
	assert.True(t, pending.CanTransitionTo(StatusApproved))
	assert.True(t, pending.CanTransitionTo(StatusRejected))
	assert.False(t, pending.CanTransitionTo(StatusPending))
	assert.False(t, pending.CanTransitionTo("cancelled"))

	approved := LeaveRequest{Status: StatusApproved}
	assert.False(t, approved.CanTransitionTo(StatusRejected), "processed requests never move again")
	assert.False(t, approved.CanTransitionTo(StatusApproved))

	rejected := LeaveRequest{Status: StatusRejected}
	assert.False(t, rejected.CanTransitionTo(StatusApproved))
}

func TestUpdateStatusRequestValidate(t *testing.T) {
	ok := UpdateStatusRequest{Status: StatusApproved}
	assert.NoError(t, ok.Validate())

	bad := UpdateStatusRequest{Status: StatusPending}
	assert.Error(t, bad.Validate(), "a request cannot be reset to pending")

	empty := UpdateStatusRequest{}
	assert.Error(t, empty.Validate())
}

func TestFilterValidate(t *testing.T) {
	assert.NoError(t, (&Filter{}).Validate())
	assert.NoError(t, (&Filter{Status: StatusPending, From: "2025-01-01", To: "2025-01-31"}).Validate())
	assert.Error(t, (&Filter{Status: "maybe"}).Validate())
	assert.Error(t, (&Filter{From: "01-01-2025"}).Validate())
}
