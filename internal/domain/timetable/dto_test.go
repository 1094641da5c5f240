package timetable

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singleRequest() TimetableRequest {
	return TimetableRequest{
		Name:                "Day Shift",
		ShiftType:           "single",
		CheckInStart:        "08:00",
		CheckInEnd:          "09:00",
		CheckOutStart:       "17:00",
		CheckOutEnd:         "18:00",
		LateAllowance:       15,
		EarlyLeaveAllowance: 10,
		WorkingDays:         []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
	}
}

func TestToEntitySingle(t *testing.T) {
	req := singleRequest()
	entity := req.ToEntity()

	assert.Equal(t, ShiftSingle, entity.Kind)
	require.NotNil(t, entity.Single)
	assert.Nil(t, entity.Split)
	assert.Nil(t, entity.Weekly)
	assert.Equal(t, "08:00", entity.Single.Window.CheckInStart)
	assert.Equal(t, 15, entity.Single.Window.LateAllowance)
}

// Switching shift type rebuilds the variant from scratch, so window fields
// submitted for a previous type cannot survive the switch.
func TestToEntityDiscardsStaleFields(t *testing.T) {
	req := singleRequest()
	req.ShiftType = "weekly"
	req.WeeklySchedule = map[string]DaySchedule{
		"Monday": {CheckIn: "09:00", CheckOut: "17:00"},
	}

	entity := req.ToEntity()

	assert.Equal(t, ShiftWeekly, entity.Kind)
	require.NotNil(t, entity.Weekly)
	assert.Nil(t, entity.Single, "single window does not ride along")
	assert.Nil(t, entity.Split)

	resp := ToResponse(entity)
	assert.Empty(t, resp.CheckInStart, "stale window fields stay out of the wire shape")
	assert.Empty(t, resp.CheckOutEnd)
	assert.Zero(t, resp.LateAllowance)
	assert.Equal(t, "09:00", resp.WeeklySchedule["Monday"].CheckIn)

	payload, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "checkInStart")
}

func TestToEntitySplit(t *testing.T) {
	req := singleRequest()
	req.ShiftType = "split"
	req.Shift2CheckInStart = "14:00"
	req.Shift2CheckInEnd = "14:30"
	req.Shift2CheckOutStart = "20:00"
	req.Shift2CheckOutEnd = "21:00"

	entity := req.ToEntity()

	require.NotNil(t, entity.Split)
	assert.Equal(t, "08:00", entity.Split.First.CheckInStart)
	assert.Equal(t, "14:00", entity.Split.Second.CheckInStart)

	resp := ToResponse(entity)
	assert.Equal(t, "14:00", resp.Shift2CheckInStart)
}

func TestValidateRejectsUnknownShiftType(t *testing.T) {
	req := singleRequest()
	req.ShiftType = "rotating"
	assert.Error(t, req.Validate())
}

func TestValidateRejectsBadClock(t *testing.T) {
	req := singleRequest()
	req.CheckInStart = "8am"
	assert.Error(t, req.Validate())
}

func TestValidateRequiresName(t *testing.T) {
	req := singleRequest()
	req.Name = "  "
	assert.Error(t, req.Validate())
}

func TestValidateSingleOK(t *testing.T) {
	req := singleRequest()
	assert.NoError(t, req.Validate())
}

func TestWorkingDaysFollowsVariant(t *testing.T) {
	req := singleRequest()
	entity := req.ToEntity()
	assert.Equal(t, req.WorkingDays, entity.WorkingDays())

	empty := Timetable{Kind: ShiftSingle}
	assert.Nil(t, empty.WorkingDays(), "nil variant yields no days rather than panicking")
}
