package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayFilterValidateClampsNegativePage(t *testing.T) {
	filter := DayFilter{Page: -5}
	assert.NoError(t, filter.Validate())
	assert.Equal(t, 0, filter.Page)
}

func TestDayFilterValidateRejectsBadDate(t *testing.T) {
	filter := DayFilter{Date: "10/03/2025"}
	assert.Error(t, filter.Validate())
}

func TestDayFilterTargetDate(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	explicit := DayFilter{Date: "2025-02-01", Page: 3}
	assert.Equal(t, "2025-02-01", explicit.TargetDate(now), "explicit date wins over page")

	paged := DayFilter{Page: 2}
	assert.Equal(t, "2025-03-08", paged.TargetDate(now))

	today := DayFilter{}
	assert.Equal(t, "2025-03-10", today.TargetDate(now))
}

func TestUpdateAttendanceRequestValidate(t *testing.T) {
	empty := UpdateAttendanceRequest{}
	assert.Error(t, empty.Validate(), "at least one field must be present")

	status := "present"
	ok := UpdateAttendanceRequest{Status: &status}
	assert.NoError(t, ok.Validate())

	badStatus := "vacationing"
	assert.Error(t, (&UpdateAttendanceRequest{Status: &badStatus}).Validate())

	badTime := "yesterday"
	assert.Error(t, (&UpdateAttendanceRequest{CheckOutTime: &badTime}).Validate())

	goodTime := "2025-03-10T17:00:00Z"
	assert.NoError(t, (&UpdateAttendanceRequest{CheckOutTime: &goodTime}).Validate())
}

// The displayed duration always derives from the raw timestamp pair; a stored
// hoursWorked figure is carried through untouched but never rendered.
func TestToResponseDurationFromRawPair(t *testing.T) {
	checkIn := time.Date(2025, time.March, 10, 6, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, time.March, 10, 14, 30, 0, 0, time.UTC)
	staleHours := 99.0

	resp := ToResponse(Attendance{
		ID:           "a1",
		Username:     "Alice",
		Date:         checkIn,
		CheckInTime:  &checkIn,
		CheckOutTime: &checkOut,
		Status:       StatusPresent,
		HoursWorked:  &staleHours,
	})

	assert.Equal(t, "8h 30m", resp.Duration)
	assert.Equal(t, staleHours, *resp.HoursWorked)
	assert.Equal(t, "present", resp.StatusLabel)
	assert.NotEmpty(t, resp.BadgeClass)
}

func TestToResponseMissingEmployee(t *testing.T) {
	resp := ToResponse(Attendance{ID: "a2", Date: time.Now(), Status: StatusAbsent})

	assert.Equal(t, "Unknown", resp.Username)
	assert.Equal(t, "-", resp.CheckInDisplay)
	assert.Equal(t, "-", resp.CheckOutDisplay)
	assert.Equal(t, "-", resp.Duration)
	assert.Nil(t, resp.CheckInTime)
}

func TestToResponsePartialLabel(t *testing.T) {
	resp := ToResponse(Attendance{ID: "a3", Date: time.Now(), Status: StatusPartial})
	assert.Equal(t, "Early Leave", resp.StatusLabel)
}
