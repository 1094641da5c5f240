package holiday

import (
	"testing"
	"time"

	"github.com/attendo-app/attendo-backend-go/internal/pkg/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHolidayRequestValidate(t *testing.T) {
	ok := HolidayRequest{Name: "New Year", Date: "2025-01-01", Type: TypeOfficial}
	assert.NoError(t, ok.Validate())

	badType := HolidayRequest{Name: "Team Day", Date: "2025-06-01", Type: "floating"}
	assert.Error(t, badType.Validate())

	badDate := HolidayRequest{Name: "New Year", Date: "01/01/2025", Type: TypeOfficial}
	assert.Error(t, badDate.Validate())

	missingName := HolidayRequest{Date: "2025-01-01", Type: TypeCustom}
	assert.Error(t, missingName.Validate())
}

func TestToResponseMonthIndex(t *testing.T) {
	h := Holiday{
		ID:   "h1",
		Name: "New Year",
		Date: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		Type: TypeOfficial,
	}

	resp := ToResponse(h)
	assert.Equal(t, "2025-01-01", resp.Date)
	assert.Equal(t, 2025, resp.Year)
	assert.Equal(t, 0, resp.Month, "January buckets at index 0")
}

func TestGroupByMonth(t *testing.T) {
	holidays := []Holiday{
		{ID: "h1", Name: "New Year", Date: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), Type: TypeOfficial},
		{ID: "h2", Name: "Founders Day", Date: time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC), Type: TypeCustom},
		{ID: "h3", Name: "Christmas", Date: time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC), Type: TypeOfficial},
	}

	grouped := GroupByMonth(holidays)
	require.Len(t, grouped, 2)

	january := grouped[view.MonthKey{Year: 2025, Month: 0}]
	require.Len(t, january, 2)
	assert.Equal(t, "New Year", january[0].Name)

	december := grouped[view.MonthKey{Year: 2025, Month: 11}]
	require.Len(t, december, 1)
}
