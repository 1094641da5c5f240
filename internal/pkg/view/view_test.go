package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ts(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("bad timestamp %q: %v", value, err)
	}
	return &parsed
}

func TestClock(t *testing.T) {
	// 06:05 UTC is 09:05 in Nairobi
	assert.Equal(t, "09:05 AM", Clock(ts(t, "2025-03-10T06:05:00Z")))
	assert.Equal(t, "08:30 PM", Clock(ts(t, "2025-03-10T17:30:00Z")))
	assert.Equal(t, "-", Clock(nil))
}

func TestToday(t *testing.T) {
	// 22:30 UTC has already rolled over to the next day in Nairobi.
	late := time.Date(2025, 6, 10, 22, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-06-11", Today(late).Format("2006-01-02"))

	noon := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-06-10", Today(noon).Format("2006-01-02"))

	// Today and DateForPage page 0 resolve the same calendar day.
	assert.Equal(t, DateForPage(late, 0), Today(late).Format("2006-01-02"))
}

func TestDuration(t *testing.T) {
	checkIn := ts(t, "2025-03-10T06:00:00Z")
	checkOut := ts(t, "2025-03-10T14:45:00Z")

	assert.Equal(t, "8h 45m", Duration(checkIn, checkOut))
	assert.Equal(t, "-", Duration(nil, checkOut))
	assert.Equal(t, "-", Duration(checkIn, nil))
	assert.Equal(t, "-", Duration(checkOut, checkIn), "negative span renders as dash")
	assert.Equal(t, "-", Duration(checkIn, checkIn), "zero span renders as dash")
}

func TestDurationSubHour(t *testing.T) {
	checkIn := ts(t, "2025-03-10T06:00:00Z")
	checkOut := ts(t, "2025-03-10T06:20:00Z")
	assert.Equal(t, "0h 20m", Duration(checkIn, checkOut))
}

func TestYesNo(t *testing.T) {
	assert.Equal(t, "Yes", YesNo(true))
	assert.Equal(t, "No", YesNo(false))
}

func TestFallbackName(t *testing.T) {
	assert.Equal(t, "Alice", FallbackName("Alice", "Bob"))
	assert.Equal(t, "Bob", FallbackName("", "Bob"))
	assert.Equal(t, "Unknown", FallbackName("", ""))
}

func TestBadgeClass(t *testing.T) {
	assert.Equal(t, "bg-green-100 text-green-600 dark:bg-green-700 dark:text-green-200", BadgeClass("present"))
	assert.Equal(t, "bg-red-100 text-red-600 dark:bg-red-700 dark:text-red-200", BadgeClass("absent"))
	assert.Equal(t, BadgeClass("partial"), BadgeClass("leftEarly"))

	// Unknown values never panic and get the gray default
	assert.Equal(t, defaultBadgeClass, BadgeClass("somethingNew"))
	assert.Equal(t, defaultBadgeClass, BadgeClass(""))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Early Leave", StatusLabel("partial"))
	assert.Equal(t, "Early Leave", StatusLabel("leftEarly"))
	assert.Equal(t, "On Leave", StatusLabel("onLeave"))
	assert.Equal(t, "Shift Not Started", StatusLabel("shiftNotStarted"))
	assert.Equal(t, "present", StatusLabel("present"), "unmapped statuses pass through")
}

func TestMonthKeyOf(t *testing.T) {
	jan := time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)
	dec := time.Date(2025, time.December, 31, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, MonthKey{Year: 2025, Month: 0}, MonthKeyOf(jan), "January is month 0")
	assert.Equal(t, MonthKey{Year: 2025, Month: 11}, MonthKeyOf(dec))
}

func TestDatePager(t *testing.T) {
	now := func() time.Time {
		return time.Date(2025, time.March, 10, 15, 0, 0, 0, time.UTC)
	}

	p := NewDatePagerAt(now)
	assert.Equal(t, "2025-03-10", p.Date())

	p.Back()
	p.Back()
	assert.Equal(t, "2025-03-08", p.Date())

	p.Forward()
	assert.Equal(t, "2025-03-09", p.Date())

	// Forward clamps at today
	p.Forward()
	p.Forward()
	p.Forward()
	assert.Equal(t, 0, p.Page)
	assert.Equal(t, "2025-03-10", p.Date())
}

func TestDateForPageClampsNegative(t *testing.T) {
	now := time.Date(2025, time.March, 10, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-10", DateForPage(now, -3))
}
