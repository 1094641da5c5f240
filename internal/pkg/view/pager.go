package view

import "time"

// DatePager pages a day-scoped view backward from today. Page 0 is today,
// page N is N whole days back; paging never goes past today.
type DatePager struct {
	Page int
	now  func() time.Time
}

func NewDatePager() *DatePager {
	return &DatePager{now: time.Now}
}

// NewDatePagerAt pins "today" for deterministic date arithmetic.
func NewDatePagerAt(now func() time.Time) *DatePager {
	return &DatePager{now: now}
}

// Date returns the calendar date for the current page as YYYY-MM-DD.
func (p *DatePager) Date() string {
	return DateForPage(p.now(), p.Page)
}

// Back moves one day further into the past. Unbounded.
func (p *DatePager) Back() {
	p.Page++
}

// Forward moves one day toward today, clamped at page 0.
func (p *DatePager) Forward() {
	if p.Page > 0 {
		p.Page--
	}
}

// DateForPage computes today-minus-page formatted YYYY-MM-DD. Negative pages
// clamp to today rather than paging into the future.
func DateForPage(now time.Time, page int) string {
	if page < 0 {
		page = 0
	}
	return now.In(displayLocation).AddDate(0, 0, -page).Format("2006-01-02")
}
