// Package view holds the display-derivation rules shared by the JSON API and
// the export formatters, so every surface renders the same strings.
package view

import (
	"fmt"
	"time"
)

// UnknownEmployee is the terminal fallback when a record carries no
// resolvable employee display fields.
const UnknownEmployee = "Unknown"

var displayLocation = loadLocation()

func loadLocation() *time.Location {
	loc, err := time.LoadLocation("Africa/Nairobi")
	if err != nil {
		// Nairobi has no DST, a fixed offset is equivalent
		return time.FixedZone("EAT", 3*3600)
	}
	return loc
}

// Location returns the time zone all dashboard timestamps are rendered in.
func Location() *time.Location {
	return displayLocation
}

// Today resolves the current calendar date in the display time zone,
// returned as midnight UTC, the convention date-keyed queries use. All
// "today" derivations go through here so day-scoped views and aggregates
// agree across the UTC day boundary.
func Today(now time.Time) time.Time {
	y, m, d := now.In(displayLocation).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Clock formats a timestamp as a 12-hour wall clock, e.g. "09:05 AM".
// Nil renders as "-".
func Clock(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.In(displayLocation).Format("03:04 PM")
}

// LongDate formats a date as "Jan 02, 2006" for report tables.
func LongDate(t time.Time) string {
	return t.In(displayLocation).Format("Jan 02, 2006")
}

// Duration renders the worked-hours display string "{h}h {m}m" from a raw
// check-in/check-out pair. Missing either side, or a non-positive span,
// renders as "-".
func Duration(checkIn, checkOut *time.Time) string {
	if checkIn == nil || checkOut == nil {
		return "-"
	}
	total := checkOut.Sub(*checkIn)
	if total <= 0 {
		return "-"
	}
	h := int(total / time.Hour)
	m := int(total % time.Hour / time.Minute)
	return fmt.Sprintf("%dh %dm", h, m)
}

// YesNo renders boolean flags (isLate, isEarly) the way the tables show them.
func YesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// FallbackName resolves an employee display name through the chain the
// dashboard uses: direct field, then the embedded employee record, then
// "Unknown".
func FallbackName(direct, embedded string) string {
	if direct != "" {
		return direct
	}
	if embedded != "" {
		return embedded
	}
	return UnknownEmployee
}

// MonthKey identifies a (year, month) bucket. Month is the zero-based index
// the calendar grid uses (January = 0).
type MonthKey struct {
	Year  int
	Month int
}

// MonthKeyOf buckets a date for calendar grouping.
func MonthKeyOf(t time.Time) MonthKey {
	t = t.In(displayLocation)
	return MonthKey{Year: t.Year(), Month: int(t.Month()) - 1}
}
