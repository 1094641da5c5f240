package holiday

import (
	"github.com/attendo-app/attendo-backend-go/internal/pkg/validator"
	"github.com/attendo-app/attendo-backend-go/internal/pkg/view"
)

type HolidayRequest struct {
	ID    string  `json:"-"`
	Name  string  `json:"name"`
	Date  string  `json:"date"` // YYYY-MM-DD
	Type  string  `json:"type"`
	Notes *string `json:"notes,omitempty"`
}

func (r *HolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsInSlice(r.Type, TypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: official, custom, half-day",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayResponse struct {
	ID    string  `json:"_id"`
	Name  string  `json:"name"`
	Date  string  `json:"date"`
	Type  string  `json:"type"`
	Notes *string `json:"notes,omitempty"`

	// Calendar placement: zero-based month index and year
	Year  int `json:"year"`
	Month int `json:"month"`
}

func ToResponse(h Holiday) HolidayResponse {
	key := view.MonthKeyOf(h.Date)
	return HolidayResponse{
		ID:    h.ID,
		Name:  h.Name,
		Date:  h.Date.Format("2006-01-02"),
		Type:  h.Type,
		Notes: h.Notes,
		Year:  key.Year,
		Month: key.Month,
	}
}

func ToResponses(holidays []Holiday) []HolidayResponse {
	out := make([]HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		out = append(out, ToResponse(h))
	}
	return out
}

// GroupByMonth buckets holidays for the calendar grid.
func GroupByMonth(holidays []Holiday) map[view.MonthKey][]HolidayResponse {
	grouped := make(map[view.MonthKey][]HolidayResponse)
	for _, h := range holidays {
		key := view.MonthKeyOf(h.Date)
		grouped[key] = append(grouped[key], ToResponse(h))
	}
	return grouped
}
