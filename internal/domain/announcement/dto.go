package announcement

import (
	"github.com/attendo-app/attendo-backend-go/internal/pkg/validator"
	"github.com/attendo-app/attendo-backend-go/internal/pkg/view"
)

type AnnouncementRequest struct {
	ID          string `json:"-"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"` // YYYY-MM-DD
}

func (r *AnnouncementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AnnouncementResponse struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	DateDisplay string `json:"dateDisplay"`
}

func ToResponse(a Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Date:        a.Date.Format("2006-01-02"),
		DateDisplay: view.LongDate(a.Date),
	}
}

func ToResponses(announcements []Announcement) []AnnouncementResponse {
	out := make([]AnnouncementResponse, 0, len(announcements))
	for _, a := range announcements {
		out = append(out, ToResponse(a))
	}
	return out
}
