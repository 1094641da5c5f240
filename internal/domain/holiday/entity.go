package holiday

import "time"

const (
	TypeOfficial = "official"
	TypeCustom   = "custom"
	TypeHalfDay  = "half-day"
)

var TypeValues = []string{TypeOfficial, TypeCustom, TypeHalfDay}

type Holiday struct {
	ID        string
	Name      string
	Date      time.Time
	Type      string
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
