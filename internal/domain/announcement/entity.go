package announcement

import "time"

type Announcement struct {
	ID          string
	Title       string
	Description string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
