package timetable

import "context"

type TimetableRepository interface {
	List(ctx context.Context) ([]Timetable, error)
	GetByID(ctx context.Context, id string) (Timetable, error)
	Create(ctx context.Context, timetable Timetable) (Timetable, error)
	Update(ctx context.Context, timetable Timetable) error
	Delete(ctx context.Context, id string) error
}
