package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, employee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (*Employee, error)

	// List returns all employees; search filters with the same substring
	// semantics as Employee.MatchesSearch.
	List(ctx context.Context, search string) ([]Employee, error)

	Update(ctx context.Context, employee Employee) error
	Delete(ctx context.Context, id string) error

	// ListByTimetable returns employees assigned to a timetable.
	ListByTimetable(ctx context.Context, timetableID string) ([]Employee, error)
}
