package timetable

import (
	"context"

	"github.com/attendo-app/attendo-backend-go/internal/domain/employee"
)

type TimetableService interface {
	List(ctx context.Context) ([]TimetableResponse, error)
	Create(ctx context.Context, req TimetableRequest) (TimetableResponse, error)
	Update(ctx context.Context, req TimetableRequest) (TimetableResponse, error)
	Delete(ctx context.Context, id string) error

	// Employees lists the employees assigned to a timetable.
	Employees(ctx context.Context, id string) ([]employee.EmployeeResponse, error)
}
