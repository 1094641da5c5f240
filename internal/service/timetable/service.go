package timetable

import (
	"context"
	"fmt"

	"github.com/attendo-app/attendo-backend-go/internal/domain/employee"
	"github.com/attendo-app/attendo-backend-go/internal/domain/timetable"
)

type TimetableServiceImpl struct {
	timetable.TimetableRepository
	employee.EmployeeRepository
}

func NewTimetableService(timetableRepository timetable.TimetableRepository, employeeRepository employee.EmployeeRepository) timetable.TimetableService {
	return &TimetableServiceImpl{
		TimetableRepository: timetableRepository,
		EmployeeRepository:  employeeRepository,
	}
}

// List implements timetable.TimetableService.
func (s *TimetableServiceImpl) List(ctx context.Context) ([]timetable.TimetableResponse, error) {
	timetables, err := s.TimetableRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list timetables: %w", err)
	}
	return timetable.ToResponses(timetables), nil
}

// Create implements timetable.TimetableService.
func (s *TimetableServiceImpl) Create(ctx context.Context, req timetable.TimetableRequest) (timetable.TimetableResponse, error) {
	if err := req.Validate(); err != nil {
		return timetable.TimetableResponse{}, err
	}

	created, err := s.TimetableRepository.Create(ctx, req.ToEntity())
	if err != nil {
		return timetable.TimetableResponse{}, fmt.Errorf("failed to create timetable: %w", err)
	}

	return timetable.ToResponse(created), nil
}

// Update implements timetable.TimetableService.
func (s *TimetableServiceImpl) Update(ctx context.Context, req timetable.TimetableRequest) (timetable.TimetableResponse, error) {
	if err := req.Validate(); err != nil {
		return timetable.TimetableResponse{}, err
	}

	if _, err := s.TimetableRepository.GetByID(ctx, req.ID); err != nil {
		return timetable.TimetableResponse{}, err
	}

	// The update replaces the variant wholesale; fields from a previous
	// shift type never survive a kind switch.
	updated := req.ToEntity()
	updated.ID = req.ID

	if err := s.TimetableRepository.Update(ctx, updated); err != nil {
		return timetable.TimetableResponse{}, fmt.Errorf("failed to update timetable: %w", err)
	}

	return timetable.ToResponse(updated), nil
}

// Delete implements timetable.TimetableService.
func (s *TimetableServiceImpl) Delete(ctx context.Context, id string) error {
	assigned, err := s.EmployeeRepository.ListByTimetable(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check timetable assignments: %w", err)
	}
	if len(assigned) > 0 {
		return timetable.ErrTimetableInUse
	}

	return s.TimetableRepository.Delete(ctx, id)
}

// Employees implements timetable.TimetableService.
func (s *TimetableServiceImpl) Employees(ctx context.Context, id string) ([]employee.EmployeeResponse, error) {
	if _, err := s.TimetableRepository.GetByID(ctx, id); err != nil {
		return nil, err
	}

	assigned, err := s.EmployeeRepository.ListByTimetable(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list assigned employees: %w", err)
	}

	return employee.ToResponses(assigned), nil
}
